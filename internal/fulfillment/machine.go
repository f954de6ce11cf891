package fulfillment

import "strings"

// Order statuses. Comparisons are case-insensitive; the lowercase form is
// canonical and is what gets stored.
const (
	StatusPending   = "pending"
	StatusReady     = "ready"
	StatusClaimed   = "claimed"
	StatusCancelled = "cancelled"
)

// Normalize lowercases a status and reports whether it is one of the known
// order statuses.
func Normalize(status string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(status))
	switch s {
	case StatusPending, StatusReady, StatusClaimed, StatusCancelled:
		return s, true
	}
	return s, false
}

// StockEffect returns the product quantity delta implied by a status
// transition. Only crossing the claimed boundary moves stock: entering
// claimed reserves one unit, leaving claimed releases it. A transition that
// stays on the same side of the boundary has no effect, so re-applying
// claimed to an already claimed order never double-decrements.
func StockEffect(oldStatus, newStatus string) int {
	oldClaimed := strings.EqualFold(oldStatus, StatusClaimed)
	newClaimed := strings.EqualFold(newStatus, StatusClaimed)

	switch {
	case !oldClaimed && newClaimed:
		return -1
	case oldClaimed && !newClaimed:
		return +1
	default:
		return 0
	}
}
