package repo

import "github.com/gittydia/IMS-BAO/internal/models"

// ActivityRepository is the append-only store behind the audit trail.
// Entries are immutable; Recent is the only read path.
type ActivityRepository interface {
	Append(entry models.Activity) error
	Recent(limit int) ([]models.Activity, error)
}
