package repo

import (
	"context"

	"github.com/gittydia/IMS-BAO/internal/models"
)

// OrderDecision is the outcome of the decide callback: the order row to
// persist and, when a stock effect applies, the product row carrying its new
// quantity/status pair. A nil Product means no stock mutation.
type OrderDecision struct {
	Order   models.Order
	Product *models.Product
}

// OrderDecideFunc runs inside the atomic unit with the order and its product
// locked. product is nil when the referenced product no longer exists.
type OrderDecideFunc func(order models.Order, product *models.Product) (OrderDecision, error)

// FulfillmentStore executes an order update as one atomic unit: read the
// order and product under a lock, run decide, persist both rows, commit.
// Either every mutation in the decision lands or none do.
type FulfillmentStore interface {
	UpdateOrderAtomic(ctx context.Context, orderID int, decide OrderDecideFunc) (models.Order, error)
}
