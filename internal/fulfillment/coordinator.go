// Package fulfillment owns order status transitions and the stock effects
// they carry. The coordinator is the only component allowed to mutate an
// order and its product within one logical operation.
package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gittydia/IMS-BAO/internal/audit"
	"github.com/gittydia/IMS-BAO/internal/models"
	"github.com/gittydia/IMS-BAO/internal/repo"
	"github.com/gittydia/IMS-BAO/internal/stock"
)

// OrderPatch carries the optional fields of an update request. A nil field
// leaves the attribute unchanged; ClearDateClaimed distinguishes an explicit
// null from an absent field.
type OrderPatch struct {
	Status           *string
	DateClaimed      *time.Time
	ClearDateClaimed bool
}

type Coordinator struct {
	store repo.FulfillmentStore
	trail *audit.Recorder
}

func NewCoordinator(store repo.FulfillmentStore, trail *audit.Recorder) *Coordinator {
	return &Coordinator{store: store, trail: trail}
}

// Contention is retried a bounded number of times before surfacing.
const maxUpdateAttempts = 3

// UpdateOrder applies the patch to the order as one atomic unit. A
// transition into claimed decrements the product's stock, a transition out
// of claimed restores it, and the quantity/status pair is rewritten
// together with the order row. On stock.ErrInsufficientStock nothing
// changes. The audit entry is appended after commit, best effort, and only
// when the status actually changed.
func (c *Coordinator) UpdateOrder(ctx context.Context, actor audit.Actor, orderID int, patch OrderPatch) (models.Order, error) {
	if patch.Status != nil {
		canonical, ok := Normalize(*patch.Status)
		if !ok {
			return models.Order{}, fmt.Errorf("unknown order status %q", *patch.Status)
		}
		patch.Status = &canonical
	}

	var oldStatus string
	var delta int

	decide := func(order models.Order, product *models.Product) (repo.OrderDecision, error) {
		oldStatus = order.Status
		newStatus := order.Status
		if patch.Status != nil {
			newStatus = *patch.Status
		}

		delta = StockEffect(order.Status, newStatus)
		if delta != 0 {
			if product == nil {
				return repo.OrderDecision{}, repo.ErrProductNotFound
			}
			if err := stock.Apply(product, delta); err != nil {
				return repo.OrderDecision{}, err
			}
		} else {
			product = nil
		}

		order.Status = newStatus
		if patch.ClearDateClaimed {
			order.DateClaimed = nil
		} else if patch.DateClaimed != nil {
			order.DateClaimed = patch.DateClaimed
		}
		order.UpdatedAt = time.Now().UTC()

		return repo.OrderDecision{Order: order, Product: product}, nil
	}

	var updated models.Order
	var err error
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		updated, err = c.store.UpdateOrderAtomic(ctx, orderID, decide)
		if !errors.Is(err, repo.ErrConcurrentModification) {
			break
		}
	}
	if err != nil {
		return models.Order{}, err
	}

	if updated.Status != oldStatus {
		description := fmt.Sprintf("order status %s -> %s", oldStatus, updated.Status)
		if delta != 0 {
			description += fmt.Sprintf(" (stock %+d on product %d)", delta, updated.ProductID)
		}
		c.trail.Record(actor, "update", "order", updated.ID, description)
	}
	return updated, nil
}
