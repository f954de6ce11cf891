package stock

import (
	"errors"

	"github.com/gittydia/IMS-BAO/internal/models"
)

// Availability labels derived from quantity. The label is never set
// directly; every quantity write recomputes it.
const (
	StatusOutOfStock = "out_of_stock"
	StatusLowStock   = "low_stock"
	StatusInStock    = "in_stock"
)

const lowStockCeiling = 10

// ErrInsufficientStock is returned when a decrement would take a product's
// quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// DeriveStatus maps a quantity to its availability label.
func DeriveStatus(quantity int) string {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= lowStockCeiling:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Apply adjusts the product's quantity by delta and recomputes its status.
// The quantity floor is zero: a delta that would cross it leaves the product
// untouched and returns ErrInsufficientStock. Callers must persist quantity
// and status as a single write.
func Apply(p *models.Product, delta int) error {
	if p.Quantity+delta < 0 {
		return ErrInsufficientStock
	}
	p.Quantity += delta
	p.Status = DeriveStatus(p.Quantity)
	return nil
}
