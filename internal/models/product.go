package models

import "github.com/shopspring/decimal"

// Product represents a store item whose availability status is always
// derived from its quantity.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Status    string          `json:"status"`
	ImageRef  string          `json:"image_ref,omitempty"`
	CreatedAt string          `json:"created_at,omitempty"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}
