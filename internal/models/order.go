package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order reserves one unit of a product until it is claimed or cancelled.
type Order struct {
	ID          int             `json:"id"`
	ProductID   int             `json:"product_id"`
	DateToClaim time.Time       `json:"date_to_claim"`
	DateClaimed *time.Time      `json:"date_claimed,omitempty"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Product *Product     `json:"product,omitempty"`
	Student *Student     `json:"student,omitempty"`
	Txn     *Transaction `json:"transaction,omitempty"`
}
