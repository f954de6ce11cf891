package handlers

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gittydia/IMS-BAO/internal/fulfillment"
)

type ProductValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	var errs []ProductValidationError
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(p.Category) == "" {
		errs = append(errs, ProductValidationError{Field: "category", Message: "Category is required"})
	}
	if p.Price.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, ProductValidationError{Field: "price", Message: "Price must be greater than zero"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ProductValidationError{Field: "quantity", Message: "Quantity cannot be negative"})
	}
	return errs
}

func validateOrder(o OrderCreateRequest) []ProductValidationError {
	var errs []ProductValidationError
	if o.ProductID <= 0 {
		errs = append(errs, ProductValidationError{Field: "product_id", Message: "Product is required"})
	}
	if o.DateToClaim.IsZero() {
		errs = append(errs, ProductValidationError{Field: "date_to_claim", Message: "Claim date is required"})
	}
	if _, ok := fulfillment.Normalize(o.Status); !ok {
		errs = append(errs, ProductValidationError{Field: "status", Message: "Status must be pending, ready, claimed or cancelled"})
	}
	if o.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, ProductValidationError{Field: "amount", Message: "Amount must be greater than zero"})
	}
	return errs
}
