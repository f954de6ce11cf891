package handlers

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gittydia/IMS-BAO/internal/models"
)

// OptionalTime distinguishes an absent field from an explicit null so a
// client can clear date_claimed with `"date_claimed": null`.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	o.Value = &t
	return nil
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	College   string `json:"college,omitempty"`
	Program   string `json:"program,omitempty"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type RegisterResult struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

type ProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	ImageRef string          `json:"image_ref,omitempty"`
}

type ProductUpdateRequest struct {
	Name     *string          `json:"name,omitempty"`
	Category *string          `json:"category,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Quantity *int             `json:"quantity,omitempty"`
	ImageRef *string          `json:"image_ref,omitempty"`
}

type ProductResponse struct {
	Id       int             `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Status   string          `json:"status"`
	ImageRef string          `json:"image_ref,omitempty"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type OrderCreateRequest struct {
	ProductID   int             `json:"product_id"`
	DateToClaim time.Time       `json:"date_to_claim"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
}

type OrderUpdateRequest struct {
	Status      *string      `json:"status,omitempty"`
	DateClaimed OptionalTime `json:"date_claimed"`
}

type StudentRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	College   string `json:"college"`
	Program   string `json:"program"`
}

type StudentUpdateRequest struct {
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	College   *string `json:"college,omitempty"`
	Program   *string `json:"program,omitempty"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Quantity: p.Quantity,
		Status:   p.Status,
		ImageRef: p.ImageRef,
	}
}
