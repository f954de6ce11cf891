package repo

import "github.com/gittydia/IMS-BAO/internal/models"

// OrderRepository defines the interface for order data operations. Status
// transitions are deliberately absent here: they go through the
// FulfillmentStore so a status change and its stock effect commit together.
type OrderRepository interface {
	Create(order models.Order) (models.Order, error)
	GetAll() ([]models.Order, error)
	GetByID(id int) (models.Order, error)
	Delete(id int) error
	CountByProduct(productID int) (int, error)
}
