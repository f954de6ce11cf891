package repo

import "github.com/gittydia/IMS-BAO/internal/models"

// ProductRepository defines the interface for product data operations.
// AdjustQuantity is the only sanctioned mutation path for stock counts
// outside of order fulfillment; it keeps quantity and the derived status
// consistent in a single write.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	AdjustQuantity(productID, delta int) (models.Product, error)
}
