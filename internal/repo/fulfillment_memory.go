package repo

import (
	"context"
	"sync"

	"github.com/gittydia/IMS-BAO/internal/models"
)

// InMemoryFulfillmentStore runs the decide callback under a single mutex so
// concurrent updates to the same product serialize exactly like the
// row-locked transaction does against Postgres.
type InMemoryFulfillmentStore struct {
	mu       sync.Mutex
	orders   *InMemoryOrderRepository
	products *InMemoryProductRepository
}

func NewInMemoryFulfillmentStore(orders *InMemoryOrderRepository, products *InMemoryProductRepository) *InMemoryFulfillmentStore {
	return &InMemoryFulfillmentStore{orders: orders, products: products}
}

func (s *InMemoryFulfillmentStore) UpdateOrderAtomic(ctx context.Context, orderID int, decide OrderDecideFunc) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return models.Order{}, err
	}
	order.Product = nil
	order.Student = nil
	order.Txn = nil

	var product *models.Product
	if p, err := s.products.GetByID(order.ProductID); err == nil {
		product = &p
	}

	decision, err := decide(order, product)
	if err != nil {
		return models.Order{}, err
	}

	if decision.Product != nil {
		if _, err := s.products.Update(*decision.Product); err != nil {
			return models.Order{}, err
		}
	}
	if err := s.orders.replace(decision.Order); err != nil {
		return models.Order{}, err
	}

	decision.Order.Product = decision.Product
	return decision.Order, nil
}
