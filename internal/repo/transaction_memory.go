package repo

import (
	"sync"

	"github.com/gittydia/IMS-BAO/internal/models"
)

type InMemoryTransactionRepository struct {
	mu     sync.Mutex
	txns   []models.Transaction
	nextID int
}

func NewInMemoryTransactionRepository() *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{nextID: 1}
}

func (r *InMemoryTransactionRepository) Create(t models.Transaction) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.txns = append(r.txns, t)
	return t, nil
}

func (r *InMemoryTransactionRepository) GetByOrderID(orderID int) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.txns {
		if t.OrderID == orderID {
			return t, nil
		}
	}
	return models.Transaction{}, errTransactionNotFound
}
