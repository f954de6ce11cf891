package repo

import (
	"sync"

	"github.com/gittydia/IMS-BAO/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
type InMemoryOrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
	nextID int

	products *InMemoryProductRepository
	txns     *InMemoryTransactionRepository
	students *InMemoryStudentRepository
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: []models.Order{},
		nextID: 1,
	}
}

// SetRepositories wires the repositories used to include product and
// student data on reads.
func (r *InMemoryOrderRepository) SetRepositories(products *InMemoryProductRepository, txns *InMemoryTransactionRepository, students *InMemoryStudentRepository) {
	r.products = products
	r.txns = txns
	r.students = students
}

func (r *InMemoryOrderRepository) Create(order models.Order) (models.Order, error) {
	if r.products != nil {
		if _, err := r.products.GetByID(order.ProductID); err != nil {
			return models.Order{}, ErrProductNotFound
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, order)
	return order, nil
}

func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.Lock()
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	r.mu.Unlock()

	for i := range out {
		r.include(&out[i])
	}
	return out, nil
}

func (r *InMemoryOrderRepository) GetByID(id int) (models.Order, error) {
	r.mu.Lock()
	var found *models.Order
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			found = &o
			break
		}
	}
	r.mu.Unlock()

	if found == nil {
		return models.Order{}, ErrOrderNotFound
	}
	r.include(found)
	return *found, nil
}

func (r *InMemoryOrderRepository) include(o *models.Order) {
	if r.products != nil {
		if p, err := r.products.GetByID(o.ProductID); err == nil {
			o.Product = &p
		}
	}
	if r.txns != nil {
		if t, err := r.txns.GetByOrderID(o.ID); err == nil {
			o.Txn = &t
			if r.students != nil {
				if s, err := r.students.GetByID(t.StudentID); err == nil {
					o.Student = &s
				}
			}
		}
	}
}

// Delete removes the order row only; reserved stock is not restored.
func (r *InMemoryOrderRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}

func (r *InMemoryOrderRepository) CountByProduct(productID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, o := range r.orders {
		if o.ProductID == productID {
			count++
		}
	}
	return count, nil
}

// replace swaps the stored order row; used by the in-memory fulfillment store.
func (r *InMemoryOrderRepository) replace(order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == order.ID {
			order.Product = nil
			order.Student = nil
			order.Txn = nil
			r.orders[i] = order
			return nil
		}
	}
	return ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = []models.Order{}
	r.nextID = 1
}
