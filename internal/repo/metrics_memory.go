package repo

import "github.com/gittydia/IMS-BAO/internal/stock"

type InMemoryMetricsRepository struct {
	products *InMemoryProductRepository
	orders   *InMemoryOrderRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (r *InMemoryMetricsRepository) SetRepositories(products *InMemoryProductRepository, orders *InMemoryOrderRepository) {
	r.products = products
	r.orders = orders
}

func (r *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{OrdersByStatus: map[string]int{}}

	products, err := r.products.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)
	for _, p := range products {
		switch p.Status {
		case stock.StatusLowStock:
			m.LowStockCount++
		case stock.StatusOutOfStock:
			m.OutOfStockCount++
		}
	}

	orders, err := r.orders.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalOrders = len(orders)
	for _, o := range orders {
		m.OrdersByStatus[o.Status]++
	}
	return m, nil
}
