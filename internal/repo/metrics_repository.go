package repo

type Metrics struct {
	TotalProducts   int            `json:"total_products"`
	TotalOrders     int            `json:"total_orders"`
	LowStockCount   int            `json:"low_stock_count"`
	OutOfStockCount int            `json:"out_of_stock_count"`
	OrdersByStatus  map[string]int `json:"orders_by_status"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
