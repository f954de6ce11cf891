package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/gittydia/IMS-BAO/internal/stock"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	m := Metrics{OrdersByStatus: map[string]int{}}

	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&m.TotalProducts)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&m.TotalOrders)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE status = $1`, stock.StatusLowStock).Scan(&m.LowStockCount)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE status = $1`, stock.StatusOutOfStock).Scan(&m.OutOfStockCount)

	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return m, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return m, err
		}
		m.OrdersByStatus[status] = count
	}
	return m, rows.Err()
}
