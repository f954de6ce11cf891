package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gittydia/IMS-BAO/internal/models"
)

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) Create(t models.Transaction) (models.Transaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO transactions (order_id, student_id, created_at) VALUES ($1, $2, $3) RETURNING id`,
		t.OrderID, t.StudentID, t.CreatedAt).Scan(&t.ID)
	return t, err
}

var errTransactionNotFound = errors.New("transaction not found")

func (r *PostgresTransactionRepository) GetByOrderID(orderID int) (models.Transaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var t models.Transaction
	err := r.db.QueryRowContext(ctx,
		`SELECT id, order_id, student_id, created_at FROM transactions WHERE order_id = $1`, orderID).
		Scan(&t.ID, &t.OrderID, &t.StudentID, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, errTransactionNotFound
	}
	return t, err
}
