package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gittydia/IMS-BAO/internal/models"
)

type PostgresFulfillmentStore struct {
	db *sql.DB
}

func NewPostgresFulfillmentStore(db *sql.DB) *PostgresFulfillmentStore {
	return &PostgresFulfillmentStore{db: db}
}

// UpdateOrderAtomic locks the order row and its product row with
// SELECT ... FOR UPDATE, runs decide, and writes the product before the
// order so a committed status change is never visible with stale stock.
func (s *PostgresFulfillmentStore) UpdateOrderAtomic(ctx context.Context, orderID int, decide OrderDecideFunc) (models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, err
	}
	defer tx.Rollback()

	var o models.Order
	err = tx.QueryRowContext(ctx,
		`SELECT id, product_id, date_to_claim, date_claimed, status, amount, created_at, updated_at
		 FROM orders WHERE id = $1 FOR UPDATE`, orderID).
		Scan(&o.ID, &o.ProductID, &o.DateToClaim, &o.DateClaimed, &o.Status, &o.Amount, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, mapContentionError(err)
	}

	var product *models.Product
	var p models.Product
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, category, price, quantity, status, image_ref FROM products WHERE id = $1 FOR UPDATE`,
		o.ProductID).Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.Status, &p.ImageRef)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		product = nil
	case err != nil:
		return models.Order{}, mapContentionError(err)
	default:
		product = &p
	}

	decision, err := decide(o, product)
	if err != nil {
		return models.Order{}, err
	}

	if decision.Product != nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE products SET quantity = $1, status = $2, updated_at = $3 WHERE id = $4`,
			decision.Product.Quantity, decision.Product.Status,
			time.Now().UTC().Format(time.RFC3339), decision.Product.ID)
		if err != nil {
			return models.Order{}, mapContentionError(err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = $1, date_claimed = $2, updated_at = $3 WHERE id = $4`,
		decision.Order.Status, decision.Order.DateClaimed, decision.Order.UpdatedAt, decision.Order.ID)
	if err != nil {
		return models.Order{}, mapContentionError(err)
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, mapContentionError(err)
	}

	decision.Order.Product = decision.Product
	return decision.Order, nil
}

// mapContentionError translates serialization failures and deadlocks into
// ErrConcurrentModification so callers can retry a bounded number of times.
func mapContentionError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
		return ErrConcurrentModification
	}
	return err
}
