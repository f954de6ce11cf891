package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gittydia/IMS-BAO/internal/models"
	"github.com/gittydia/IMS-BAO/internal/stock"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, category, price, quantity, status, image_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p.Status = stock.DeriveStatus(p.Quantity)
	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.Category, p.Price, p.Quantity, p.Status, p.ImageRef, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if isUniqueViolation(err) {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, name, category, price, quantity, status, image_ref FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.Status, &p.ImageRef); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT id, name, category, price, quantity, status, image_ref FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.Status, &p.ImageRef)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, category = $2, price = $3, quantity = $4, status = $5, image_ref = $6, updated_at = $7
		WHERE id = $8`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p.Status = stock.DeriveStatus(p.Quantity)
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Category, p.Price, p.Quantity, p.Status, p.ImageRef, time.Now().UTC().Format(time.RFC3339), p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrProductInUse
		}
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// AdjustQuantity applies delta to the product's quantity and re-derives its
// status inside one transaction with the row locked. The floor at zero is
// enforced before anything is written.
func (r *PostgresProductRepository) AdjustQuantity(productID, delta int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, err
	}
	defer tx.Rollback()

	var p models.Product
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, category, price, quantity, status, image_ref FROM products WHERE id = $1 FOR UPDATE`,
		productID).Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.Status, &p.ImageRef)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}

	if err := stock.Apply(&p, delta); err != nil {
		return models.Product{}, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE products SET quantity = $1, status = $2, updated_at = $3 WHERE id = $4`,
		p.Quantity, p.Status, time.Now().UTC().Format(time.RFC3339), p.ID)
	if err != nil {
		return models.Product{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
