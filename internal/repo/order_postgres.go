package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gittydia/IMS-BAO/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(o models.Order) (models.Order, error) {
	query := `INSERT INTO orders (product_id, date_to_claim, date_claimed, status, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		o.ProductID, o.DateToClaim, o.DateClaimed, o.Status, o.Amount, o.CreatedAt, o.UpdatedAt).Scan(&o.ID)
	if isForeignKeyViolation(err) {
		return models.Order{}, ErrProductNotFound
	}
	return o, err
}

const orderSelect = `
	SELECT o.id, o.product_id, o.date_to_claim, o.date_claimed, o.status, o.amount, o.created_at, o.updated_at,
	       p.id, p.name, p.category, p.price, p.quantity, p.status, p.image_ref,
	       t.id, t.student_id, t.created_at,
	       s.id, s.firstname, s.lastname, s.college, s.program
	FROM orders o
	JOIN products p ON p.id = o.product_id
	LEFT JOIN transactions t ON t.order_id = o.id
	LEFT JOIN students s ON s.id = t.student_id`

func scanOrder(row interface{ Scan(dest ...any) error }) (models.Order, error) {
	var o models.Order
	var p models.Product
	var txnID, txnStudentID, studentID sql.NullInt64
	var txnCreatedAt sql.NullTime
	var firstname, lastname, college, program sql.NullString

	err := row.Scan(
		&o.ID, &o.ProductID, &o.DateToClaim, &o.DateClaimed, &o.Status, &o.Amount, &o.CreatedAt, &o.UpdatedAt,
		&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.Status, &p.ImageRef,
		&txnID, &txnStudentID, &txnCreatedAt,
		&studentID, &firstname, &lastname, &college, &program,
	)
	if err != nil {
		return models.Order{}, err
	}

	o.Product = &p
	if txnID.Valid {
		o.Txn = &models.Transaction{
			ID:        int(txnID.Int64),
			OrderID:   o.ID,
			StudentID: int(txnStudentID.Int64),
			CreatedAt: txnCreatedAt.Time,
		}
	}
	if studentID.Valid {
		o.Student = &models.Student{
			ID:        int(studentID.Int64),
			Firstname: firstname.String,
			Lastname:  lastname.String,
			College:   college.String,
			Program:   program.String,
		}
	}
	return o, nil
}

func (r *PostgresOrderRepository) GetAll() ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, orderSelect+" ORDER BY o.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) GetByID(id int) (models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRowContext(ctx, orderSelect+" WHERE o.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}

// Delete removes the order row only. Stock reserved by a claimed order is
// not restored; see the design notes.
func (r *PostgresOrderRepository) Delete(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *PostgresOrderRepository) CountByProduct(productID int) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE product_id = $1`, productID).Scan(&count)
	return count, err
}
