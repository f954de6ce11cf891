package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gittydia/IMS-BAO/internal/models"
)

type PostgresStudentRepository struct {
	db *sql.DB
}

func NewPostgresStudentRepository(db *sql.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

func (r *PostgresStudentRepository) Create(s models.Student) (models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO students (user_id, firstname, lastname, college, program) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.UserID, s.Firstname, s.Lastname, s.College, s.Program).Scan(&s.ID)
	return s, err
}

func (r *PostgresStudentRepository) GetAll() ([]models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, firstname, lastname, college, program FROM students ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.UserID, &s.Firstname, &s.Lastname, &s.College, &s.Program); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *PostgresStudentRepository) GetByID(id int) (models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Student
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, firstname, lastname, college, program FROM students WHERE id = $1`, id).
		Scan(&s.ID, &s.UserID, &s.Firstname, &s.Lastname, &s.College, &s.Program)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Student{}, ErrStudentNotFound
	}
	return s, err
}

func (r *PostgresStudentRepository) GetByUserID(userID int) (models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Student
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, firstname, lastname, college, program FROM students WHERE user_id = $1`, userID).
		Scan(&s.ID, &s.UserID, &s.Firstname, &s.Lastname, &s.College, &s.Program)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Student{}, ErrStudentNotFound
	}
	return s, err
}

func (r *PostgresStudentRepository) Update(s models.Student) (models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE students SET firstname = $1, lastname = $2, college = $3, program = $4 WHERE id = $5`,
		s.Firstname, s.Lastname, s.College, s.Program, s.ID)
	if err != nil {
		return models.Student{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Student{}, ErrStudentNotFound
	}
	return s, nil
}

func (r *PostgresStudentRepository) Delete(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}
