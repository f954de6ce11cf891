package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gittydia/IMS-BAO/internal/models"
)

type PostgresActivityRepository struct {
	db *sql.DB
}

func NewPostgresActivityRepository(db *sql.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Append(e models.Activity) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_logs (actor_id, actor_label, action, entity_type, entity_id, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ActorID, e.ActorLabel, e.Action, e.EntityType, e.EntityID, e.Description, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert activity entry: %w", err)
	}
	return nil
}

const defaultActivityLimit = 100

func (r *PostgresActivityRepository) Recent(limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > defaultActivityLimit {
		limit = defaultActivityLimit
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, actor_id, actor_label, action, entity_type, entity_id, description, created_at
		 FROM activity_logs ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Activity
	for rows.Next() {
		var e models.Activity
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorLabel, &e.Action, &e.EntityType, &e.EntityID, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
