package assignment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/rufomartins/talent-nexus-notifier/internal/model"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

// Repository provides access to the assignments table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new assignment repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateAssignment inserts a new assignment and returns its ID.
func (r *Repository) CreateAssignment(ctx context.Context, a model.Assignment) (uuid.UUID, error) {
	query := `
		INSERT INTO assignments (
		    task_id, user_id, role, start_at, due_at, status, channel, "to"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, a.TaskID, a.UserID, a.Role, a.StartAt, a.DueAt, a.Status, a.Channel, a.To,
	).Scan(&a.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return a.ID, nil
}

// GetByID retrieves an assignment by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Assignment, error) {
	query := `
		SELECT id, task_id, user_id, role, start_at, due_at, status, channel, "to", created_at, updated_at
		FROM assignments
		WHERE id = $1;
    `

	var a model.Assignment
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.TaskID, &a.UserID, &a.Role, &a.StartAt, &a.DueAt,
		&a.Status, &a.Channel, &a.To, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Assignment{}, ErrAssignmentNotFound
		}

		return model.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

// ListOpen returns all assignments still subject to deadline sweeps.
func (r *Repository) ListOpen(ctx context.Context) ([]model.Assignment, error) {
	query := `
		SELECT id, task_id, user_id, role, start_at, due_at, status, channel, "to", created_at, updated_at
		FROM assignments
		WHERE status = 'open'
		ORDER BY due_at;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open assignments: %w", err)
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(
			&a.ID, &a.TaskID, &a.UserID, &a.Role, &a.StartAt, &a.DueAt,
			&a.Status, &a.Channel, &a.To, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}

		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// UpdateStatus sets the assignment status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE assignments
		SET status = $1, updated_at = now()
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// UpdateRole sets the assignment role.
func (r *Repository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	query := `
		UPDATE assignments
		SET role = $1, updated_at = now()
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, role, id)
	if err != nil {
		return fmt.Errorf("failed to update assignment role: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}
