package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/rufomartins/talent-nexus-notifier/internal/model"
)

var (
	// ErrAlreadyPending signals that an unresolved pending record already
	// exists for the same dedupe key. Expected and non-fatal: the caller
	// skips instead of duplicating.
	ErrAlreadyPending = errors.New("notification already pending for dedupe key")

	// ErrInvalidTransition signals an attempted status regression, e.g.
	// sent back to pending. A data-integrity fault, never retried.
	ErrInvalidTransition = errors.New("invalid notification status transition")

	ErrRecordNotFound = errors.New("notification not found")
)

// Repository provides access to the notifications table. It is the single
// owner of the record lifecycle: every mutation passes through its dedupe
// and monotonicity checks.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Enqueue inserts a new pending notification and returns its ID. The
// partial unique index on (dedupe_key) WHERE status = 'pending' is the sole
// idempotency mechanism: a concurrent insert for the same key loses the
// race and gets ErrAlreadyPending, so overlapping sweeps cannot
// double-enqueue.
func (r *Repository) Enqueue(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    type, user_id, title, message, action_url, channel, "to", dedupe_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (dedupe_key) WHERE status = 'pending' DO NOTHING
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, n.Type, n.UserID, n.Title, n.Message, n.ActionURL, n.Channel, n.To, n.DedupeKey,
	).Scan(&n.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrAlreadyPending
		}

		return uuid.Nil, fmt.Errorf("failed to enqueue notification: %w", err)
	}

	return n.ID, nil
}

// HasRecord reports whether any record exists for the dedupe key,
// regardless of status. The sweep uses it to avoid re-notifying a subject
// whose record has already been sent or read.
func (r *Repository) HasRecord(ctx context.Context, dedupeKey string) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM notifications WHERE dedupe_key = $1
		);
    `

	var exists bool
	if err := r.db.Master.QueryRowContext(ctx, query, dedupeKey).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check dedupe key: %w", err)
	}

	return exists, nil
}

// MarkSent transitions a record from pending to sent with a server-assigned
// processing timestamp. Marking an already sent record is a no-op; marking
// a read record fails with ErrInvalidTransition since that would regress.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET status = 'sent', processed_at = COALESCE(processed_at, now()), updated_at = now()
		WHERE id = $1 AND status = 'pending';
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows > 0 {
		return nil
	}

	status, err := r.GetStatusByID(ctx, id)
	if err != nil {
		return err
	}

	if status == model.StatusSent {
		return nil
	}

	return fmt.Errorf("%w: %s -> sent", ErrInvalidTransition, status)
}

// MarkRead transitions a record to read. Reading straight from pending is
// permitted (read implies delivered). Marking an already read record is a
// no-op.
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET status = 'read', processed_at = COALESCE(processed_at, now()), updated_at = now()
		WHERE id = $1 AND status IN ('pending', 'sent');
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows > 0 {
		return nil
	}

	status, err := r.GetStatusByID(ctx, id)
	if err != nil {
		return err
	}

	if status == model.StatusRead {
		return nil
	}

	return fmt.Errorf("%w: %s -> read", ErrInvalidTransition, status)
}

// GetStatusByID retrieves the status of a notification by its ID.
func (r *Repository) GetStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM notifications
		WHERE id = $1;
    `

	var status string
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrRecordNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

// GetByID retrieves a full notification record.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `
		SELECT id, type, user_id, title, message, action_url, channel, "to", status, dedupe_key, created_at, processed_at
		FROM notifications
		WHERE id = $1;
    `

	var n model.Notification
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.Type, &n.UserID, &n.Title, &n.Message, &n.ActionURL,
		&n.Channel, &n.To, &n.Status, &n.DedupeKey, &n.CreatedAt, &n.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrRecordNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// ListPending returns the user's records not yet acknowledged as read,
// newest first. Clients use it to (re)hydrate their unread projection.
func (r *Repository) ListPending(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	query := `
		SELECT id, type, user_id, title, message, action_url, channel, "to", status, dedupe_key, created_at, processed_at
		FROM notifications
		WHERE user_id = $1 AND status <> 'read'
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID, &n.Type, &n.UserID, &n.Title, &n.Message, &n.ActionURL,
			&n.Channel, &n.To, &n.Status, &n.DedupeKey, &n.CreatedAt, &n.ProcessedAt,
		); err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// ListStalePending returns pending records older than the given age. The
// sweep re-publishes them for delivery so that records whose retries were
// exhausted are never silently discarded.
func (r *Repository) ListStalePending(ctx context.Context, olderThan time.Duration) ([]model.Notification, error) {
	query := `
		SELECT id, type, user_id, title, message, action_url, channel, "to", status, dedupe_key, created_at, processed_at
		FROM notifications
		WHERE status = 'pending' AND created_at < now() - $1::interval
		ORDER BY created_at;
    `

	interval := fmt.Sprintf("%d seconds", int(olderThan.Seconds()))

	rows, err := r.db.QueryContext(ctx, query, interval)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale pending notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID, &n.Type, &n.UserID, &n.Title, &n.Message, &n.ActionURL,
			&n.Channel, &n.To, &n.Status, &n.DedupeKey, &n.CreatedAt, &n.ProcessedAt,
		); err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
