package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/rufomartins/talent-nexus-notifier/internal/model"
)

var ErrBookingNotFound = errors.New("booking not found")

// Repository provides access to the bookings table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new booking repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateBooking inserts a new booking and returns its ID. No exclusion
// constraint is enforced on overlapping ranges; conflict handling happens
// in the service layer before this write.
func (r *Repository) CreateBooking(ctx context.Context, b model.Booking) (uuid.UUID, error) {
	query := `
		INSERT INTO bookings (
		    talent_id, start_date, end_date, status, resource_id
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, b.TalentID, b.StartDate, b.EndDate, b.Status, b.ResourceID,
	).Scan(&b.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return b.ID, nil
}

// ListActiveByTalent returns the talent's non-cancelled bookings.
func (r *Repository) ListActiveByTalent(ctx context.Context, talentID uuid.UUID) ([]model.Booking, error) {
	query := `
		SELECT id, talent_id, start_date, end_date, status, resource_id, created_at, updated_at
		FROM bookings
		WHERE talent_id = $1 AND status <> 'cancelled'
		ORDER BY start_date;
    `

	rows, err := r.db.QueryContext(ctx, query, talentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID, &b.TalentID, &b.StartDate, &b.EndDate, &b.Status,
			&b.ResourceID, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}

		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}
