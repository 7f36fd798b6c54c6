package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rufomartins/talent-nexus-notifier/internal/availability"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/booking/mock.go -package=mocks

// ErrBookingConflict signals that the candidate range overlaps an existing
// non-cancelled booking and no override was given. The conflicts are
// returned alongside so the caller can confirm-or-override.
var ErrBookingConflict = errors.New("booking dates conflict with an existing booking")

type bookingRepository interface {
	CreateBooking(context.Context, model.Booking) (uuid.UUID, error)
	ListActiveByTalent(context.Context, uuid.UUID) ([]model.Booking, error)
}

// AvailabilityResult is the outcome of a conflict check.
type AvailabilityResult struct {
	IsAvailable bool            `json:"is_available"`
	Conflicts   []model.Booking `json:"conflicts"`
}

// Service implements the booking conflict API. Conflict checks run
// synchronously on the booking-create path: nothing commits before the
// caller has seen the conflicts.
type Service struct {
	repo bookingRepository
}

func NewService(repo bookingRepository) *Service {
	return &Service{repo: repo}
}

// CheckAvailability reports whether the range is free for the talent and
// returns any conflicting bookings.
func (s *Service) CheckAvailability(ctx context.Context, talentID uuid.UUID, rng availability.Range) (AvailabilityResult, error) {
	existing, err := s.repo.ListActiveByTalent(ctx, talentID)
	if err != nil {
		return AvailabilityResult{}, fmt.Errorf("list bookings: %w", err)
	}

	conflicts := availability.FindConflicts(rng, existing)

	return AvailabilityResult{
		IsAvailable: len(conflicts) == 0,
		Conflicts:   conflicts,
	}, nil
}

// CreateBooking checks the candidate range and writes the booking. On
// conflict without override it returns the conflicting bookings and
// ErrBookingConflict; with override the booking is written anyway.
func (s *Service) CreateBooking(ctx context.Context, b model.Booking, override bool) (uuid.UUID, []model.Booking, error) {
	res, err := s.CheckAvailability(ctx, b.TalentID, availability.Range{Start: b.StartDate, End: b.EndDate})
	if err != nil {
		return uuid.Nil, nil, err
	}

	if !res.IsAvailable && !override {
		return uuid.Nil, res.Conflicts, ErrBookingConflict
	}

	id, err := s.repo.CreateBooking(ctx, b)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("create booking: %w", err)
	}

	return id, res.Conflicts, nil
}
