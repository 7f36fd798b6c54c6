package model

import (
	"time"

	"github.com/google/uuid"
)

// Booking status values.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking reserves a talent for a closed calendar-day range
// [StartDate, EndDate]. Overlapping non-cancelled bookings for the same
// talent are a warning surfaced to the caller, not a storage constraint.
type Booking struct {
	ID         uuid.UUID `json:"id"`
	TalentID   uuid.UUID `json:"talent_id"`
	StartDate  time.Time `json:"start_date"` // first booked day, midnight UTC
	EndDate    time.Time `json:"end_date"`   // last booked day, inclusive
	Status     string    `json:"status"`     // "pending", "confirmed", "cancelled"
	ResourceID string    `json:"resource_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
