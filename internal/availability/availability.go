// Package availability implements booking-date conflict detection over
// closed calendar-day ranges. All functions are pure; callers fetch the
// existing bookings and decide whether conflicts block or merely warn.
package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/rufomartins/talent-nexus-notifier/internal/model"
)

// ErrMalformedDate indicates a date string that could not be parsed.
// Unparsable input is never treated as non-conflicting.
var ErrMalformedDate = errors.New("malformed date")

// DateLayout is the calendar-day format used for booking boundaries.
const DateLayout = "2006-01-02"

// Range is a closed date range [Start, End] at calendar-day granularity.
type Range struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// ParseDate parses a calendar-day string in DateLayout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	return t, nil
}

// ParseRange parses a pair of calendar-day strings into a Range. An end
// date preceding the start date is rejected as malformed input.
func ParseRange(start, end string) (Range, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Range{}, err
	}

	e, err := ParseDate(end)
	if err != nil {
		return Range{}, err
	}

	if e.Before(s) {
		return Range{}, fmt.Errorf("%w: end %q before start %q", ErrMalformedDate, end, start)
	}

	return Range{Start: s, End: e}, nil
}

// Overlaps reports whether two closed ranges intersect. Boundaries are
// inclusive: a booking ending on day X conflicts with one starting on day X.
func (r Range) Overlaps(other Range) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// FindConflicts returns the bookings whose date ranges intersect the
// candidate range. Cancelled bookings never conflict. The caller supplies
// bookings already scoped to a single talent.
func FindConflicts(candidate Range, existing []model.Booking) []model.Booking {
	var conflicts []model.Booking

	for _, b := range existing {
		if b.Status == model.BookingStatusCancelled {
			continue
		}

		if candidate.Overlaps(Range{Start: b.StartDate, End: b.EndDate}) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts
}
