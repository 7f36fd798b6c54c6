package availability

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rufomartins/talent-nexus-notifier/internal/model"
)

func mustRange(t *testing.T, start, end string) Range {
	t.Helper()

	r, err := ParseRange(start, end)
	require.NoError(t, err)

	return r
}

func booking(t *testing.T, start, end, status string) model.Booking {
	t.Helper()

	r := mustRange(t, start, end)

	return model.Booking{
		ID:        uuid.New(),
		TalentID:  uuid.New(),
		StartDate: r.Start,
		EndDate:   r.End,
		Status:    status,
	}
}

func TestOverlaps_BoundaryTouch(t *testing.T) {
	a := mustRange(t, "2024-03-01", "2024-03-10")
	b := mustRange(t, "2024-03-10", "2024-03-15")

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestOverlaps_Adjacent(t *testing.T) {
	a := mustRange(t, "2024-03-01", "2024-03-10")
	b := mustRange(t, "2024-03-11", "2024-03-15")

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestOverlaps_Contained(t *testing.T) {
	outer := mustRange(t, "2024-03-01", "2024-03-31")
	inner := mustRange(t, "2024-03-10", "2024-03-12")

	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestOverlaps_SingleDay(t *testing.T) {
	day := mustRange(t, "2024-03-10", "2024-03-10")

	assert.True(t, day.Overlaps(mustRange(t, "2024-03-01", "2024-03-10")))
	assert.False(t, day.Overlaps(mustRange(t, "2024-03-11", "2024-03-11")))
}

func TestFindConflicts_SkipsCancelled(t *testing.T) {
	candidate := mustRange(t, "2024-03-05", "2024-03-08")

	existing := []model.Booking{
		booking(t, "2024-03-01", "2024-03-10", model.BookingStatusCancelled),
		booking(t, "2024-03-07", "2024-03-12", model.BookingStatusConfirmed),
		booking(t, "2024-03-09", "2024-03-12", model.BookingStatusPending),
	}

	conflicts := FindConflicts(candidate, existing)
	require.Len(t, conflicts, 1)
	assert.Equal(t, existing[1].ID, conflicts[0].ID)
}

func TestFindConflicts_NoneFound(t *testing.T) {
	candidate := mustRange(t, "2024-03-11", "2024-03-15")

	existing := []model.Booking{
		booking(t, "2024-03-01", "2024-03-10", model.BookingStatusConfirmed),
	}

	assert.Empty(t, FindConflicts(candidate, existing))
}

func TestParseRange_Malformed(t *testing.T) {
	_, err := ParseRange("2024-13-01", "2024-03-10")
	assert.ErrorIs(t, err, ErrMalformedDate)

	_, err = ParseRange("2024-03-01", "not-a-date")
	assert.ErrorIs(t, err, ErrMalformedDate)

	_, err = ParseRange("2024-03-10", "2024-03-01")
	assert.ErrorIs(t, err, ErrMalformedDate)
}
