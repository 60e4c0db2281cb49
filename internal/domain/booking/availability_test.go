//go:build unit

package booking_test

import (
	"testing"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/venue"
	"venuebook/internal/pkg/dateutil"
	"venuebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) dateutil.Day {
	t.Helper()
	d, err := dateutil.ParseDay(s)
	require.NoError(t, err)
	return d
}

func span(t *testing.T, from, to string) dateutil.Span {
	t.Helper()
	return dateutil.NewSpan(day(t, from), day(t, to))
}

func TestCheckAvailability(t *testing.T) {
	today := day(t, "2025-06-01")

	t.Run("accepts a free future date", func(t *testing.T) {
		v := builder.NewVenueBuilder().MustBuild(t)
		d := booking.CheckAvailability(booking.AvailabilityCheck{
			Venue: v,
			Span:  dateutil.SingleDay(day(t, "2025-06-10")),
			Today: today,
		})
		assert.True(t, d.OK)
	})

	t.Run("accepts a booking for today", func(t *testing.T) {
		v := builder.NewVenueBuilder().MustBuild(t)
		d := booking.CheckAvailability(booking.AvailabilityCheck{
			Venue: v,
			Span:  dateutil.SingleDay(today),
			Today: today,
		})
		assert.True(t, d.OK)
	})

	t.Run("rejects yesterday with DATE_IN_PAST", func(t *testing.T) {
		v := builder.NewVenueBuilder().MustBuild(t)
		d := booking.CheckAvailability(booking.AvailabilityCheck{
			Venue: v,
			Span:  dateutil.SingleDay(day(t, "2025-05-31")),
			Today: today,
		})
		require.False(t, d.OK)
		assert.Equal(t, booking.ReasonDateInPast, d.Reason)
	})

	t.Run("rejects unapproved venue before any date logic", func(t *testing.T) {
		v := builder.NewVenueBuilder().WithStatus(venue.StatusPending).MustBuild(t)
		// Even a past date reports VENUE_NOT_AVAILABLE: the venue gate
		// short-circuits first.
		d := booking.CheckAvailability(booking.AvailabilityCheck{
			Venue: v,
			Span:  dateutil.SingleDay(day(t, "2025-05-31")),
			Today: today,
		})
		require.False(t, d.OK)
		assert.Equal(t, booking.ReasonVenueNotAvailable, d.Reason)
	})

	t.Run("rejects inverted range with VALIDATION_ERROR", func(t *testing.T) {
		v := builder.NewVenueBuilder().MustBuild(t)
		d := booking.CheckAvailability(booking.AvailabilityCheck{
			Venue: v,
			Span:  span(t, "2025-06-12", "2025-06-10"),
			Today: today,
		})
		require.False(t, d.OK)
		assert.Equal(t, booking.ReasonValidationError, d.Reason)
	})

	t.Run("blocked dates", func(t *testing.T) {
		v := builder.NewVenueBuilder().WithBlockedDates(day(t, "2025-07-04")).MustBuild(t)

		d := booking.CheckAvailability(booking.AvailabilityCheck{
			Venue: v,
			Span:  dateutil.SingleDay(day(t, "2025-07-04")),
			Today: today,
		})
		require.False(t, d.OK)
		assert.Equal(t, booking.ReasonDateBlocked, d.Reason)
		require.Len(t, d.ConflictDates, 1)
		assert.Equal(t, "2025-07-04", d.ConflictDates[0].String())

		d = booking.CheckAvailability(booking.AvailabilityCheck{
			Venue: v,
			Span:  span(t, "2025-07-03", "2025-07-05"),
			Today: today,
		})
		require.False(t, d.OK)
		assert.Equal(t, booking.ReasonDateBlocked, d.Reason)
	})

	t.Run("occupancy overlap law", func(t *testing.T) {
		v := builder.NewVenueBuilder().MustBuild(t)
		existingID := uuid.New()

		check := func(s dateutil.Span, occ dateutil.Span) booking.Decision {
			return booking.CheckAvailability(booking.AvailabilityCheck{
				Venue: v,
				Span:  s,
				Today: today,
				Occupied: []booking.OccupiedSpan{
					{BookingID: existingID, Span: occ},
				},
			})
		}

		t.Run("range conflicts with contained single-day booking", func(t *testing.T) {
			d := check(span(t, "2025-06-10", "2025-06-12"), dateutil.SingleDay(day(t, "2025-06-11")))
			require.False(t, d.OK)
			assert.Equal(t, booking.ReasonDateConflict, d.Reason)
			require.NotNil(t, d.ConflictBooking)
			assert.Equal(t, existingID, *d.ConflictBooking)
		})

		t.Run("shared boundary day conflicts", func(t *testing.T) {
			d := check(span(t, "2025-06-05", "2025-06-10"), span(t, "2025-06-01", "2025-06-05"))
			require.False(t, d.OK)
			assert.Equal(t, booking.ReasonDateConflict, d.Reason)
			require.Len(t, d.ConflictDates, 1)
			assert.Equal(t, "2025-06-05", d.ConflictDates[0].String())
		})

		t.Run("adjacent span accepted", func(t *testing.T) {
			d := check(span(t, "2025-06-06", "2025-06-10"), span(t, "2025-06-01", "2025-06-05"))
			assert.True(t, d.OK)
		})

		t.Run("overlapping tail conflicts", func(t *testing.T) {
			d := check(span(t, "2025-06-10", "2025-06-12"), span(t, "2025-06-12", "2025-06-15"))
			require.False(t, d.OK)
			assert.Equal(t, booking.ReasonDateConflict, d.Reason)
		})

		t.Run("disjoint span accepted", func(t *testing.T) {
			d := check(span(t, "2025-06-10", "2025-06-12"), span(t, "2025-06-13", "2025-06-20"))
			assert.True(t, d.OK)
		})
	})

	t.Run("capacity", func(t *testing.T) {
		v := builder.NewVenueBuilder().WithCapacity(10, 100).MustBuild(t)

		t.Run("not enforced by default", func(t *testing.T) {
			d := booking.CheckAvailability(booking.AvailabilityCheck{
				Venue:  v,
				Span:   dateutil.SingleDay(day(t, "2025-06-10")),
				Guests: 500,
				Today:  today,
			})
			assert.True(t, d.OK)
		})

		t.Run("enforced when switched on", func(t *testing.T) {
			d := booking.CheckAvailability(booking.AvailabilityCheck{
				Venue:           v,
				Span:            dateutil.SingleDay(day(t, "2025-06-10")),
				Guests:          500,
				Today:           today,
				EnforceCapacity: true,
			})
			require.False(t, d.OK)
			assert.Equal(t, booking.ReasonCapacityExceeded, d.Reason)
		})
	})
}
