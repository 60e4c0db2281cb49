//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingReference(t *testing.T) {
	id := uuid.MustParse("0d9fcb11-4e4b-4a6e-9d5a-6f2a13bc9f42")
	assert.Equal(t, "Booking #bc9f42", ledger.BookingReference(id))
}

func TestNewBookingIncome(t *testing.T) {
	vendorID := uuid.New()
	venueID := uuid.New()
	bookingID := uuid.New()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("paid booking yields paid entry", func(t *testing.T) {
		e, err := ledger.NewBookingIncome(vendorID, venueID, bookingID, "Sunset Hall", 250000, date, true, now)
		require.NoError(t, err)

		assert.Equal(t, ledger.TypeIncome, e.Type())
		assert.Equal(t, ledger.CategoryBookingPayment, e.Category())
		assert.Equal(t, ledger.StatusPaid, e.Status())
		assert.Equal(t, int64(250000), e.Amount())
		assert.Equal(t, ledger.BookingReference(bookingID), e.Reference())
		require.NotNil(t, e.VenueID())
		assert.Equal(t, venueID, *e.VenueID())
	})

	t.Run("unpaid booking yields pending entry", func(t *testing.T) {
		e, err := ledger.NewBookingIncome(vendorID, venueID, bookingID, "Sunset Hall", 250000, date, false, now)
		require.NoError(t, err)
		assert.Equal(t, ledger.StatusPending, e.Status())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := ledger.NewBookingIncome(vendorID, venueID, bookingID, "Sunset Hall", 0, date, true, now)
		require.ErrorIs(t, err, ledger.ErrNonPositiveAmount)
	})
}
