//go:build unit

package lead_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/lead"
	"venuebook/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inquirySpan(t *testing.T) dateutil.Span {
	t.Helper()
	d, err := dateutil.ParseDay("2025-06-10")
	require.NoError(t, err)
	return dateutil.SingleDay(d)
}

func TestNewInquiry(t *testing.T) {
	venueID := uuid.New()
	customerID := uuid.New()
	now := time.Now()

	t.Run("customer inquiry", func(t *testing.T) {
		l, err := lead.NewInquiry(venueID, &customerID, nil, inquirySpan(t), 50, 120000, now)
		require.NoError(t, err)
		assert.Equal(t, lead.StatusNew, l.Status())
		assert.Equal(t, lead.SourceInquiry, l.Source())
		assert.Nil(t, l.BookingID())
		assert.False(t, l.IsPromoted())
	})

	t.Run("anonymous inquiry needs a device id", func(t *testing.T) {
		_, err := lead.NewInquiry(venueID, nil, nil, inquirySpan(t), 50, 120000, now)
		require.ErrorIs(t, err, lead.ErrNoIdentity)

		deviceID := "device-abc"
		l, err := lead.NewInquiry(venueID, nil, &deviceID, inquirySpan(t), 50, 120000, now)
		require.NoError(t, err)
		assert.Nil(t, l.CustomerID())
		require.NotNil(t, l.DeviceID())
	})
}

func TestLinkBooking(t *testing.T) {
	venueID := uuid.New()
	customerID := uuid.New()
	l, err := lead.NewInquiry(venueID, &customerID, nil, inquirySpan(t), 50, 120000, time.Now())
	require.NoError(t, err)

	first := uuid.New()
	require.NoError(t, l.LinkBooking(first))
	require.NotNil(t, l.BookingID())
	assert.Equal(t, first, *l.BookingID())
	assert.Equal(t, lead.StatusQualified, l.Status())
	assert.Equal(t, lead.SourceBooking, l.Source())

	// Linkage is one-shot: a second link never reassigns.
	require.ErrorIs(t, l.LinkBooking(uuid.New()), lead.ErrAlreadyLinked)
	assert.Equal(t, first, *l.BookingID())
}

func TestShadowLead(t *testing.T) {
	bookingID := uuid.New()
	venueID := uuid.New()
	l := lead.NewShadowLead(lead.BookingRef{
		BookingID:   bookingID,
		VenueID:     venueID,
		Span:        inquirySpan(t),
		Guests:      80,
		TotalAmount: 250000,
	}, time.Now())

	require.NotNil(t, l.BookingID())
	assert.Equal(t, bookingID, *l.BookingID())
	assert.Equal(t, lead.StatusQualified, l.Status())
	assert.Equal(t, lead.SourceBooking, l.Source())
	require.ErrorIs(t, l.LinkBooking(uuid.New()), lead.ErrAlreadyLinked)
}

func TestFunnelSideEffects(t *testing.T) {
	customerID := uuid.New()
	l, err := lead.NewInquiry(uuid.New(), &customerID, nil, inquirySpan(t), 10, 5000, time.Now())
	require.NoError(t, err)
	require.NoError(t, l.LinkBooking(uuid.New()))

	l.MarkConverted()
	assert.Equal(t, lead.StatusConverted, l.Status())

	l.MarkLost()
	assert.Equal(t, lead.StatusLost, l.Status())
}
