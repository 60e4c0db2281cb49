//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"venuebook/internal/domain/lead"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type LeadBuilder struct {
	ID          uuid.UUID
	CustomerID  *uuid.UUID
	DeviceID    *string
	VenueID     uuid.UUID
	VenueName   string
	VendorID    uuid.UUID
	BookingID   *uuid.UUID
	DateFrom    string
	DateTo      string
	Guests      int32
	TotalAmount int64
	Status      lead.Status
	Source      lead.Source
	Now         time.Time
}

func NewLeadBuilder() *LeadBuilder {
	customerID := uuid.New()
	return &LeadBuilder{
		ID:          uuid.New(),
		CustomerID:  &customerID,
		VenueID:     uuid.New(),
		VenueName:   "Test Venue",
		VendorID:    uuid.New(),
		DateFrom:    "2025-07-10",
		DateTo:      "2025-07-10",
		Guests:      20,
		TotalAmount: 50000,
		Status:      lead.StatusNew,
		Source:      lead.SourceInquiry,
		Now:         time.Now(),
	}
}

func (l *LeadBuilder) With(mutate func(*LeadBuilder)) *LeadBuilder {
	mutate(l)
	return l
}

func (l *LeadBuilder) span() dateutil.Span {
	from, err := dateutil.ParseDay(l.DateFrom)
	if err != nil {
		panic("bad test date: " + l.DateFrom)
	}
	to, err := dateutil.ParseDay(l.DateTo)
	if err != nil {
		panic("bad test date: " + l.DateTo)
	}
	return dateutil.NewSpan(from, to)
}

// Build methods
func (l *LeadBuilder) BuildDomain() (*lead.Lead, error) {
	return lead.NewInquiry(l.VenueID, l.CustomerID, l.DeviceID, l.span(), l.Guests, l.TotalAmount, l.Now)
}

func (l *LeadBuilder) MustBuild(t *testing.T) *lead.Lead {
	t.Helper()
	ld, err := l.BuildDomain()
	require.NoError(t, err)
	return ld
}

func (l *LeadBuilder) MustReconstruct(t *testing.T) *lead.Lead {
	t.Helper()
	return lead.ReconstructLead(
		l.ID, l.CustomerID, l.DeviceID, l.VenueID, l.BookingID,
		l.span(), l.Guests, l.TotalAmount, l.Status, l.Source,
		l.Now, l.Now,
	)
}

func (l *LeadBuilder) BuildView() *queries.LeadView {
	s := l.span()
	return &queries.LeadView{
		ID:          l.ID,
		CustomerID:  l.CustomerID,
		DeviceID:    l.DeviceID,
		VenueID:     l.VenueID,
		VenueName:   l.VenueName,
		VendorID:    l.VendorID,
		BookingID:   l.BookingID,
		DateFrom:    s.From.Time(),
		DateTo:      s.To.Time(),
		SingleDay:   s.IsSingleDay(),
		Guests:      l.Guests,
		TotalAmount: l.TotalAmount,
		Status:      l.Status.String(),
		Source:      l.Source.String(),
		CreatedAt:   l.Now,
		UpdatedAt:   l.Now,
	}
}

// Fluent builder methods
func (l *LeadBuilder) WithID(id uuid.UUID) *LeadBuilder {
	l.ID = id
	return l
}

func (l *LeadBuilder) WithCustomerID(customerID uuid.UUID) *LeadBuilder {
	l.CustomerID = &customerID
	return l
}

func (l *LeadBuilder) Anonymous(deviceID string) *LeadBuilder {
	l.CustomerID = nil
	l.DeviceID = &deviceID
	return l
}

func (l *LeadBuilder) WithVenueID(venueID uuid.UUID) *LeadBuilder {
	l.VenueID = venueID
	return l
}

func (l *LeadBuilder) WithVendorID(vendorID uuid.UUID) *LeadBuilder {
	l.VendorID = vendorID
	return l
}

func (l *LeadBuilder) WithBookingID(bookingID uuid.UUID) *LeadBuilder {
	l.BookingID = &bookingID
	return l
}

func (l *LeadBuilder) WithDates(from, to string) *LeadBuilder {
	l.DateFrom = from
	l.DateTo = to
	return l
}

func (l *LeadBuilder) WithGuests(guests int32) *LeadBuilder {
	l.Guests = guests
	return l
}

func (l *LeadBuilder) WithTotalAmount(amount int64) *LeadBuilder {
	l.TotalAmount = amount
	return l
}

func (l *LeadBuilder) WithStatus(status lead.Status) *LeadBuilder {
	l.Status = status
	return l
}

func (l *LeadBuilder) WithSource(source lead.Source) *LeadBuilder {
	l.Source = source
	return l
}
