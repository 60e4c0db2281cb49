//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"venuebook/internal/domain/booking"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type BookingBuilder struct {
	ID            uuid.UUID
	CustomerID    *uuid.UUID
	VenueID       uuid.UUID
	VenueName     string
	VendorID      uuid.UUID
	DateFrom      string
	DateTo        string
	Guests        int32
	TotalAmount   int64
	Status        booking.Status
	PaymentID     *string
	PaymentStatus booking.PaymentStatus
	AdminApproved bool
	DeviceID      *string
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	customerID := uuid.New()
	return &BookingBuilder{
		ID:            uuid.New(),
		CustomerID:    &customerID,
		VenueID:       uuid.New(),
		VenueName:     "Test Venue",
		VendorID:      uuid.New(),
		DateFrom:      "2025-07-10",
		DateTo:        "2025-07-10",
		Guests:        20,
		TotalAmount:   50000,
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentPaid,
		AdminApproved: false,
		Now:           time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) span() dateutil.Span {
	from, err := dateutil.ParseDay(b.DateFrom)
	if err != nil {
		panic("bad test date: " + b.DateFrom)
	}
	to, err := dateutil.ParseDay(b.DateTo)
	if err != nil {
		panic("bad test date: " + b.DateTo)
	}
	return dateutil.NewSpan(from, to)
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	amount, err := booking.NewMoney(b.TotalAmount)
	if err != nil {
		return nil, err
	}
	return booking.NewPendingBooking(b.VenueID, b.CustomerID, b.span(), b.Guests, amount, b.PaymentID, b.DeviceID, b.Now)
}

func (b *BookingBuilder) BuildVendorDirect() (*booking.Booking, error) {
	amount, err := booking.NewMoney(b.TotalAmount)
	if err != nil {
		return nil, err
	}
	return booking.NewVendorDirectBooking(b.VenueID, b.span(), b.Guests, amount, b.Now)
}

func (b *BookingBuilder) MustReconstruct(t *testing.T) *booking.Booking {
	t.Helper()
	amount, err := booking.NewMoney(b.TotalAmount)
	require.NoError(t, err)
	return booking.ReconstructBooking(
		b.ID, b.CustomerID, b.VenueID, b.span(), b.Guests, amount,
		b.Status, b.PaymentID, b.PaymentStatus, b.AdminApproved, b.DeviceID,
		b.Now, b.Now,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	s := b.span()
	return &queries.BookingView{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		VendorID:      b.VendorID,
		DateFrom:      s.From.Time(),
		DateTo:        s.To.Time(),
		SingleDay:     s.IsSingleDay(),
		Guests:        b.Guests,
		TotalAmount:   b.TotalAmount,
		Status:        b.Status.String(),
		PaymentID:     b.PaymentID,
		PaymentStatus: string(b.PaymentStatus),
		AdminApproved: b.AdminApproved,
		DeviceID:      b.DeviceID,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	s := b.span()
	return &queries.BookingListItem{
		ID:            b.ID,
		VenueID:       b.VenueID,
		VenueName:     b.VenueName,
		DateFrom:      s.From.Time(),
		DateTo:        s.To.Time(),
		SingleDay:     s.IsSingleDay(),
		Guests:        b.Guests,
		TotalAmount:   b.TotalAmount,
		Status:        b.Status.String(),
		PaymentStatus: string(b.PaymentStatus),
		AdminApproved: b.AdminApproved,
		CreatedAt:     b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	dateFrom := b.DateFrom
	dateTo := b.DateTo
	req := reqdto.CreateBookingRequest{
		VenueID:     b.VenueID,
		Guests:      b.Guests,
		TotalAmount: b.TotalAmount,
		PaymentID:   b.PaymentID,
		DeviceID:    b.DeviceID,
	}
	if dateFrom == dateTo {
		req.Date = &dateFrom
	} else {
		req.DateFrom = &dateFrom
		req.DateTo = &dateTo
	}
	return req
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithCustomerID(customerID uuid.UUID) *BookingBuilder {
	b.CustomerID = &customerID
	return b
}

func (b *BookingBuilder) Anonymous(deviceID string) *BookingBuilder {
	b.CustomerID = nil
	b.DeviceID = &deviceID
	return b
}

func (b *BookingBuilder) WithVenueID(venueID uuid.UUID) *BookingBuilder {
	b.VenueID = venueID
	return b
}

func (b *BookingBuilder) WithVendorID(vendorID uuid.UUID) *BookingBuilder {
	b.VendorID = vendorID
	return b
}

func (b *BookingBuilder) WithDates(from, to string) *BookingBuilder {
	b.DateFrom = from
	b.DateTo = to
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.DateFrom = date
	b.DateTo = date
	return b
}

func (b *BookingBuilder) WithGuests(guests int32) *BookingBuilder {
	b.Guests = guests
	return b
}

func (b *BookingBuilder) WithTotalAmount(amount int64) *BookingBuilder {
	b.TotalAmount = amount
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPaymentID(paymentID string) *BookingBuilder {
	b.PaymentID = &paymentID
	return b
}

func (b *BookingBuilder) WithPaymentStatus(status booking.PaymentStatus) *BookingBuilder {
	b.PaymentStatus = status
	return b
}

func (b *BookingBuilder) WithAdminApproved(approved bool) *BookingBuilder {
	b.AdminApproved = approved
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}
