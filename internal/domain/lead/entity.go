package lead

import (
	"errors"
	"time"

	"venuebook/internal/pkg/dateutil"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateSpan = errors.New("invalid lead date span")
	ErrInvalidGuests   = errors.New("guest count must be positive")
	ErrNoIdentity      = errors.New("lead requires a customer id or a device id")
	ErrAlreadyLinked   = errors.New("lead is already linked to a booking")
)

// Lead is a pre-payment inquiry. It may be anonymous (device-tracked)
// and may later be promoted into exactly one Booking.
type Lead struct {
	id          uuid.UUID
	customerID  *uuid.UUID
	deviceID    *string
	venueID     uuid.UUID
	bookingID   *uuid.UUID
	span        dateutil.Span
	singleDay   bool
	guests      int32
	totalAmount int64
	status      Status
	source      Source
	createdAt   time.Time
	updatedAt   time.Time
}

func NewInquiry(
	venueID uuid.UUID,
	customerID *uuid.UUID,
	deviceID *string,
	span dateutil.Span,
	guests int32,
	totalAmount int64,
	now time.Time,
) (*Lead, error) {
	if !span.IsValid() {
		return nil, ErrInvalidDateSpan
	}
	if guests <= 0 {
		return nil, ErrInvalidGuests
	}
	if customerID == nil && deviceID == nil {
		return nil, ErrNoIdentity
	}
	return &Lead{
		id:          uuid.New(),
		customerID:  customerID,
		deviceID:    deviceID,
		venueID:     venueID,
		span:        span,
		singleDay:   span.IsSingleDay(),
		guests:      guests,
		totalAmount: totalAmount,
		status:      StatusNew,
		source:      SourceInquiry,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewShadowLead backs a direct booking so the funnel always has a lead
// trail. It is born pre-linked and qualified with source=booking.
func NewShadowLead(b BookingRef, now time.Time) *Lead {
	id := b.BookingID
	return &Lead{
		id:          uuid.New(),
		customerID:  b.CustomerID,
		deviceID:    b.DeviceID,
		venueID:     b.VenueID,
		bookingID:   &id,
		span:        b.Span,
		singleDay:   b.Span.IsSingleDay(),
		guests:      b.Guests,
		totalAmount: b.TotalAmount,
		status:      StatusQualified,
		source:      SourceBooking,
		createdAt:   now,
		updatedAt:   now,
	}
}

// BookingRef carries the booking fields a shadow lead mirrors.
type BookingRef struct {
	BookingID   uuid.UUID
	CustomerID  *uuid.UUID
	DeviceID    *string
	VenueID     uuid.UUID
	Span        dateutil.Span
	Guests      int32
	TotalAmount int64
}

func ReconstructLead(
	id uuid.UUID,
	customerID *uuid.UUID,
	deviceID *string,
	venueID uuid.UUID,
	bookingID *uuid.UUID,
	span dateutil.Span,
	guests int32,
	totalAmount int64,
	status Status,
	source Source,
	createdAt, updatedAt time.Time,
) *Lead {
	return &Lead{
		id:          id,
		customerID:  customerID,
		deviceID:    deviceID,
		venueID:     venueID,
		bookingID:   bookingID,
		span:        span,
		singleDay:   span.IsSingleDay(),
		guests:      guests,
		totalAmount: totalAmount,
		status:      status,
		source:      source,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l *Lead) ID() uuid.UUID          { return l.id }
func (l *Lead) CustomerID() *uuid.UUID { return l.customerID }
func (l *Lead) DeviceID() *string      { return l.deviceID }
func (l *Lead) VenueID() uuid.UUID     { return l.venueID }
func (l *Lead) BookingID() *uuid.UUID  { return l.bookingID }
func (l *Lead) Span() dateutil.Span    { return l.span }
func (l *Lead) IsSingleDay() bool      { return l.singleDay }
func (l *Lead) Guests() int32          { return l.guests }
func (l *Lead) TotalAmount() int64     { return l.totalAmount }
func (l *Lead) Status() Status         { return l.status }
func (l *Lead) Source() Source         { return l.source }
func (l *Lead) CreatedAt() time.Time   { return l.createdAt }
func (l *Lead) UpdatedAt() time.Time   { return l.updatedAt }

func (l *Lead) IsPromoted() bool {
	return l.bookingID != nil
}

// LinkBooking sets the one-shot booking linkage and advances the funnel
// to qualified. The booking id is never reassigned once set.
func (l *Lead) LinkBooking(bookingID uuid.UUID) error {
	if l.bookingID != nil {
		return ErrAlreadyLinked
	}
	l.bookingID = &bookingID
	l.status = StatusQualified
	l.source = SourceBooking
	return nil
}

// MarkConverted is the side effect of the linked booking reaching
// confirmed.
func (l *Lead) MarkConverted() {
	l.status = StatusConverted
}

// MarkLost is the side effect of the linked booking being cancelled or
// failed.
func (l *Lead) MarkLost() {
	l.status = StatusLost
}
