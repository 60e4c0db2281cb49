package booking

import (
	"errors"
	"time"

	"venuebook/internal/domain/user"
	"venuebook/internal/pkg/dateutil"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidDateSpan   = errors.New("invalid booking date span")
	ErrInvalidGuests     = errors.New("guest count must be positive")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrAccessDenied      = errors.New("actor may not perform this transition")
)

type Booking struct {
	id            uuid.UUID
	customerID    *uuid.UUID
	venueID       uuid.UUID
	span          dateutil.Span
	singleDay     bool
	guests        int32
	totalAmount   Money
	status        Status
	paymentID     *string
	paymentStatus PaymentStatus
	adminApproved bool
	deviceID      *string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPendingBooking is the customer/payment path: born pending and
// waiting for the admin gate before any vendor can see it. A payment
// id on creation means the charge was already captured.
func NewPendingBooking(
	venueID uuid.UUID,
	customerID *uuid.UUID,
	span dateutil.Span,
	guests int32,
	amount Money,
	paymentID *string,
	deviceID *string,
	now time.Time,
) (*Booking, error) {
	if !span.IsValid() {
		return nil, ErrInvalidDateSpan
	}
	if guests <= 0 {
		return nil, ErrInvalidGuests
	}
	paymentStatus := PaymentPending
	if paymentID != nil {
		paymentStatus = PaymentPaid
	}
	return &Booking{
		id:            uuid.New(),
		customerID:    customerID,
		venueID:       venueID,
		span:          span,
		singleDay:     span.IsSingleDay(),
		guests:        guests,
		totalAmount:   amount,
		status:        StatusPending,
		paymentID:     paymentID,
		paymentStatus: paymentStatus,
		adminApproved: false,
		deviceID:      deviceID,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// NewVendorDirectBooking is the trusted-vendor path: no payment is
// involved and the approval gate is bypassed, so the booking is born
// confirmed and approved.
func NewVendorDirectBooking(
	venueID uuid.UUID,
	span dateutil.Span,
	guests int32,
	amount Money,
	now time.Time,
) (*Booking, error) {
	if !span.IsValid() {
		return nil, ErrInvalidDateSpan
	}
	if guests <= 0 {
		return nil, ErrInvalidGuests
	}
	return &Booking{
		id:            uuid.New(),
		venueID:       venueID,
		span:          span,
		singleDay:     span.IsSingleDay(),
		guests:        guests,
		totalAmount:   amount,
		status:        StatusConfirmed,
		paymentStatus: PaymentPending,
		adminApproved: true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	customerID *uuid.UUID,
	venueID uuid.UUID,
	span dateutil.Span,
	guests int32,
	totalAmount Money,
	status Status,
	paymentID *string,
	paymentStatus PaymentStatus,
	adminApproved bool,
	deviceID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		customerID:    customerID,
		venueID:       venueID,
		span:          span,
		singleDay:     span.IsSingleDay(),
		guests:        guests,
		totalAmount:   totalAmount,
		status:        status,
		paymentID:     paymentID,
		paymentStatus: paymentStatus,
		adminApproved: adminApproved,
		deviceID:      deviceID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) CustomerID() *uuid.UUID       { return b.customerID }
func (b *Booking) VenueID() uuid.UUID           { return b.venueID }
func (b *Booking) Span() dateutil.Span          { return b.span }
func (b *Booking) IsSingleDay() bool            { return b.singleDay }
func (b *Booking) Guests() int32                { return b.guests }
func (b *Booking) TotalAmount() Money           { return b.totalAmount }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentID() *string           { return b.paymentID }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) AdminApproved() bool          { return b.adminApproved }
func (b *Booking) DeviceID() *string            { return b.deviceID }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

func (b *Booking) IsOwnedBy(customerID uuid.UUID) bool {
	return b.customerID != nil && *b.customerID == customerID
}

// canTransition is the pure state-machine edge table. The only outbound
// edge from a non-pending state is confirmed → cancelled.
func canTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled || to == StatusFailed
	case StatusConfirmed:
		return to == StatusCancelled
	default:
		return false
	}
}

// TransitionTo applies a role-gated status transition.
// ownsVenue reports whether the acting vendor owns the booking's venue;
// it is ignored for other roles.
func (b *Booking) TransitionTo(next Status, actor user.Principal, ownsVenue bool) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}

	switch actor.Role {
	case user.RoleAdmin:
		// unrestricted
	case user.RoleCustomer:
		if !b.IsOwnedBy(actor.ID) || next != StatusCancelled {
			return ErrAccessDenied
		}
	case user.RoleVendor:
		// Vendors never act on bookings the admin has not cleared.
		if !ownsVenue || !b.adminApproved {
			return ErrAccessDenied
		}
		if next != StatusConfirmed && next != StatusCancelled {
			return ErrAccessDenied
		}
	default:
		return ErrAccessDenied
	}

	if !canTransition(b.status, next) {
		return ErrInvalidTransition
	}

	b.status = next
	return nil
}

// SetAdminApproval flips the approval gate, which is orthogonal to the
// status axis and exclusively admin-controlled.
func (b *Booking) SetAdminApproval(approved bool, actor user.Principal) error {
	if !actor.IsAdmin() {
		return ErrAccessDenied
	}
	b.adminApproved = approved
	return nil
}
