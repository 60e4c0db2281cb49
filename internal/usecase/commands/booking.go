package commands

import (
	"context"
	"log/slog"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/lead"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityInvalidator drops cached calendars after a write touches
// a venue's bookings.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, venueID uuid.UUID)
}

type CreateInquiryRequest struct {
	VenueID     uuid.UUID
	Span        dateutil.Span
	Guests      int32
	TotalAmount int64
	CustomerID  *uuid.UUID
	DeviceID    *string
}

type CreateBookingRequest struct {
	VenueID     uuid.UUID
	Span        dateutil.Span
	Guests      int32
	TotalAmount int64
	CustomerID  *uuid.UUID
	DeviceID    *string
	PaymentID   *string
}

type CreateDirectBookingRequest struct {
	VenueID     uuid.UUID
	Span        dateutil.Span
	Guests      int32
	TotalAmount int64
}

type CreateBookingResult struct {
	BookingID uuid.UUID
	LeadID    uuid.UUID
}

type BookingCommands interface {
	// CreateInquiry records a pre-payment lead. Inquiries never occupy
	// dates, so no availability gate applies.
	CreateInquiry(ctx context.Context, req CreateInquiryRequest) (uuid.UUID, error)
	// CreateBooking is the paid customer path: an availability-gated
	// pending booking plus its shadow lead.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
	// CreateDirectBooking is the vendor path on the vendor's own venue:
	// born confirmed and approved, no payment attached.
	CreateDirectBooking(ctx context.Context, req CreateDirectBookingRequest, vendorID uuid.UUID) (*CreateBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	cfg         config.BookingConfig
	invalidator AvailabilityInvalidator
	ledger      LedgerCommands
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	cfg config.BookingConfig,
	invalidator AvailabilityInvalidator,
	ledgerCommands LedgerCommands,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:         uow,
		clock:       clk,
		cfg:         cfg,
		invalidator: invalidator,
		ledger:      ledgerCommands,
	}
}

func (uc *bookingUseCaseImpl) CreateInquiry(ctx context.Context, req CreateInquiryRequest) (uuid.UUID, error) {
	l, err := lead.NewInquiry(req.VenueID, req.CustomerID, req.DeviceID, req.Span, req.Guests, req.TotalAmount, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, verr := tx.Reads().VenueByID(ctx, req.VenueID); verr != nil {
			if infra.IsKind(verr, infra.KindNotFound) {
				return errs.Mark(verr, errs.ErrVenueNotFound)
			}
			return errs.Mark(verr, errs.ErrDatabaseOperationFailed)
		}
		return tx.Leads().Create(ctx, tx.DB(), l)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return l.ID(), nil
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	amount, err := booking.NewMoney(req.TotalAmount)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	now := uc.clock.Now()

	b, err := booking.NewPendingBooking(req.VenueID, req.CustomerID, req.Span, req.Guests, amount, req.PaymentID, req.DeviceID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	shadow := lead.NewShadowLead(lead.BookingRef{
		BookingID:   b.ID(),
		CustomerID:  req.CustomerID,
		DeviceID:    req.DeviceID,
		VenueID:     req.VenueID,
		Span:        req.Span,
		Guests:      req.Guests,
		TotalAmount: req.TotalAmount,
	}, now)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return uc.persistBookingWithShadowLead(ctx, tx, b, shadow)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.Invalidate(ctx, req.VenueID)
	return &CreateBookingResult{BookingID: b.ID(), LeadID: shadow.ID()}, nil
}

func (uc *bookingUseCaseImpl) CreateDirectBooking(ctx context.Context, req CreateDirectBookingRequest, vendorID uuid.UUID) (*CreateBookingResult, error) {
	amount, err := booking.NewMoney(req.TotalAmount)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	now := uc.clock.Now()

	b, err := booking.NewVendorDirectBooking(req.VenueID, req.Span, req.Guests, amount, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	shadow := lead.NewShadowLead(lead.BookingRef{
		BookingID:   b.ID(),
		VenueID:     req.VenueID,
		Span:        req.Span,
		Guests:      req.Guests,
		TotalAmount: req.TotalAmount,
	}, now)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, verr := tx.Reads().VenueByID(ctx, req.VenueID)
		if verr != nil {
			if infra.IsKind(verr, infra.KindNotFound) {
				return errs.Mark(verr, errs.ErrVenueNotFound)
			}
			return errs.Mark(verr, errs.ErrDatabaseOperationFailed)
		}
		if !v.OwnedBy(vendorID) {
			return errs.ErrAccessDenied
		}
		return uc.persistBookingWithShadowLead(ctx, tx, b, shadow)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.Invalidate(ctx, req.VenueID)

	// Revenue recognition for direct bookings happens immediately; the
	// dedup index makes a replay harmless and backfill repairs any gap.
	if postErr := uc.ledger.PostBookingIncome(ctx, b.ID()); postErr != nil {
		slog.Warn("ledger posting for direct booking failed, backfill will repair",
			"booking_id", b.ID(), "error", postErr.Error())
	}

	return &CreateBookingResult{BookingID: b.ID(), LeadID: shadow.ID()}, nil
}

// persistBookingWithShadowLead runs the availability gate and writes
// the booking/lead pair inside one transaction. An exclusion violation
// from a concurrent writer surfaces as a date conflict.
func (uc *bookingUseCaseImpl) persistBookingWithShadowLead(ctx context.Context, tx shared.Tx, b *booking.Booking, shadow *lead.Lead) error {
	today := dateutil.NormalizeDay(uc.clock.Now())
	if err := checkAvailability(ctx, tx.Reads(), b.VenueID(), b.Span(), b.Guests(), today, uc.cfg.EnforceCapacity); err != nil {
		return err
	}

	if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, errs.ErrDateConflict)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Leads().Create(ctx, tx.DB(), shadow); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
