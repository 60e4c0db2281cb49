package commands

import (
	"context"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/lead"
	"venuebook/internal/domain/user"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromoteLeadRequest struct {
	PaymentID *string
}

type PromoteLeadResult struct {
	BookingID uuid.UUID
}

type PromotionCommands interface {
	// PromoteLead converts a lead into a pending booking exactly once.
	// The second promoter loses on the row lock or the unique linkage,
	// never by creating a duplicate booking.
	PromoteLead(ctx context.Context, leadID uuid.UUID, req PromoteLeadRequest, actor user.Principal) (*PromoteLeadResult, error)
}

type promotionUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	cfg         config.BookingConfig
	invalidator AvailabilityInvalidator
}

func NewPromotionUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	cfg config.BookingConfig,
	invalidator AvailabilityInvalidator,
) PromotionCommands {
	return &promotionUseCaseImpl{
		uow:         uow,
		clock:       clk,
		cfg:         cfg,
		invalidator: invalidator,
	}
}

func (uc *promotionUseCaseImpl) PromoteLead(ctx context.Context, leadID uuid.UUID, req PromoteLeadRequest, actor user.Principal) (*PromoteLeadResult, error) {
	now := uc.clock.Now()
	var venueID, bookingID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Leads().FindByIDForUpdate(ctx, tx.DB(), leadID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrLeadNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !canPromote(l, actor) {
			return errs.ErrAccessDenied
		}
		if l.IsPromoted() {
			return errs.ErrAlreadyPromoted
		}

		today := dateutil.NormalizeDay(now)
		if err := checkAvailability(ctx, tx.Reads(), l.VenueID(), l.Span(), l.Guests(), today, uc.cfg.EnforceCapacity); err != nil {
			return err
		}

		amount, err := booking.NewMoney(l.TotalAmount())
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		b, err := booking.NewPendingBooking(l.VenueID(), l.CustomerID(), l.Span(), l.Guests(), amount, req.PaymentID, l.DeviceID(), now)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrDateConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := l.LinkBooking(b.ID()); err != nil {
			return errs.Mark(err, errs.ErrAlreadyPromoted)
		}
		if err := tx.Leads().Link(ctx, tx.DB(), l, now); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrAlreadyPromoted)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		venueID = l.VenueID()
		bookingID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.Invalidate(ctx, venueID)
	return &PromoteLeadResult{BookingID: bookingID}, nil
}

// canPromote: admins promote anything, customers only their own leads.
// Anonymous (device-tracked) leads go through support staff.
func canPromote(l *lead.Lead, actor user.Principal) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.IsCustomer() && l.CustomerID() != nil && *l.CustomerID() == actor.ID {
		return true
	}
	return false
}
