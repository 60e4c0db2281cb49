package commands

import (
	"context"
	"errors"
	"log/slog"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/lead"
	"venuebook/internal/domain/user"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type StatusCommands interface {
	// UpdateStatus applies a role-gated booking transition and its
	// funnel side effects in one transaction.
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status, actor user.Principal) error
	// SetApproval flips the admin approval gate.
	SetApproval(ctx context.Context, bookingID uuid.UUID, approved bool, actor user.Principal) error
}

type statusUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	invalidator AvailabilityInvalidator
	ledger      LedgerCommands
}

func NewStatusUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	invalidator AvailabilityInvalidator,
	ledgerCommands LedgerCommands,
) StatusCommands {
	return &statusUseCaseImpl{
		uow:         uow,
		clock:       clk,
		invalidator: invalidator,
		ledger:      ledgerCommands,
	}
}

func (uc *statusUseCaseImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status, actor user.Principal) error {
	now := uc.clock.Now()
	var venueID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		ownsVenue := false
		if actor.IsVendor() {
			v, verr := tx.Reads().VenueByID(ctx, b.VenueID())
			if verr != nil {
				return errs.Mark(verr, errs.ErrDatabaseOperationFailed)
			}
			ownsVenue = v.OwnedBy(actor.ID)
		}

		if terr := b.TransitionTo(next, actor, ownsVenue); terr != nil {
			return mapTransitionErr(terr)
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, next, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// Funnel side effects ride the same transaction so a lead can
		// never disagree with its booking's outcome.
		switch next {
		case booking.StatusConfirmed:
			err = tx.Leads().UpdateStatusByBookingID(ctx, tx.DB(), bookingID, lead.StatusConverted, now)
		case booking.StatusCancelled, booking.StatusFailed:
			err = tx.Leads().UpdateStatusByBookingID(ctx, tx.DB(), bookingID, lead.StatusLost, now)
		}
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		venueID = b.VenueID()
		return nil
	})
	if err != nil {
		return err
	}

	uc.invalidator.Invalidate(ctx, venueID)

	// Ledger posting stays outside the transaction: a posting failure
	// must not roll back a confirmed booking, and backfill repairs gaps.
	if next == booking.StatusConfirmed {
		if postErr := uc.ledger.PostBookingIncome(ctx, bookingID); postErr != nil {
			slog.Warn("ledger posting after confirmation failed, backfill will repair",
				"booking_id", bookingID, "error", postErr.Error())
		}
	}
	return nil
}

func (uc *statusUseCaseImpl) SetApproval(ctx context.Context, bookingID uuid.UUID, approved bool, actor user.Principal) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := b.SetAdminApproval(approved, actor); err != nil {
			return mapTransitionErr(err)
		}
		return tx.Bookings().UpdateApproval(ctx, tx.DB(), bookingID, approved, now)
	})
}

func mapTransitionErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrAccessDenied):
		return errs.Mark(err, errs.ErrAccessDenied)
	case errors.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, booking.ErrInvalidStatus):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return err
	}
}
