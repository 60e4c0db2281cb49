package commands

import (
	"context"
	"log/slog"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/ledger"
	"venuebook/internal/infra"
	"venuebook/internal/infra/readstore"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BackfillResult struct {
	Scanned int
	Posted  int
	Skipped int
}

type LedgerCommands interface {
	// PostBookingIncome posts the income entry for one booking. Posting
	// the same booking twice is a no-op thanks to the dedup index.
	PostBookingIncome(ctx context.Context, bookingID uuid.UUID) error
	// Backfill scans every revenue-recognized booking and posts any
	// income entry the live path missed.
	Backfill(ctx context.Context) (*BackfillResult, error)
}

// BookingIncomeReads is the read surface ledger posting needs: the
// booking view for live posting and the candidate scan for backfill.
type BookingIncomeReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	FindBackfillCandidates(ctx context.Context) ([]readstore.BackfillCandidate, error)
}

type ledgerUseCaseImpl struct {
	uow          shared.UnitOfWork
	bookingReads BookingIncomeReads
	clock        clock.Clock
}

func NewLedgerUseCase(uow shared.UnitOfWork, bookingReads BookingIncomeReads, clk clock.Clock) LedgerCommands {
	return &ledgerUseCaseImpl{
		uow:          uow,
		bookingReads: bookingReads,
		clock:        clk,
	}
}

func (uc *ledgerUseCaseImpl) PostBookingIncome(ctx context.Context, bookingID uuid.UUID) error {
	view, err := uc.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.TotalAmount <= 0 {
		return nil
	}

	paid := view.PaymentStatus == string(booking.PaymentPaid)
	entry, err := ledger.NewBookingIncome(
		view.VendorID, view.VenueID, view.ID, view.VenueName,
		view.TotalAmount, view.DateFrom, paid, uc.clock.Now(),
	)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, ierr := tx.Ledger().InsertIncomeIfAbsent(ctx, tx.DB(), entry)
		if ierr != nil {
			return errs.Mark(ierr, errs.ErrDatabaseOperationFailed)
		}
		if !inserted {
			slog.Debug("ledger income already posted", "booking_id", bookingID, "reference", entry.Reference())
		}
		return nil
	})
}

func (uc *ledgerUseCaseImpl) Backfill(ctx context.Context) (*BackfillResult, error) {
	candidates, err := uc.bookingReads.FindBackfillCandidates(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &BackfillResult{Scanned: len(candidates)}
	for _, c := range candidates {
		entry, berr := ledger.NewBookingIncome(
			c.VendorID, c.VenueID, c.BookingID, c.VenueName,
			c.TotalAmount, c.Date, true, uc.clock.Now(),
		)
		if berr != nil {
			slog.Warn("skipping backfill candidate", "booking_id", c.BookingID, "error", berr.Error())
			result.Skipped++
			continue
		}

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			inserted, ierr := tx.Ledger().InsertIncomeIfAbsent(ctx, tx.DB(), entry)
			if ierr != nil {
				return ierr
			}
			if inserted {
				result.Posted++
			} else {
				result.Skipped++
			}
			return nil
		})
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return result, nil
}
