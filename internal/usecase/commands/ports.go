package commands

import (
	"context"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityError carries the full availability decision alongside
// the usecase sentinel, so the handler layer can report the offending
// dates and the conflicting booking instead of a bare category.
type AvailabilityError struct {
	Decision booking.Decision
	Err      error
}

func (e *AvailabilityError) Error() string { return e.Err.Error() }

// Unwrap exposes the sentinel so errors.Is keeps matching.
func (e *AvailabilityError) Unwrap() error { return e.Err }

// decisionError maps an availability rejection onto the usecase
// sentinels the handler layer translates to HTTP codes.
func decisionError(d booking.Decision) error {
	if d.OK {
		return nil
	}
	var sentinel error
	switch d.Reason {
	case booking.ReasonValidationError:
		sentinel = errs.ErrInvalidDateSpan
	case booking.ReasonVenueNotAvailable:
		sentinel = errs.ErrVenueNotAvailable
	case booking.ReasonDateInPast:
		sentinel = errs.ErrDateInPast
	case booking.ReasonDateBlocked:
		sentinel = errs.ErrDateBlocked
	case booking.ReasonDateConflict:
		sentinel = errs.ErrDateConflict
	case booking.ReasonCapacityExceeded:
		sentinel = errs.ErrGuestsExceeded
	default:
		sentinel = errs.ErrValidation
	}
	return &AvailabilityError{Decision: d, Err: errs.Wrap(sentinel, d.Message)}
}

// checkAvailability runs the pure availability decision against the
// transaction's view of the venue and its occupying bookings.
func checkAvailability(
	ctx context.Context,
	reads shared.CommandReads,
	venueID uuid.UUID,
	span dateutil.Span,
	guests int32,
	today dateutil.Day,
	enforceCapacity bool,
) error {
	v, err := reads.VenueByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrVenueNotFound)
		}
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	// Fail closed: an unknown occupancy picture must never let a
	// booking through.
	occupied, err := reads.OccupiedSpans(ctx, venueID, span)
	if err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return decisionError(booking.CheckAvailability(booking.AvailabilityCheck{
		Venue:           v,
		Span:            span,
		Guests:          guests,
		Today:           today,
		Occupied:        occupied,
		EnforceCapacity: enforceCapacity,
	}))
}
