package booking

import (
	"fmt"

	"venuebook/internal/domain/venue"
	"venuebook/internal/pkg/dateutil"

	"github.com/google/uuid"
)

type RejectReason string

const (
	ReasonValidationError   RejectReason = "VALIDATION_ERROR"
	ReasonVenueNotAvailable RejectReason = "VENUE_NOT_AVAILABLE"
	ReasonDateInPast        RejectReason = "DATE_IN_PAST"
	ReasonDateBlocked       RejectReason = "DATE_BLOCKED"
	ReasonDateConflict      RejectReason = "DATE_CONFLICT"
	ReasonCapacityExceeded  RejectReason = "CAPACITY_EXCEEDED"
)

// OccupiedSpan is an existing booking's claim on venue days. Only
// bookings whose status IsOccupying() may appear here.
type OccupiedSpan struct {
	BookingID uuid.UUID
	Span      dateutil.Span
}

// Decision is the structured accept/reject result. Rejections carry the
// machine-readable reason plus the offending dates so callers can render
// "already booked" and "blocked by the vendor" distinctly.
type Decision struct {
	OK              bool
	Reason          RejectReason
	Message         string
	ConflictDates   []dateutil.Day
	ConflictBooking *uuid.UUID
}

func accept() Decision {
	return Decision{OK: true}
}

func reject(reason RejectReason, msg string) Decision {
	return Decision{OK: false, Reason: reason, Message: msg}
}

type AvailabilityCheck struct {
	Venue    *venue.Venue
	Span     dateutil.Span
	Guests   int32
	Today    dateutil.Day
	Occupied []OccupiedSpan

	// EnforceCapacity mirrors BOOKING_ENFORCE_CAPACITY: capacity limits
	// are stored but not enforced unless the switch is on.
	EnforceCapacity bool
}

// CheckAvailability decides whether a venue can accept a date span.
// Pure and side-effect free; the caller supplies today's day and the
// occupying bookings, all pre-normalized through dateutil.
func CheckAvailability(c AvailabilityCheck) Decision {
	if !c.Venue.IsApproved() {
		return reject(ReasonVenueNotAvailable, "venue is not approved for bookings")
	}

	if !c.Span.IsValid() {
		return reject(ReasonValidationError, "dateFrom must not be after dateTo")
	}

	if c.Span.From.Before(c.Today) {
		d := reject(ReasonDateInPast, fmt.Sprintf("date %s is in the past", c.Span.From))
		d.ConflictDates = []dateutil.Day{c.Span.From}
		return d
	}

	if blocked := c.Venue.BlockedWithin(c.Span); len(blocked) > 0 {
		d := reject(ReasonDateBlocked, fmt.Sprintf("date %s is blocked by the vendor", blocked[0]))
		d.ConflictDates = blocked
		return d
	}

	for _, occ := range c.Occupied {
		if c.Span.Overlaps(occ.Span) {
			d := reject(ReasonDateConflict, fmt.Sprintf("dates overlap existing booking %s", occ.BookingID))
			d.ConflictBooking = &occ.BookingID
			d.ConflictDates = overlapDays(c.Span, occ.Span)
			return d
		}
	}

	if c.EnforceCapacity && !c.Venue.Capacity().Allows(c.Guests) {
		return reject(ReasonCapacityExceeded, "guest count outside venue capacity")
	}

	return accept()
}

func overlapDays(a, b dateutil.Span) []dateutil.Day {
	from := a.From
	if b.From.After(from) {
		from = b.From
	}
	to := a.To
	if b.To.Before(to) {
		to = b.To
	}
	return dateutil.NewSpan(from, to).Days()
}
