package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNonPositiveAmount = errors.New("ledger amount must be positive")

// Entry is one financial record in a vendor's ledger. Auto-generated
// income entries are deduplicated on (vendorID, venueID, reference).
type Entry struct {
	id          uuid.UUID
	vendorID    uuid.UUID
	entryType   EntryType
	category    string
	description string
	amount      int64
	date        time.Time
	status      EntryStatus
	reference   string
	venueID     *uuid.UUID
	notes       *string
	createdAt   time.Time
}

// BookingReference derives the human-readable dedup reference from a
// booking id: "Booking #" + its last six characters.
func BookingReference(bookingID uuid.UUID) string {
	s := bookingID.String()
	return "Booking #" + s[len(s)-6:]
}

// NewBookingIncome builds the income entry for a revenue-recognized
// booking. Entry status follows the booking's payment status.
func NewBookingIncome(
	vendorID uuid.UUID,
	venueID uuid.UUID,
	bookingID uuid.UUID,
	venueName string,
	amount int64,
	date time.Time,
	paid bool,
	now time.Time,
) (*Entry, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}
	status := StatusPending
	if paid {
		status = StatusPaid
	}
	vid := venueID
	return &Entry{
		id:          uuid.New(),
		vendorID:    vendorID,
		entryType:   TypeIncome,
		category:    CategoryBookingPayment,
		description: fmt.Sprintf("Payment received for booking at %s", venueName),
		amount:      amount,
		date:        date,
		status:      status,
		reference:   BookingReference(bookingID),
		venueID:     &vid,
		createdAt:   now,
	}, nil
}

func ReconstructEntry(
	id, vendorID uuid.UUID,
	entryType EntryType,
	category, description string,
	amount int64,
	date time.Time,
	status EntryStatus,
	reference string,
	venueID *uuid.UUID,
	notes *string,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:          id,
		vendorID:    vendorID,
		entryType:   entryType,
		category:    category,
		description: description,
		amount:      amount,
		date:        date,
		status:      status,
		reference:   reference,
		venueID:     venueID,
		notes:       notes,
		createdAt:   createdAt,
	}
}

func (e *Entry) ID() uuid.UUID       { return e.id }
func (e *Entry) VendorID() uuid.UUID { return e.vendorID }
func (e *Entry) Type() EntryType     { return e.entryType }
func (e *Entry) Category() string    { return e.category }
func (e *Entry) Description() string { return e.description }
func (e *Entry) Amount() int64       { return e.amount }
func (e *Entry) Date() time.Time     { return e.date }
func (e *Entry) Status() EntryStatus { return e.status }
func (e *Entry) Reference() string   { return e.reference }
func (e *Entry) VenueID() *uuid.UUID { return e.venueID }
func (e *Entry) Notes() *string      { return e.notes }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
