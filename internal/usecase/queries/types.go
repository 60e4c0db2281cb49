package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
	VenueID       uuid.UUID  `json:"venue_id"`
	VenueName     string     `json:"venue_name"`
	VendorID      uuid.UUID  `json:"vendor_id"`
	DateFrom      time.Time  `json:"date_from"`
	DateTo        time.Time  `json:"date_to"`
	SingleDay     bool       `json:"single_day"`
	Guests        int32      `json:"guests"`
	TotalAmount   int64      `json:"total_amount"`
	Status        string     `json:"status"`
	PaymentID     *string    `json:"payment_id,omitempty"`
	PaymentStatus string     `json:"payment_status"`
	AdminApproved bool       `json:"admin_approved"`
	DeviceID      *string    `json:"device_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	VenueID       uuid.UUID `json:"venue_id"`
	VenueName     string    `json:"venue_name"`
	DateFrom      time.Time `json:"date_from"`
	DateTo        time.Time `json:"date_to"`
	SingleDay     bool      `json:"single_day"`
	Guests        int32     `json:"guests"`
	TotalAmount   int64     `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	AdminApproved bool      `json:"admin_approved"`
	CreatedAt     time.Time `json:"created_at"`
}

type LeadView struct {
	ID          uuid.UUID  `json:"id"`
	CustomerID  *uuid.UUID `json:"customer_id,omitempty"`
	DeviceID    *string    `json:"device_id,omitempty"`
	VenueID     uuid.UUID  `json:"venue_id"`
	VenueName   string     `json:"venue_name"`
	VendorID    uuid.UUID  `json:"vendor_id"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	DateFrom    time.Time  `json:"date_from"`
	DateTo      time.Time  `json:"date_to"`
	SingleDay   bool       `json:"single_day"`
	Guests      int32      `json:"guests"`
	TotalAmount int64      `json:"total_amount"`
	Status      string     `json:"status"`
	Source      string     `json:"source"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type LedgerEntryView struct {
	ID          uuid.UUID  `json:"id"`
	VendorID    uuid.UUID  `json:"vendor_id"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      int64      `json:"amount"`
	Date        time.Time  `json:"date"`
	Status      string     `json:"status"`
	Reference   string     `json:"reference"`
	VenueID     *uuid.UUID `json:"venue_id,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type VenueView struct {
	ID           uuid.UUID   `json:"id"`
	VendorID     uuid.UUID   `json:"vendor_id"`
	Name         string      `json:"name"`
	Status       string      `json:"status"`
	MinGuests    *int32      `json:"min_guests,omitempty"`
	MaxGuests    *int32      `json:"max_guests,omitempty"`
	BlockedDates []time.Time `json:"blocked_dates"`
}

// AvailabilityCalendar is the external availability read: blocked days
// come from the vendor's no-book list, booked days from occupying
// bookings. Serialized in day granularity.
type AvailabilityCalendar struct {
	VenueID      uuid.UUID   `json:"venue_id"`
	From         time.Time   `json:"from"`
	To           time.Time   `json:"to"`
	BlockedDates []time.Time `json:"blocked_dates"`
	BookedDates  []time.Time `json:"booked_dates"`
}
