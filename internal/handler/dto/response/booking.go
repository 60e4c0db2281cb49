package response

import (
	"time"

	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    *uuid.UUID `json:"customerId,omitempty"`
	VenueID       uuid.UUID  `json:"venueId"`
	VenueName     string     `json:"venueName"`
	VendorID      uuid.UUID  `json:"vendorId"`
	DateFrom      string     `json:"dateFrom"`
	DateTo        string     `json:"dateTo"`
	SingleDay     bool       `json:"singleDay"`
	Guests        int32      `json:"guests"`
	TotalAmount   int64      `json:"totalAmount"`
	Status        string     `json:"status"`
	PaymentID     *string    `json:"paymentId,omitempty"`
	PaymentStatus string     `json:"paymentStatus"`
	AdminApproved bool       `json:"adminApproved"`
	DeviceID      *string    `json:"deviceId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	VenueID       uuid.UUID `json:"venueId"`
	VenueName     string    `json:"venueName"`
	DateFrom      string    `json:"dateFrom"`
	DateTo        string    `json:"dateTo"`
	SingleDay     bool      `json:"singleDay"`
	Guests        int32     `json:"guests"`
	TotalAmount   int64     `json:"totalAmount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	AdminApproved bool      `json:"adminApproved"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreateBookingResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	LeadID    uuid.UUID `json:"leadId"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	resp.DateFrom = dateutil.NormalizeDay(rm.DateFrom).String()
	resp.DateTo = dateutil.NormalizeDay(rm.DateTo).String()
	return &resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, rm)
	resp.DateFrom = dateutil.NormalizeDay(rm.DateFrom).String()
	resp.DateTo = dateutil.NormalizeDay(rm.DateTo).String()
	return &resp
}
