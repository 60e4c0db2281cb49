package request

import (
	"errors"

	"venuebook/internal/pkg/dateutil"

	"github.com/google/uuid"
)

var errDateFieldsRequired = errors.New("either date or dateFrom/dateTo is required")

// dateFields is the shared date shape: a single-day request sends
// "date", a multi-day request sends "dateFrom" and "dateTo".
type dateFields struct {
	Date     *string `json:"date,omitempty"`
	DateFrom *string `json:"dateFrom,omitempty"`
	DateTo   *string `json:"dateTo,omitempty"`
}

func (d dateFields) ToSpan() (dateutil.Span, error) {
	if d.Date != nil {
		day, err := dateutil.ParseDay(*d.Date)
		if err != nil {
			return dateutil.Span{}, err
		}
		return dateutil.SingleDay(day), nil
	}
	if d.DateFrom == nil || d.DateTo == nil {
		return dateutil.Span{}, errDateFieldsRequired
	}
	from, err := dateutil.ParseDay(*d.DateFrom)
	if err != nil {
		return dateutil.Span{}, err
	}
	to, err := dateutil.ParseDay(*d.DateTo)
	if err != nil {
		return dateutil.Span{}, err
	}
	return dateutil.NewSpan(from, to), nil
}

type CreateInquiryRequest struct {
	VenueID uuid.UUID `json:"venueId" binding:"required"`
	dateFields
	Guests      int32   `json:"guests" binding:"required,gt=0"`
	TotalAmount int64   `json:"totalAmount" binding:"gte=0"`
	DeviceID    *string `json:"deviceId,omitempty"`
}

type CreateBookingRequest struct {
	VenueID uuid.UUID `json:"venueId" binding:"required"`
	dateFields
	Guests      int32   `json:"guests" binding:"required,gt=0"`
	TotalAmount int64   `json:"totalAmount" binding:"gte=0"`
	PaymentID   *string `json:"paymentId,omitempty"`
	DeviceID    *string `json:"deviceId,omitempty"`
}

type CreateDirectBookingRequest struct {
	VenueID uuid.UUID `json:"venueId" binding:"required"`
	dateFields
	Guests      int32 `json:"guests" binding:"required,gt=0"`
	TotalAmount int64 `json:"totalAmount" binding:"gte=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetApprovalRequest struct {
	AdminApproved *bool `json:"adminApproved" binding:"required"`
}

type PromoteLeadRequest struct {
	PaymentID *string `json:"paymentId,omitempty"`
}
