package response

import (
	"time"

	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LeadResponse struct {
	ID          uuid.UUID  `json:"id"`
	CustomerID  *uuid.UUID `json:"customerId,omitempty"`
	DeviceID    *string    `json:"deviceId,omitempty"`
	VenueID     uuid.UUID  `json:"venueId"`
	VenueName   string     `json:"venueName"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	DateFrom    string     `json:"dateFrom"`
	DateTo      string     `json:"dateTo"`
	SingleDay   bool       `json:"singleDay"`
	Guests      int32      `json:"guests"`
	TotalAmount int64      `json:"totalAmount"`
	Status      string     `json:"status"`
	Source      string     `json:"source"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type CreateLeadResponse struct {
	LeadID uuid.UUID `json:"leadId"`
}

type PromoteLeadResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
}

func FromLeadView(rm *queries.LeadView) *LeadResponse {
	var resp LeadResponse
	_ = copier.Copy(&resp, rm)
	resp.DateFrom = dateutil.NormalizeDay(rm.DateFrom).String()
	resp.DateTo = dateutil.NormalizeDay(rm.DateTo).String()
	return &resp
}
