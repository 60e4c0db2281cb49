package response

import (
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueResponse struct {
	ID           uuid.UUID `json:"id"`
	VendorID     uuid.UUID `json:"vendorId"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	MinGuests    *int32    `json:"minGuests,omitempty"`
	MaxGuests    *int32    `json:"maxGuests,omitempty"`
	BlockedDates []string  `json:"blockedDates"`
}

func FromVenueView(rm *queries.VenueView) *VenueResponse {
	return &VenueResponse{
		ID:           rm.ID,
		VendorID:     rm.VendorID,
		Name:         rm.Name,
		Status:       rm.Status,
		MinGuests:    rm.MinGuests,
		MaxGuests:    rm.MaxGuests,
		BlockedDates: formatDays(rm.BlockedDates),
	}
}
