package response

import (
	"time"

	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	VenueID      uuid.UUID `json:"venueId"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	BlockedDates []string  `json:"blockedDates"`
	BookedDates  []string  `json:"bookedDates"`
}

func FromAvailabilityCalendar(rm *queries.AvailabilityCalendar) *AvailabilityResponse {
	return &AvailabilityResponse{
		VenueID:      rm.VenueID,
		From:         dateutil.NormalizeDay(rm.From).String(),
		To:           dateutil.NormalizeDay(rm.To).String(),
		BlockedDates: formatDays(rm.BlockedDates),
		BookedDates:  formatDays(rm.BookedDates),
	}
}

func formatDays(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = dateutil.NormalizeDay(t).String()
	}
	return out
}
