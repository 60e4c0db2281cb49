package response

import (
	"time"

	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LedgerEntryResponse struct {
	ID          uuid.UUID  `json:"id"`
	VendorID    uuid.UUID  `json:"vendorId"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      int64      `json:"amount"`
	Date        time.Time  `json:"date"`
	Status      string     `json:"status"`
	Reference   string     `json:"reference"`
	VenueID     *uuid.UUID `json:"venueId,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type BackfillResponse struct {
	Scanned int `json:"scanned"`
	Posted  int `json:"posted"`
	Skipped int `json:"skipped"`
}

func FromLedgerEntryView(rm *queries.LedgerEntryView) *LedgerEntryResponse {
	var resp LedgerEntryResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBackfillResult(r *commands.BackfillResult) *BackfillResponse {
	return &BackfillResponse{
		Scanned: r.Scanned,
		Posted:  r.Posted,
		Skipped: r.Skipped,
	}
}
