package api

import (
	"net/http"

	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	ledgerCommands commands.LedgerCommands
	ledgerQueries  queries.LedgerQueries
}

func NewLedgerHandler(ledgerCommands commands.LedgerCommands, ledgerQueries queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{
		ledgerCommands: ledgerCommands,
		ledgerQueries:  ledgerQueries,
	}
}

// @Summary Get own ledger
// @Description List the authenticated vendor's ledger entries
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LedgerEntryResponse
// @Failure 403 {object} map[string]string
// @Router /vendors/me/ledger [get]
func (h *LedgerHandler) GetOwnLedger(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.respondLedger(c, principal.ID)
}

// @Summary Get vendor ledger
// @Description Admin view of any vendor's ledger entries
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 200 {array} resdto.LedgerEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /vendors/{id}/ledger [get]
func (h *LedgerHandler) GetVendorLedger(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor ID format"})
		return
	}

	h.respondLedger(c, vendorID)
}

func (h *LedgerHandler) respondLedger(c *gin.Context, vendorID uuid.UUID) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	entries, err := h.ledgerQueries.ListForVendor(c.Request.Context(), principal, vendorID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response := make([]*resdto.LedgerEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = resdto.FromLedgerEntryView(e)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Backfill ledger
// @Description Scan revenue-recognized bookings and post any missing income entries
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BackfillResponse
// @Failure 403 {object} map[string]string
// @Router /ledger/backfill [post]
func (h *LedgerHandler) Backfill(c *gin.Context) {
	result, err := h.ledgerCommands.Backfill(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBackfillResult(result))
}
