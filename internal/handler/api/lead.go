package api

import (
	"net/http"

	"venuebook/internal/domain/lead"
	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeadHandler struct {
	bookingCommands   commands.BookingCommands
	promotionCommands commands.PromotionCommands
	leadQueries       queries.LeadQueries
}

func NewLeadHandler(
	bookingCommands commands.BookingCommands,
	promotionCommands commands.PromotionCommands,
	leadQueries queries.LeadQueries,
) *LeadHandler {
	return &LeadHandler{
		bookingCommands:   bookingCommands,
		promotionCommands: promotionCommands,
		leadQueries:       leadQueries,
	}
}

// @Summary Create inquiry
// @Description Record a pre-payment inquiry lead; anonymous callers identify via deviceId
// @Tags leads
// @Accept json
// @Produce json
// @Param request body reqdto.CreateInquiryRequest true "Inquiry request"
// @Success 201 {object} resdto.CreateLeadResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads [post]
func (h *LeadHandler) CreateInquiry(c *gin.Context) {
	var req reqdto.CreateInquiryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	span, err := req.ToSpan()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Authenticated callers are identified by user id, anonymous ones
	// by their device id. A request with neither is rejected.
	var customerID *uuid.UUID
	if principal, ok := middleware.GetPrincipal(c); ok {
		id := principal.ID
		customerID = &id
	}

	leadID, err := h.bookingCommands.CreateInquiry(c.Request.Context(), commands.CreateInquiryRequest{
		VenueID:     req.VenueID,
		Span:        span,
		Guests:      req.Guests,
		TotalAmount: req.TotalAmount,
		CustomerID:  customerID,
		DeviceID:    req.DeviceID,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &resdto.CreateLeadResponse{LeadID: leadID})
}

// @Summary Promote lead
// @Description Convert a lead into a pending booking exactly once
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param request body reqdto.PromoteLeadRequest true "Promotion request"
// @Success 201 {object} resdto.PromoteLeadResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /leads/{id}/promote [post]
func (h *LeadHandler) PromoteLead(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead ID format"})
		return
	}

	var req reqdto.PromoteLeadRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.promotionCommands.PromoteLead(c.Request.Context(), id, commands.PromoteLeadRequest{
		PaymentID: req.PaymentID,
	}, principal)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &resdto.PromoteLeadResponse{BookingID: result.BookingID})
}

// @Summary Get lead
// @Description Get lead by ID, scoped to the actor's visibility
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} resdto.LeadResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead ID format"})
		return
	}

	view, err := h.leadQueries.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeadView(view))
}

// @Summary List leads
// @Description List leads visible to the actor
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by lead status"
// @Success 200 {array} resdto.LeadResponse
// @Failure 400 {object} map[string]string
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var statusFilter *lead.Status
	if raw := c.Query("status"); raw != "" {
		status := lead.Status(raw)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead status"})
			return
		}
		statusFilter = &status
	}

	views, err := h.leadQueries.List(c.Request.Context(), principal, statusFilter)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response := make([]*resdto.LeadResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromLeadView(v)
	}
	c.JSON(http.StatusOK, response)
}
