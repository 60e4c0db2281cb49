package api

import (
	"errors"
	"net/http"

	"venuebook/internal/domain/booking"
	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	statusCommands  commands.StatusCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	statusCommands commands.StatusCommands,
	bookingQueries queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		statusCommands:  statusCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a paid booking on a venue (pending until admin approval)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	span, err := req.ToSpan()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customerID := principal.ID
	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), commands.CreateBookingRequest{
		VenueID:     req.VenueID,
		Span:        span,
		Guests:      req.Guests,
		TotalAmount: req.TotalAmount,
		CustomerID:  &customerID,
		DeviceID:    req.DeviceID,
		PaymentID:   req.PaymentID,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &resdto.CreateBookingResponse{
		BookingID: result.BookingID,
		LeadID:    result.LeadID,
	})
}

// @Summary Create direct booking
// @Description Vendor creates a confirmed booking on their own venue without payment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDirectBookingRequest true "Direct booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/direct [post]
func (h *BookingHandler) CreateDirectBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateDirectBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	span, err := req.ToSpan()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.bookingCommands.CreateDirectBooking(c.Request.Context(), commands.CreateDirectBookingRequest{
		VenueID:     req.VenueID,
		Span:        span,
		Guests:      req.Guests,
		TotalAmount: req.TotalAmount,
	}, principal.ID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &resdto.CreateBookingResponse{
		BookingID: result.BookingID,
		LeadID:    result.LeadID,
	})
}

// @Summary Update booking status
// @Description Apply a role-gated booking status transition
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	next := booking.Status(req.Status)
	if !next.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
		return
	}

	if err := h.statusCommands.UpdateStatus(c.Request.Context(), id, next, principal); err != nil {
		respondBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set admin approval
// @Description Flip the admin approval gate on a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SetApprovalRequest true "Approval request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/approval [post]
func (h *BookingHandler) SetApproval(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	var req reqdto.SetApprovalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.statusCommands.SetApproval(c.Request.Context(), id, *req.AdminApproved, principal); err != nil {
		respondBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get booking
// @Description Get booking by ID, scoped to the actor's visibility
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings visible to the actor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.bookingQueries.List(c.Request.Context(), principal)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// respondBookingError translates usecase sentinels into HTTP codes.
// Date conflicts are 409 so clients can retry with other dates;
// rejected-but-well-formed requests are 422.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, errs.ErrLeadNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
	case errors.Is(err, errs.ErrDateConflict):
		rejectDates(c, http.StatusConflict, "Dates conflict with an existing booking", err)
	case errors.Is(err, errs.ErrAlreadyPromoted):
		c.JSON(http.StatusConflict, gin.H{"error": "Lead already promoted to a booking"})
	case errors.Is(err, errs.ErrDateInPast):
		rejectDates(c, http.StatusUnprocessableEntity, "Requested date is in the past", err)
	case errors.Is(err, errs.ErrDateBlocked):
		rejectDates(c, http.StatusUnprocessableEntity, "Requested date is blocked by the vendor", err)
	case errors.Is(err, errs.ErrVenueNotAvailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Venue is not available for booking"})
	case errors.Is(err, errs.ErrGuestsExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Guest count outside venue capacity"})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid booking status transition"})
	case errors.Is(err, errs.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, errs.ErrInvalidDateSpan), errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error"})
	case errors.Is(err, errs.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// rejectDates renders a date rejection with the offending dates and the
// conflicting booking when the availability decision carried them. The
// database exclusion constraint can also raise a conflict without a
// decision; the body then has no detail.
func rejectDates(c *gin.Context, status int, msg string, err error) {
	body := gin.H{"error": msg}

	var avail *commands.AvailabilityError
	if errors.As(err, &avail) {
		detail := gin.H{}
		if len(avail.Decision.ConflictDates) > 0 {
			dates := make([]string, len(avail.Decision.ConflictDates))
			for i, d := range avail.Decision.ConflictDates {
				dates[i] = d.String()
			}
			detail["dates"] = dates
		}
		if avail.Decision.ConflictBooking != nil {
			detail["conflicting_booking_id"] = avail.Decision.ConflictBooking.String()
		}
		if len(detail) > 0 {
			body["detail"] = detail
		}
	}
	c.JSON(status, body)
}
