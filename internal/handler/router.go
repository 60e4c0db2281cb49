package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venuebook/internal/domain/user"
	"venuebook/internal/handler/api"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	leadHandler *api.LeadHandler,
	availabilityHandler *api.AvailabilityHandler,
	ledgerHandler *api.LedgerHandler,
	venueHandler *api.VenueHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, leadHandler, availabilityHandler, ledgerHandler, venueHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	leadHandler *api.LeadHandler,
	availabilityHandler *api.AvailabilityHandler,
	ledgerHandler *api.LedgerHandler,
	venueHandler *api.VenueHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: venueHandler.GetVenue},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.GetAvailability},
			})
		}

		leads := apiGroup.Group("/leads")
		{
			// Inquiries accept anonymous device-identified callers.
			optional := leads.Group("")
			optional.Use(authMiddleware.OptionalAuth())
			addRoutes(optional, []route{
				{Method: http.MethodPost, Path: "", Handler: leadHandler.CreateInquiry},
			})

			authRequired := leads.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "", Handler: leadHandler.ListLeads},
				{Method: http.MethodGet, Path: "/:id", Handler: leadHandler.GetLead},
				{Method: http.MethodPost, Path: "/:id/promote", Handler: leadHandler.PromoteLead},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer, user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/direct", Handler: bookingHandler.CreateDirectBooking,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleVendor)}},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/approval", Handler: bookingHandler.SetApproval,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
			})
		}

		vendors := apiGroup.Group("/vendors")
		vendors.Use(authMiddleware.RequireAuth())
		{
			addRoutes(vendors, []route{
				{Method: http.MethodGet, Path: "/me/ledger", Handler: ledgerHandler.GetOwnLedger,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleVendor)}},
				{Method: http.MethodGet, Path: "/:id/ledger", Handler: ledgerHandler.GetVendorLedger,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
			})
		}

		ledger := apiGroup.Group("/ledger")
		ledger.Use(authMiddleware.RequireAuth())
		{
			addRoutes(ledger, []route{
				{Method: http.MethodPost, Path: "/backfill", Handler: ledgerHandler.Backfill,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
