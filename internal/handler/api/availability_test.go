//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venuebook/internal/handler/api"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/httptest"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	// Availability is public, no auth middleware.
	s.router.GET("/venues/:id/availability", s.handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	venueID := uuid.New()
	url := "/venues/" + venueID.String() + "/availability?from=2025-07-01&to=2025-07-31"

	s.Run("success: returns 200 OK with the calendar", func() {
		cal := &queries.AvailabilityCalendar{
			VenueID:      venueID,
			From:         time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			To:           time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
			BlockedDates: []time.Time{time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)},
			BookedDates:  []time.Time{time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)},
		}
		s.mockQueries.EXPECT().GetCalendar(gomock.Any(), venueID, gomock.Any(), gomock.Any()).
			Return(cal, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(venueID, response.VenueID)
		s.Equal("2025-07-01", response.From)
		s.Equal([]string{"2025-07-15"}, response.BlockedDates)
		s.Equal([]string{"2025-07-10"}, response.BookedDates)
	})

	s.Run("error: 400 Bad Request for invalid venue id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/not-a-uuid/availability?from=2025-07-01&to=2025-07-31", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid venue ID")
	})

	s.Run("error: 400 Bad Request for malformed window dates", func() {
		badURL := "/venues/" + venueID.String() + "/availability?from=07/01/2025&to=2025-07-31"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, badURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from date")
	})

	s.Run("error: 400 Bad Request when the window is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+venueID.String()+"/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from date")
	})

	s.Run("error: 404 Not Found for a missing venue", func() {
		s.mockQueries.EXPECT().GetCalendar(gomock.Any(), venueID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})
}
