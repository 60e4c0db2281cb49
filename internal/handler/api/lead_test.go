//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"venuebook/internal/domain/lead"
	"venuebook/internal/domain/user"
	"venuebook/internal/handler/api"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/httptest"
	"venuebook/tests/common/testutil"
	commandsmock "venuebook/tests/mock/commands"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeadHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockCtrl             *gomock.Controller
	mockBookingCommands  *commandsmock.MockBookingCommands
	mockPromotionCommand *commandsmock.MockPromotionCommands
	mockQueries          *queriesmock.MockLeadQueries
	handler              *api.LeadHandler

	authUserID uuid.UUID
	authRole   user.Role
}

func (s *LeadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockPromotionCommand = commandsmock.NewMockPromotionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLeadQueries(s.mockCtrl)
	s.handler = api.NewLeadHandler(s.mockBookingCommands, s.mockPromotionCommand, s.mockQueries)

	s.authUserID = uuid.New()
	s.authRole = user.RoleCustomer

	requireAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.authUserID)
		c.Set("user_role", s.authRole)
		c.Next()
	}
	// Inquiry creation accepts anonymous callers, matching the
	// optional-auth route registration.
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.authUserID)
			c.Set("user_role", s.authRole)
		}
		c.Next()
	}

	s.router.POST("/leads", optionalAuth, s.handler.CreateInquiry)
	s.router.GET("/leads", requireAuth, s.handler.ListLeads)
	s.router.GET("/leads/:id", requireAuth, s.handler.GetLead)
	s.router.POST("/leads/:id/promote", requireAuth, s.handler.PromoteLead)
}

func (s *LeadHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeadHandlerSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}

// ================================================================================
// TestCreateInquiry
// ================================================================================

func (s *LeadHandlerTestSuite) TestCreateInquiry() {
	url := "/leads"

	leadID := uuid.New()
	reqBody := map[string]any{
		"venueId":     uuid.New().String(),
		"date":        "2025-07-10",
		"guests":      20,
		"totalAmount": 50000,
	}

	s.Run("success: authenticated caller is identified by user id", func() {
		s.mockBookingCommands.EXPECT().CreateInquiry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateInquiryRequest) (uuid.UUID, error) {
				s.Require().NotNil(req.CustomerID)
				s.Equal(s.authUserID, *req.CustomerID)
				return leadID, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreateLeadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(leadID, response.LeadID)
	})

	s.Run("success: anonymous caller is identified by device id", func() {
		anonBody := testutil.DtoMap(s.T(), reqBody, testutil.Field("deviceId", "device-abc"))
		s.mockBookingCommands.EXPECT().CreateInquiry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateInquiryRequest) (uuid.UUID, error) {
				s.Nil(req.CustomerID)
				s.Require().NotNil(req.DeviceID)
				s.Equal("device-abc", *req.DeviceID)
				return leadID, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, anonBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []bookingTestCase{
			{name: "missing field: venueId", mutate: testutil.Field("venueId", nil), expectCode: http.StatusBadRequest},
			{name: "zero guests", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest},
			{name: "missing dates", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 404 Not Found for a missing venue", func() {
		s.mockBookingCommands.EXPECT().CreateInquiry(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})
}

// ================================================================================
// TestPromoteLead
// ================================================================================

func (s *LeadHandlerTestSuite) TestPromoteLead() {
	leadID := uuid.New()
	url := "/leads/" + leadID.String() + "/promote"

	expectedResult := &commands.PromoteLeadResult{BookingID: uuid.New()}

	s.Run("success: returns 201 Created with the booking id", func() {
		s.mockPromotionCommand.EXPECT().PromoteLead(gomock.Any(), leadID, gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"paymentId": "pay_123"}, "bearer-token")

		var response resdto.PromoteLeadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expectedResult.BookingID, response.BookingID)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request for invalid lead id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/leads/not-a-uuid/promote", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lead ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "lead not found", commandsError: errs.ErrLeadNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Lead not found"},
			{name: "already promoted", commandsError: errs.ErrAlreadyPromoted, expectedStatus: http.StatusConflict, expectedMsg: "already promoted"},
			{name: "date conflict", commandsError: errs.ErrDateConflict, expectedStatus: http.StatusConflict, expectedMsg: "conflict"},
			{name: "access denied", commandsError: errs.ErrAccessDenied, expectedStatus: http.StatusForbidden, expectedMsg: "Access denied"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockPromotionCommand.EXPECT().PromoteLead(gomock.Any(), leadID, gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetLead
// ================================================================================

func (s *LeadHandlerTestSuite) TestGetLead() {
	leadID := uuid.New()
	url := "/leads/" + leadID.String()

	returnView := builder.NewLeadBuilder().WithID(leadID).BuildView()

	s.Run("success: returns 200 OK with LeadResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), leadID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.LeadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(leadID, response.ID)
		s.Equal(returnView.VenueName, response.VenueName)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 404 Not Found for an invisible lead", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), leadID).
			Return(nil, errs.ErrLeadNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lead not found")
	})
}

// ================================================================================
// TestListLeads
// ================================================================================

func (s *LeadHandlerTestSuite) TestListLeads() {
	url := "/leads"

	s.Run("success: returns 200 OK with the visible leads", func() {
		views := []*queries.LeadView{
			builder.NewLeadBuilder().BuildView(),
			builder.NewLeadBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.LeadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
	})

	s.Run("success: forwards the status filter", func() {
		converted := lead.StatusConverted
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), &converted).
			Return([]*queries.LeadView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=converted", nil, "bearer-token")

		var response []*resdto.LeadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request for unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=bogus", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lead status")
	})
}
