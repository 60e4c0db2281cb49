//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"venuebook/internal/domain/ledger"
	"venuebook/internal/domain/user"
	"venuebook/internal/handler/dto/request"
	"venuebook/internal/handler/dto/response"
	"venuebook/internal/pkg/dateutil"
	"venuebook/tests/common/authtest"
	"venuebook/tests/common/dbtest"
	"venuebook/tests/common/httptest"
	"venuebook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	bookingURL      = "/api/bookings/%s"
	statusURL       = "/api/bookings/%s/status"
	approvalURL     = "/api/bookings/%s/approval"
	availabilityURL = "/api/venues/%s/availability?from=%s&to=%s"
	ownLedgerURL    = "/api/vendors/me/ledger"
	backfillURL     = "/api/ledger/backfill"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// futureDay returns a day string offset days after a fixed anchor one
// month out, far enough ahead that the past-date gate never trips.
func futureDay(offset int) string {
	return time.Now().UTC().AddDate(0, 1, offset).Format("2006-01-02")
}

// conflictBody is the shape of a date-rejection response.
type conflictBody struct {
	Error  string `json:"error"`
	Detail struct {
		Dates             []string `json:"dates"`
		ConflictBookingID string   `json:"conflicting_booking_id"`
	} `json:"detail"`
}

func mustDay(t *testing.T, s string) dateutil.Day {
	t.Helper()
	d, err := dateutil.ParseDay(s)
	require.NoError(t, err)
	return d
}

func (s *BookingSuite) token(t *testing.T, id uuid.UUID, role user.Role) string {
	t.Helper()
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, id, role)
}

func strPtr(v string) *string { return &v }

// =============================================================================
// TestCreateBooking - Booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: customer books a free date", func() {
		t := s.T()

		vendorID := uuid.New()
		customerID := uuid.New()
		venueID := dbtest.CreateTestVenue(t, s.DB, vendorID, "Grand Hall")
		token := s.token(t, customerID, user.RoleCustomer)

		date := futureDay(0)
		reqBody := request.CreateBookingRequest{
			VenueID:     venueID,
			Guests:      40,
			TotalAmount: 120000,
			PaymentID:   strPtr("pay_e2e_001"),
		}
		reqBody.Date = &date

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "Should create booking: %s", w.Body.String())

		var created response.CreateBookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.BookingID)
		require.NotEqual(t, uuid.Nil, created.LeadID, "Booking should record its originating lead")

		// Fetch detail and verify the persisted state
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(bookingURL, created.BookingID), nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.BookingResponse
		err = httptest.DecodeResponseBody(t, dw.Body, &detail)
		require.NoError(t, err)

		expected := &response.BookingResponse{
			VenueID:       venueID,
			VenueName:     "Grand Hall",
			VendorID:      vendorID,
			DateFrom:      date,
			DateTo:        date,
			SingleDay:     true,
			Guests:        40,
			TotalAmount:   120000,
			Status:        "pending",
			PaymentID:     strPtr("pay_e2e_001"),
			PaymentStatus: "paid",
			AdminApproved: false,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CustomerID", "DeviceID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &detail, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: overlapping dates are rejected with 409", func() {
		t := s.T()

		vendorID := uuid.New()
		venueID := dbtest.CreateTestVenue(t, s.DB, vendorID, "Grand Hall")

		date := futureDay(0)
		occupyingID := dbtest.CreateTestBooking(t, s.DB, venueID, uuid.New(),
			mustDay(t, date), mustDay(t, date), "confirmed")

		token := s.token(t, uuid.New(), user.RoleCustomer)
		reqBody := request.CreateBookingRequest{
			VenueID:     venueID,
			Guests:      10,
			TotalAmount: 30000,
		}
		reqBody.Date = &date

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, "Occupied date should conflict: %s", w.Body.String())

		// The rejection names the contested date and the occupying booking
		var rejection conflictBody
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rejection))
		require.Equal(t, []string{date}, rejection.Detail.Dates)
		require.Equal(t, occupyingID.String(), rejection.Detail.ConflictBookingID)
	})

	s.Run("Error case: vendor-blocked date is rejected with 422", func() {
		t := s.T()

		date := futureDay(0)
		venueID := dbtest.CreateBlockedVenue(t, s.DB, uuid.New(), "Blocked Hall", mustDay(t, date))

		token := s.token(t, uuid.New(), user.RoleCustomer)
		reqBody := request.CreateBookingRequest{
			VenueID:     venueID,
			Guests:      10,
			TotalAmount: 30000,
		}
		reqBody.Date = &date

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var rejection conflictBody
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rejection))
		require.Equal(t, []string{date}, rejection.Detail.Dates, "Blocked-date rejection should name the date")
	})

	s.Run("Error case: past date is rejected with 422", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, uuid.New(), "Grand Hall")
		token := s.token(t, uuid.New(), user.RoleCustomer)

		past := time.Now().UTC().AddDate(0, 0, -7).Format("2006-01-02")
		reqBody := request.CreateBookingRequest{
			VenueID:     venueID,
			Guests:      10,
			TotalAmount: 30000,
		}
		reqBody.Date = &past

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		venueID := dbtest.CreateTestVenue(t, s.DB, uuid.New(), "Grand Hall")
		date := futureDay(0)
		reqBody := request.CreateBookingRequest{
			VenueID:     venueID,
			Guests:      10,
			TotalAmount: 30000,
		}
		reqBody.Date = &date

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestBookingLifecycle - approval, confirmation and ledger posting
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: approve, confirm, income posted once", func() {
		t := s.T()

		vendorID := uuid.New()
		customerID := uuid.New()
		adminID := uuid.New()
		venueID := dbtest.CreateTestVenue(t, s.DB, vendorID, "Grand Hall")

		customerToken := s.token(t, customerID, user.RoleCustomer)
		vendorToken := s.token(t, vendorID, user.RoleVendor)
		adminToken := s.token(t, adminID, user.RoleAdmin)

		date := futureDay(0)
		reqBody := request.CreateBookingRequest{
			VenueID:     venueID,
			Guests:      40,
			TotalAmount: 120000,
			PaymentID:   strPtr("pay_e2e_002"),
		}
		reqBody.Date = &date

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, customerToken)
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// Vendor cannot confirm before the admin approves
		confirmReq := request.UpdateBookingStatusRequest{Status: "confirmed"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, created.BookingID), confirmReq, vendorToken)
		require.Equal(t, http.StatusForbidden, w.Code, "Unapproved booking must stay out of vendor hands")

		approved := true
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(approvalURL, created.BookingID),
			request.SetApprovalRequest{AdminApproved: &approved}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, created.BookingID), confirmReq, vendorToken)
		require.Equal(t, http.StatusNoContent, w.Code, "Approved booking should confirm: %s", w.Body.String())

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(bookingURL, created.BookingID), nil, adminToken)
		require.Equal(t, http.StatusOK, dw.Code)
		var detail response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Equal(t, "confirmed", detail.Status)
		require.True(t, detail.AdminApproved)

		// Confirmation posts the income entry to the vendor ledger
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, ownLedgerURL, nil, vendorToken)
		require.Equal(t, http.StatusOK, lw.Code)
		var entries []response.LedgerEntryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &entries))
		require.Len(t, entries, 1)
		require.Equal(t, vendorID, entries[0].VendorID)
		require.Equal(t, int64(120000), entries[0].Amount)
		require.Equal(t, ledger.BookingReference(created.BookingID), entries[0].Reference)

		// Backfill finds the booking already posted and skips it
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, backfillURL, nil, adminToken)
		require.Equal(t, http.StatusOK, bw.Code)
		var backfill response.BackfillResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &backfill))
		require.Equal(t, 0, backfill.Posted, "Re-running backfill must not double-post income")
	})

	s.Run("Error case: confirmed booking cannot go back to pending", func() {
		t := s.T()

		vendorID := uuid.New()
		venueID := dbtest.CreateTestVenue(t, s.DB, vendorID, "Grand Hall")
		date := futureDay(0)
		bookingID := dbtest.CreateTestBooking(t, s.DB, venueID, uuid.New(),
			mustDay(t, date), mustDay(t, date), "confirmed")

		adminToken := s.token(t, uuid.New(), user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, bookingID), request.UpdateBookingStatusRequest{Status: "pending"}, adminToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Normal case: customer can cancel their own booking", func() {
		t := s.T()

		vendorID := uuid.New()
		customerID := uuid.New()
		venueID := dbtest.CreateTestVenue(t, s.DB, vendorID, "Grand Hall")
		date := futureDay(0)
		bookingID := dbtest.CreateTestBooking(t, s.DB, venueID, customerID,
			mustDay(t, date), mustDay(t, date), "pending")

		token := s.token(t, customerID, user.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, bookingID), request.UpdateBookingStatusRequest{Status: "cancelled"}, token)
		require.Equal(t, http.StatusNoContent, w.Code, "Customer should cancel own booking: %s", w.Body.String())

		// A cancelled booking frees the date for someone else
		reqBody := request.CreateBookingRequest{
			VenueID:     venueID,
			Guests:      10,
			TotalAmount: 30000,
		}
		reqBody.Date = &date
		other := s.token(t, uuid.New(), user.RoleCustomer)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, other)
		require.Equal(t, http.StatusCreated, w.Code, "Cancelled booking should release the date: %s", w.Body.String())
	})
}

// =============================================================================
// TestBackfill - ledger reconciliation sweep
// =============================================================================

func (s *BookingSuite) TestBackfill() {
	s.Run("Normal case: posts income for an approved paid booking still pending", func() {
		t := s.T()

		vendorID := uuid.New()
		venueID := dbtest.CreateTestVenue(t, s.DB, vendorID, "Grand Hall")
		date := futureDay(0)
		bookingID := dbtest.CreateApprovedPaidBooking(t, s.DB, venueID, uuid.New(),
			mustDay(t, date), mustDay(t, date), "pending")

		adminToken := s.token(t, uuid.New(), user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, backfillURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		var backfill response.BackfillResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &backfill))
		require.Equal(t, 1, backfill.Posted, "Approved and paid income qualifies regardless of booking status")

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, ownLedgerURL, nil, s.token(t, vendorID, user.RoleVendor))
		require.Equal(t, http.StatusOK, lw.Code)
		var entries []response.LedgerEntryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &entries))
		require.Len(t, entries, 1)
		require.Equal(t, ledger.BookingReference(bookingID), entries[0].Reference)
	})

	s.Run("Error case: unapproved booking is not swept", func() {
		t := s.T()

		vendorID := uuid.New()
		venueID := dbtest.CreateTestVenue(t, s.DB, vendorID, "Grand Hall")
		date := futureDay(0)
		dbtest.CreateTestBooking(t, s.DB, venueID, uuid.New(),
			mustDay(t, date), mustDay(t, date), "confirmed")

		adminToken := s.token(t, uuid.New(), user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, backfillURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		var backfill response.BackfillResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &backfill))
		require.Equal(t, 0, backfill.Posted)
	})
}

// =============================================================================
// TestAvailability - public availability calendar
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: calendar reflects bookings and blocked dates", func() {
		t := s.T()

		vendorID := uuid.New()
		blocked := futureDay(5)
		venueID := dbtest.CreateBlockedVenue(t, s.DB, vendorID, "Grand Hall", mustDay(t, blocked))

		booked := futureDay(1)
		dbtest.CreateTestBooking(t, s.DB, venueID, uuid.New(),
			mustDay(t, booked), mustDay(t, booked), "confirmed")
		// Cancelled bookings do not occupy the calendar
		cancelled := futureDay(2)
		dbtest.CreateTestBooking(t, s.DB, venueID, uuid.New(),
			mustDay(t, cancelled), mustDay(t, cancelled), "cancelled")

		url := fmt.Sprintf(availabilityURL, venueID, futureDay(0), futureDay(10))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code, "Availability is public: %s", w.Body.String())

		var calendar response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &calendar))
		require.Equal(t, venueID, calendar.VenueID)
		require.Contains(t, calendar.BlockedDates, blocked)
		require.Contains(t, calendar.BookedDates, booked)
		require.NotContains(t, calendar.BookedDates, cancelled)
	})

	s.Run("Error case: unknown venue returns 404", func() {
		t := s.T()

		url := fmt.Sprintf(availabilityURL, uuid.New(), futureDay(0), futureDay(10))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestBookingVisibility - role-scoped reads
// =============================================================================

func (s *BookingSuite) TestBookingVisibility() {
	s.Run("Error case: stranger customer cannot see the booking", func() {
		t := s.T()

		vendorID := uuid.New()
		venueID := dbtest.CreateTestVenue(t, s.DB, vendorID, "Grand Hall")
		date := futureDay(0)
		bookingID := dbtest.CreateTestBooking(t, s.DB, venueID, uuid.New(),
			mustDay(t, date), mustDay(t, date), "pending")

		stranger := s.token(t, uuid.New(), user.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(bookingURL, bookingID), nil, stranger)
		require.Equal(t, http.StatusNotFound, w.Code, "Hidden bookings read as not found, not forbidden")
	})

	s.Run("Error case: vendor cannot see unapproved booking on own venue", func() {
		t := s.T()

		vendorID := uuid.New()
		venueID := dbtest.CreateTestVenue(t, s.DB, vendorID, "Grand Hall")
		date := futureDay(0)
		bookingID := dbtest.CreateTestBooking(t, s.DB, venueID, uuid.New(),
			mustDay(t, date), mustDay(t, date), "pending")

		vendorToken := s.token(t, vendorID, user.RoleVendor)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(bookingURL, bookingID), nil, vendorToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Auth test - expired token is rejected", func() {
		t := s.T()

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, uuid.New(), user.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
