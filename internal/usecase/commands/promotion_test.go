//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/lead"
	"venuebook/internal/domain/user"
	"venuebook/internal/domain/venue"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/shared"
	"venuebook/tests/common/builder"
	commandsmock "venuebook/tests/mock/commands"
	sharedmock "venuebook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Fixed clock well before the builders' default booking date so the
// past-date gate never trips by accident.
var testNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

type promotionMocks struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	leads       *sharedmock.MockLeadRepository
	bookings    *sharedmock.MockBookingRepository
	invalidator *commandsmock.MockAvailabilityInvalidator
}

func newPromotionMocks(ctrl *gomock.Controller) *promotionMocks {
	m := &promotionMocks{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		leads:       sharedmock.NewMockLeadRepository(ctrl),
		bookings:    sharedmock.NewMockBookingRepository(ctrl),
		invalidator: commandsmock.NewMockAvailabilityInvalidator(ctrl),
	}
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Leads().Return(m.leads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	return m
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

// =============================================================================
// PromoteLead Tests
// =============================================================================

func TestPromotionUseCase_PromoteLead(t *testing.T) {
	ctx := context.Background()

	leadID := uuid.New()
	customerID := uuid.New()
	venueID := uuid.New()

	adminActor := user.Principal{ID: uuid.New(), Role: user.RoleAdmin}
	ownerActor := user.Principal{ID: customerID, Role: user.RoleCustomer}

	newLead := func(t *testing.T) *lead.Lead {
		return builder.NewLeadBuilder().
			WithID(leadID).
			WithCustomerID(customerID).
			WithVenueID(venueID).
			MustBuild(t)
	}
	approvedVenue := func(t *testing.T) *venue.Venue {
		return builder.NewVenueBuilder().WithID(venueID).MustBuild(t)
	}

	testCases := []struct {
		name        string
		actor       user.Principal
		setupMock   func(t *testing.T, m *promotionMocks)
		expectedErr error
	}{
		{
			name:  "success: admin promotes a new lead",
			actor: adminActor,
			setupMock: func(t *testing.T, m *promotionMocks) {
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(newLead(t), nil)
				m.reads.EXPECT().VenueByID(ctx, venueID).Return(approvedVenue(t), nil)
				m.reads.EXPECT().OccupiedSpans(ctx, venueID, gomock.Any()).Return(nil, nil)
				m.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
				m.leads.EXPECT().Link(ctx, gomock.Any(), gomock.Any(), testNow).Return(nil)
				m.invalidator.EXPECT().Invalidate(ctx, venueID)
			},
		},
		{
			name:  "success: customer promotes their own lead",
			actor: ownerActor,
			setupMock: func(t *testing.T, m *promotionMocks) {
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(newLead(t), nil)
				m.reads.EXPECT().VenueByID(ctx, venueID).Return(approvedVenue(t), nil)
				m.reads.EXPECT().OccupiedSpans(ctx, venueID, gomock.Any()).Return(nil, nil)
				m.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
				m.leads.EXPECT().Link(ctx, gomock.Any(), gomock.Any(), testNow).Return(nil)
				m.invalidator.EXPECT().Invalidate(ctx, venueID)
			},
		},
		{
			name:  "error: lead does not exist",
			actor: adminActor,
			setupMock: func(t *testing.T, m *promotionMocks) {
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(nil, notFoundErr())
			},
			expectedErr: errs.ErrLeadNotFound,
		},
		{
			name:  "error: customer promoting someone else's lead",
			actor: user.Principal{ID: uuid.New(), Role: user.RoleCustomer},
			setupMock: func(t *testing.T, m *promotionMocks) {
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(newLead(t), nil)
			},
			expectedErr: errs.ErrAccessDenied,
		},
		{
			name:  "error: vendor cannot promote",
			actor: user.Principal{ID: uuid.New(), Role: user.RoleVendor},
			setupMock: func(t *testing.T, m *promotionMocks) {
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(newLead(t), nil)
			},
			expectedErr: errs.ErrAccessDenied,
		},
		{
			name:  "error: lead already linked to a booking",
			actor: adminActor,
			setupMock: func(t *testing.T, m *promotionMocks) {
				promoted := builder.NewLeadBuilder().
					WithID(leadID).
					WithCustomerID(customerID).
					WithVenueID(venueID).
					WithBookingID(uuid.New()).
					WithStatus(lead.StatusConverted).
					MustReconstruct(t)
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(promoted, nil)
			},
			expectedErr: errs.ErrAlreadyPromoted,
		},
		{
			name:  "error: venue vanished between lead and promotion",
			actor: adminActor,
			setupMock: func(t *testing.T, m *promotionMocks) {
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(newLead(t), nil)
				m.reads.EXPECT().VenueByID(ctx, venueID).Return(nil, notFoundErr())
			},
			expectedErr: errs.ErrVenueNotFound,
		},
		{
			name:  "error: requested date blocked by the vendor",
			actor: adminActor,
			setupMock: func(t *testing.T, m *promotionMocks) {
				blocked, err := dateutil.ParseDay("2025-07-10")
				require.NoError(t, err)
				v := builder.NewVenueBuilder().
					WithID(venueID).
					WithBlockedDates(blocked).
					MustBuild(t)
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(newLead(t), nil)
				m.reads.EXPECT().VenueByID(ctx, venueID).Return(v, nil)
				m.reads.EXPECT().OccupiedSpans(ctx, venueID, gomock.Any()).Return(nil, nil)
			},
			expectedErr: errs.ErrDateBlocked,
		},
		{
			name:  "error: overlapping booking seen before insert",
			actor: adminActor,
			setupMock: func(t *testing.T, m *promotionMocks) {
				day, err := dateutil.ParseDay("2025-07-10")
				require.NoError(t, err)
				occupied := []booking.OccupiedSpan{
					{BookingID: uuid.New(), Span: dateutil.Span{From: day, To: day}},
				}
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(newLead(t), nil)
				m.reads.EXPECT().VenueByID(ctx, venueID).Return(approvedVenue(t), nil)
				m.reads.EXPECT().OccupiedSpans(ctx, venueID, gomock.Any()).Return(occupied, nil)
			},
			expectedErr: errs.ErrDateConflict,
		},
		{
			name:  "error: concurrent writer wins the exclusion constraint",
			actor: adminActor,
			setupMock: func(t *testing.T, m *promotionMocks) {
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(newLead(t), nil)
				m.reads.EXPECT().VenueByID(ctx, venueID).Return(approvedVenue(t), nil)
				m.reads.EXPECT().OccupiedSpans(ctx, venueID, gomock.Any()).Return(nil, nil)
				m.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("exclusion violation", assert.AnError, infra.KindConflict))
			},
			expectedErr: errs.ErrDateConflict,
		},
		{
			name:  "error: concurrent promoter wins the unique linkage",
			actor: adminActor,
			setupMock: func(t *testing.T, m *promotionMocks) {
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(newLead(t), nil)
				m.reads.EXPECT().VenueByID(ctx, venueID).Return(approvedVenue(t), nil)
				m.reads.EXPECT().OccupiedSpans(ctx, venueID, gomock.Any()).Return(nil, nil)
				m.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
				m.leads.EXPECT().Link(ctx, gomock.Any(), gomock.Any(), testNow).
					Return(infra.WrapRepoErr("duplicate key", assert.AnError, infra.KindDuplicateKey))
			},
			expectedErr: errs.ErrAlreadyPromoted,
		},
		{
			name:  "error: occupancy scan fails closed",
			actor: adminActor,
			setupMock: func(t *testing.T, m *promotionMocks) {
				m.leads.EXPECT().FindByIDForUpdate(ctx, gomock.Any(), leadID).Return(newLead(t), nil)
				m.reads.EXPECT().VenueByID(ctx, venueID).Return(approvedVenue(t), nil)
				m.reads.EXPECT().OccupiedSpans(ctx, venueID, gomock.Any()).
					Return(nil, infra.WrapRepoErr("connection lost", assert.AnError, infra.KindUnavailable))
			},
			expectedErr: errs.ErrStorageUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newPromotionMocks(ctrl)
			tc.setupMock(t, m)

			uc := commands.NewPromotionUseCase(m.uow, clock.NewMockClock(testNow), config.BookingConfig{}, m.invalidator)
			result, err := uc.PromoteLead(ctx, leadID, commands.PromoteLeadRequest{}, tc.actor)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotEqual(t, uuid.Nil, result.BookingID)
			}
		})
	}
}
