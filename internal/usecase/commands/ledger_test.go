//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/ledger"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/readstore"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/shared"
	"venuebook/tests/common/builder"
	commandsmock "venuebook/tests/mock/commands"
	sharedmock "venuebook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerMocks struct {
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	entries *sharedmock.MockLedgerRepository
	reads   *commandsmock.MockBookingIncomeReads
}

func newLedgerMocks(ctrl *gomock.Controller) *ledgerMocks {
	m := &ledgerMocks{
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		entries: sharedmock.NewMockLedgerRepository(ctrl),
		reads:   commandsmock.NewMockBookingIncomeReads(ctrl),
	}
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Ledger().Return(m.entries).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	return m
}

// =============================================================================
// PostBookingIncome Tests
// =============================================================================

func TestLedgerUseCase_PostBookingIncome(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	testCases := []struct {
		name        string
		setupMock   func(m *ledgerMocks)
		expectedErr error
	}{
		{
			name: "success: income posted for a paid booking",
			setupMock: func(m *ledgerMocks) {
				view := builder.NewBookingBuilder().WithID(bookingID).BuildView()
				m.reads.EXPECT().FindByID(ctx, bookingID).Return(view, nil)
				m.entries.EXPECT().InsertIncomeIfAbsent(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ db.DBTX, e *ledger.Entry) (bool, error) {
						assert.Equal(t, view.TotalAmount, e.Amount())
						assert.Equal(t, ledger.BookingReference(bookingID), e.Reference())
						assert.Equal(t, ledger.StatusPaid, e.Status())
						return true, nil
					})
			},
		},
		{
			name: "success: unpaid booking posts a pending entry",
			setupMock: func(m *ledgerMocks) {
				view := builder.NewBookingBuilder().WithID(bookingID).WithPaymentStatus(booking.PaymentPending).BuildView()
				m.reads.EXPECT().FindByID(ctx, bookingID).Return(view, nil)
				m.entries.EXPECT().InsertIncomeIfAbsent(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ db.DBTX, e *ledger.Entry) (bool, error) {
						assert.Equal(t, ledger.StatusPending, e.Status())
						return true, nil
					})
			},
		},
		{
			name: "success: zero-amount booking is skipped without touching storage",
			setupMock: func(m *ledgerMocks) {
				view := builder.NewBookingBuilder().WithID(bookingID).WithTotalAmount(0).BuildView()
				m.reads.EXPECT().FindByID(ctx, bookingID).Return(view, nil)
			},
		},
		{
			name: "success: posting the same booking twice is a no-op",
			setupMock: func(m *ledgerMocks) {
				view := builder.NewBookingBuilder().WithID(bookingID).BuildView()
				m.reads.EXPECT().FindByID(ctx, bookingID).Return(view, nil)
				m.entries.EXPECT().InsertIncomeIfAbsent(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name: "error: booking does not exist",
			setupMock: func(m *ledgerMocks) {
				m.reads.EXPECT().FindByID(ctx, bookingID).Return(nil, notFoundErr())
			},
			expectedErr: errs.ErrBookingNotFound,
		},
		{
			name: "error: insert failure surfaces as database failure",
			setupMock: func(m *ledgerMocks) {
				view := builder.NewBookingBuilder().WithID(bookingID).BuildView()
				m.reads.EXPECT().FindByID(ctx, bookingID).Return(view, nil)
				m.entries.EXPECT().InsertIncomeIfAbsent(ctx, gomock.Any(), gomock.Any()).Return(false, assert.AnError)
			},
			expectedErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newLedgerMocks(ctrl)
			tc.setupMock(m)

			uc := commands.NewLedgerUseCase(m.uow, m.reads, clock.NewMockClock(testNow))
			err := uc.PostBookingIncome(ctx, bookingID)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Backfill Tests
// =============================================================================

func TestLedgerUseCase_Backfill(t *testing.T) {
	ctx := context.Background()

	candidate := func(amount int64) readstore.BackfillCandidate {
		return readstore.BackfillCandidate{
			BookingID:     uuid.New(),
			VenueID:       uuid.New(),
			VendorID:      uuid.New(),
			VenueName:     "Test Venue",
			TotalAmount:   amount,
			Date:          time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			PaymentStatus: "paid",
			CreatedAt:     testNow,
		}
	}

	t.Run("success: posts missing entries and counts duplicates as skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newLedgerMocks(ctrl)
		m.reads.EXPECT().FindBackfillCandidates(ctx).
			Return([]readstore.BackfillCandidate{candidate(50000), candidate(30000)}, nil)
		gomock.InOrder(
			m.entries.EXPECT().InsertIncomeIfAbsent(ctx, gomock.Any(), gomock.Any()).Return(true, nil),
			m.entries.EXPECT().InsertIncomeIfAbsent(ctx, gomock.Any(), gomock.Any()).Return(false, nil),
		)

		uc := commands.NewLedgerUseCase(m.uow, m.reads, clock.NewMockClock(testNow))
		result, err := uc.Backfill(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Scanned)
		assert.Equal(t, 1, result.Posted)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("success: non-positive amounts are skipped without touching storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newLedgerMocks(ctrl)
		m.reads.EXPECT().FindBackfillCandidates(ctx).
			Return([]readstore.BackfillCandidate{candidate(0)}, nil)

		uc := commands.NewLedgerUseCase(m.uow, m.reads, clock.NewMockClock(testNow))
		result, err := uc.Backfill(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Scanned)
		assert.Equal(t, 0, result.Posted)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("error: candidate scan failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newLedgerMocks(ctrl)
		m.reads.EXPECT().FindBackfillCandidates(ctx).Return(nil, assert.AnError)

		uc := commands.NewLedgerUseCase(m.uow, m.reads, clock.NewMockClock(testNow))
		result, err := uc.Backfill(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
		assert.Nil(t, result)
	})

	t.Run("error: storage failure mid-backfill aborts the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newLedgerMocks(ctrl)
		m.reads.EXPECT().FindBackfillCandidates(ctx).
			Return([]readstore.BackfillCandidate{candidate(50000)}, nil)
		m.entries.EXPECT().InsertIncomeIfAbsent(ctx, gomock.Any(), gomock.Any()).Return(false, assert.AnError)

		uc := commands.NewLedgerUseCase(m.uow, m.reads, clock.NewMockClock(testNow))
		result, err := uc.Backfill(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
		assert.Nil(t, result)
	})
}
