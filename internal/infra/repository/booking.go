package repository

import (
	"context"
	"errors"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// Postgres error codes the write side translates into repository kinds.
const (
	pgExclusionViolation  = "23P01"
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func classifyPgErr(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation:
			return infra.KindConflict
		case pgUniqueViolation:
			return infra.KindDuplicateKey
		case pgForeignKeyViolation:
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const insertBookingSQL = `
INSERT INTO bookings (
    id, customer_id, venue_id, date_from, date_to, single_day, guests,
    total_amount, status, payment_id, payment_status, admin_approved,
    device_id, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

// Create persists a new booking. A concurrent occupying booking on an
// overlapping span trips the exclusion constraint, which surfaces as
// KindConflict.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	_, err := dbtx.Exec(ctx, insertBookingSQL,
		b.ID(),
		pgconv.UUIDPtrToPgtype(b.CustomerID()),
		b.VenueID(),
		b.Span().From.Time(),
		b.Span().To.Time(),
		b.IsSingleDay(),
		b.Guests(),
		b.TotalAmount().Cents(),
		string(b.Status()),
		pgconv.StringPtrToPgtype(b.PaymentID()),
		string(b.PaymentStatus()),
		b.AdminApproved(),
		pgconv.StringPtrToPgtype(b.DeviceID()),
		b.CreatedAt(),
		b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err, classifyPgErr(err))
	}
	return nil
}

const bookingByIDSQL = `
SELECT id, customer_id, venue_id, date_from, date_to, guests, total_amount,
       status, payment_id, payment_status, admin_approved, device_id,
       created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	return r.findByID(ctx, dbtx, id, bookingByIDSQL)
}

// FindByIDForUpdate locks the row for the rest of the transaction so a
// status transition and its side effects apply against a stable state.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	return r.findByID(ctx, dbtx, id, bookingByIDSQL+" FOR UPDATE")
}

func (r *BookingRepository) findByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, sql string) (*booking.Booking, error) {
	var (
		bookingID            uuid.UUID
		customerID           pgtype.UUID
		venueID              uuid.UUID
		dateFrom, dateTo     time.Time
		guests               int32
		totalAmount          int64
		status               string
		paymentID            pgtype.Text
		paymentStatus        string
		adminApproved        bool
		deviceID             pgtype.Text
		createdAt, updatedAt time.Time
	)
	err := dbtx.QueryRow(ctx, sql, id).Scan(
		&bookingID, &customerID, &venueID, &dateFrom, &dateTo, &guests, &totalAmount,
		&status, &paymentID, &paymentStatus, &adminApproved, &deviceID,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	amount, err := booking.NewMoney(totalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid amount", err)
	}
	span := dateutil.NewSpan(dateutil.NormalizeDay(dateFrom), dateutil.NormalizeDay(dateTo))
	return booking.ReconstructBooking(
		bookingID,
		pgconv.UUIDPtrFromPgtype(customerID),
		venueID,
		span,
		guests,
		amount,
		booking.Status(status),
		pgconv.StringPtrFromPgtype(paymentID),
		booking.PaymentStatus(paymentStatus),
		adminApproved,
		pgconv.StringPtrFromPgtype(deviceID),
		createdAt, updatedAt,
	), nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $2, updated_at = $3
WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status, now time.Time) error {
	tag, err := dbtx.Exec(ctx, updateBookingStatusSQL, id, string(status), now)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err, classifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateBookingApprovalSQL = `
UPDATE bookings
SET admin_approved = $2, updated_at = $3
WHERE id = $1`

func (r *BookingRepository) UpdateApproval(ctx context.Context, dbtx db.DBTX, id uuid.UUID, approved bool, now time.Time) error {
	tag, err := dbtx.Exec(ctx, updateBookingApprovalSQL, id, approved, now)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking approval", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
