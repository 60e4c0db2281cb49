package repository

import (
	"context"
	"time"

	"venuebook/internal/domain/lead"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LeadRepository struct{}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{}
}

const insertLeadSQL = `
INSERT INTO leads (
    id, customer_id, device_id, venue_id, booking_id, date_from, date_to,
    single_day, guests, total_amount, status, source, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func (r *LeadRepository) Create(ctx context.Context, dbtx db.DBTX, l *lead.Lead) error {
	_, err := dbtx.Exec(ctx, insertLeadSQL,
		l.ID(),
		pgconv.UUIDPtrToPgtype(l.CustomerID()),
		pgconv.StringPtrToPgtype(l.DeviceID()),
		l.VenueID(),
		pgconv.UUIDPtrToPgtype(l.BookingID()),
		l.Span().From.Time(),
		l.Span().To.Time(),
		l.IsSingleDay(),
		l.Guests(),
		l.TotalAmount(),
		string(l.Status()),
		string(l.Source()),
		l.CreatedAt(),
		l.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create lead", err, classifyPgErr(err))
	}
	return nil
}

const leadByIDSQL = `
SELECT id, customer_id, device_id, venue_id, booking_id, date_from, date_to,
       guests, total_amount, status, source, created_at, updated_at
FROM leads
WHERE id = $1`

func (r *LeadRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*lead.Lead, error) {
	return r.findByID(ctx, dbtx, id, leadByIDSQL)
}

// FindByIDForUpdate locks the lead row so a concurrent promotion of the
// same lead serializes behind this transaction.
func (r *LeadRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*lead.Lead, error) {
	return r.findByID(ctx, dbtx, id, leadByIDSQL+" FOR UPDATE")
}

func (r *LeadRepository) findByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, sql string) (*lead.Lead, error) {
	var (
		leadID               uuid.UUID
		customerID           pgtype.UUID
		deviceID             pgtype.Text
		venueID              uuid.UUID
		bookingID            pgtype.UUID
		dateFrom, dateTo     time.Time
		guests               int32
		totalAmount          int64
		status, source       string
		createdAt, updatedAt time.Time
	)
	err := dbtx.QueryRow(ctx, sql, id).Scan(
		&leadID, &customerID, &deviceID, &venueID, &bookingID, &dateFrom, &dateTo,
		&guests, &totalAmount, &status, &source, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lead not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lead by ID", err)
	}

	span := dateutil.NewSpan(dateutil.NormalizeDay(dateFrom), dateutil.NormalizeDay(dateTo))
	return lead.ReconstructLead(
		leadID,
		pgconv.UUIDPtrFromPgtype(customerID),
		pgconv.StringPtrFromPgtype(deviceID),
		venueID,
		pgconv.UUIDPtrFromPgtype(bookingID),
		span,
		guests,
		totalAmount,
		lead.Status(status),
		lead.Source(source),
		createdAt, updatedAt,
	), nil
}

const linkLeadBookingSQL = `
UPDATE leads
SET booking_id = $2, status = $3, source = $4, updated_at = $5
WHERE id = $1 AND booking_id IS NULL`

// Link writes the one-shot booking linkage. The booking_id IS NULL
// predicate plus the unique constraint on booking_id make the linkage
// race-safe: a second promoter either affects zero rows or hits 23505.
func (r *LeadRepository) Link(ctx context.Context, dbtx db.DBTX, l *lead.Lead, now time.Time) error {
	tag, err := dbtx.Exec(ctx, linkLeadBookingSQL,
		l.ID(),
		pgconv.UUIDPtrToPgtype(l.BookingID()),
		string(l.Status()),
		string(l.Source()),
		now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to link lead to booking", err, classifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lead already linked", nil, infra.KindDuplicateKey)
	}
	return nil
}

const updateLeadStatusByBookingSQL = `
UPDATE leads
SET status = $2, updated_at = $3
WHERE booking_id = $1`

// UpdateStatusByBookingID applies the funnel side effect of a booking
// outcome. Affecting zero rows is not an error: direct bookings made
// before shadow leads existed have no lead row.
func (r *LeadRepository) UpdateStatusByBookingID(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, status lead.Status, now time.Time) error {
	_, err := dbtx.Exec(ctx, updateLeadStatusByBookingSQL, bookingID, string(status), now)
	if err != nil {
		return infra.WrapRepoErr("failed to update lead status by booking", err)
	}
	return nil
}
