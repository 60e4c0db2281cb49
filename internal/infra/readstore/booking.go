package readstore

import (
	"context"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.customer_id, b.venue_id, v.name, v.vendor_id,
       b.date_from, b.date_to, b.single_day, b.guests, b.total_amount,
       b.status, b.payment_id, b.payment_status, b.admin_approved,
       b.device_id, b.created_at, b.updated_at
FROM bookings b
JOIN venues v ON v.id = b.venue_id
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSQL+"WHERE b.id = $1", id)
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingViewSQL+"WHERE b.customer_id = $1 ORDER BY b.created_at DESC", customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by customer", err)
	}
	return collectListItems(rows)
}

// FindByVendorID lists bookings on the vendor's venues. The approval
// gate is enforced here at the read layer: unapproved bookings are
// never visible to vendors.
func (r *BookingReadStore) FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx,
		bookingViewSQL+"WHERE v.vendor_id = $1 AND b.admin_approved ORDER BY b.created_at DESC",
		vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by vendor", err)
	}
	return collectListItems(rows)
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingViewSQL+"ORDER BY b.created_at DESC")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return collectListItems(rows)
}

const occupiedSpansSQL = `
SELECT id, date_from, date_to
FROM bookings
WHERE venue_id = $1
  AND status IN ('pending', 'confirmed')
  AND date_from <= $3
  AND date_to >= $2`

// OccupiedSpans returns the pending/confirmed booking intervals that
// intersect the given span, for availability decisions.
func (r *BookingReadStore) OccupiedSpans(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, span dateutil.Span) ([]booking.OccupiedSpan, error) {
	if dbtx == nil {
		dbtx = r.db
	}
	rows, err := dbtx.Query(ctx, occupiedSpansSQL, venueID, span.From.Time(), span.To.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load occupied spans", err, infra.KindUnavailable)
	}
	defer rows.Close()

	var out []booking.OccupiedSpan
	for rows.Next() {
		var (
			id       uuid.UUID
			from, to time.Time
		)
		if err := rows.Scan(&id, &from, &to); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied span", err)
		}
		out = append(out, booking.OccupiedSpan{
			BookingID: id,
			Span:      dateutil.NewSpan(dateutil.NormalizeDay(from), dateutil.NormalizeDay(to)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied spans", err, infra.KindUnavailable)
	}
	return out, nil
}

const backfillCandidatesSQL = `
SELECT b.id, b.venue_id, v.vendor_id, v.name, b.total_amount,
       b.date_from, b.payment_status, b.created_at
FROM bookings b
JOIN venues v ON v.id = b.venue_id
WHERE b.admin_approved
  AND b.payment_status = 'paid'
  AND b.total_amount > 0
ORDER BY b.created_at`

type BackfillCandidate struct {
	BookingID     uuid.UUID
	VenueID       uuid.UUID
	VendorID      uuid.UUID
	VenueName     string
	TotalAmount   int64
	Date          time.Time
	PaymentStatus string
	CreatedAt     time.Time
}

func (r *BookingReadStore) FindBackfillCandidates(ctx context.Context) ([]BackfillCandidate, error) {
	rows, err := r.db.Query(ctx, backfillCandidatesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load backfill candidates", err)
	}
	defer rows.Close()

	var out []BackfillCandidate
	for rows.Next() {
		var c BackfillCandidate
		if err := rows.Scan(&c.BookingID, &c.VenueID, &c.VendorID, &c.VenueName,
			&c.TotalAmount, &c.Date, &c.PaymentStatus, &c.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan backfill candidate", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate backfill candidates", err)
	}
	return out, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view       queries.BookingView
		customerID pgtype.UUID
		paymentID  pgtype.Text
		deviceID   pgtype.Text
	)
	err := row.Scan(
		&view.ID, &customerID, &view.VenueID, &view.VenueName, &view.VendorID,
		&view.DateFrom, &view.DateTo, &view.SingleDay, &view.Guests, &view.TotalAmount,
		&view.Status, &paymentID, &view.PaymentStatus, &view.AdminApproved,
		&deviceID, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.CustomerID = pgconv.UUIDPtrFromPgtype(customerID)
	view.PaymentID = pgconv.StringPtrFromPgtype(paymentID)
	view.DeviceID = pgconv.StringPtrFromPgtype(deviceID)
	return &view, nil
}

func collectListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	var out []*queries.BookingListItem
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		out = append(out, &queries.BookingListItem{
			ID:            view.ID,
			VenueID:       view.VenueID,
			VenueName:     view.VenueName,
			DateFrom:      view.DateFrom,
			DateTo:        view.DateTo,
			SingleDay:     view.SingleDay,
			Guests:        view.Guests,
			TotalAmount:   view.TotalAmount,
			Status:        view.Status,
			PaymentStatus: view.PaymentStatus,
			AdminApproved: view.AdminApproved,
			CreatedAt:     view.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return out, nil
}
