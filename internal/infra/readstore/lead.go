package readstore

import (
	"context"
	"fmt"

	"venuebook/internal/domain/lead"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type LeadReadStore struct {
	db db.DBTX
}

func NewLeadReadStore(dbtx db.DBTX) *LeadReadStore {
	return &LeadReadStore{db: dbtx}
}

const leadViewSQL = `
SELECT l.id, l.customer_id, l.device_id, l.venue_id, v.name, v.vendor_id, l.booking_id,
       l.date_from, l.date_to, l.single_day, l.guests, l.total_amount,
       l.status, l.source, l.created_at, l.updated_at
FROM leads l
JOIN venues v ON v.id = l.venue_id
`

func (r *LeadReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LeadView, error) {
	row := r.db.QueryRow(ctx, leadViewSQL+"WHERE l.id = $1", id)
	view, err := scanLeadView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lead not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lead by ID", err)
	}
	return view, nil
}

func (r *LeadReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID, status *lead.Status) ([]*queries.LeadView, error) {
	sql := leadViewSQL + "WHERE l.customer_id = $1"
	args := []any{customerID}
	sql, args = appendStatusFilter(sql, args, status)
	rows, err := r.db.Query(ctx, sql+" ORDER BY l.created_at DESC", args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find leads by customer", err)
	}
	return collectLeadViews(rows)
}

func (r *LeadReadStore) FindByVendorID(ctx context.Context, vendorID uuid.UUID, status *lead.Status) ([]*queries.LeadView, error) {
	sql := leadViewSQL + "WHERE v.vendor_id = $1"
	args := []any{vendorID}
	sql, args = appendStatusFilter(sql, args, status)
	rows, err := r.db.Query(ctx, sql+" ORDER BY l.created_at DESC", args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find leads by vendor", err)
	}
	return collectLeadViews(rows)
}

func (r *LeadReadStore) FindAll(ctx context.Context, status *lead.Status) ([]*queries.LeadView, error) {
	sql := leadViewSQL + "WHERE true"
	var args []any
	sql, args = appendStatusFilter(sql, args, status)
	rows, err := r.db.Query(ctx, sql+" ORDER BY l.created_at DESC", args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leads", err)
	}
	return collectLeadViews(rows)
}

func appendStatusFilter(sql string, args []any, status *lead.Status) (string, []any) {
	if status == nil {
		return sql, args
	}
	args = append(args, string(*status))
	return fmt.Sprintf("%s AND l.status = $%d", sql, len(args)), args
}

func scanLeadView(row pgx.Row) (*queries.LeadView, error) {
	var (
		view       queries.LeadView
		customerID pgtype.UUID
		deviceID   pgtype.Text
		bookingID  pgtype.UUID
	)
	err := row.Scan(
		&view.ID, &customerID, &deviceID, &view.VenueID, &view.VenueName, &view.VendorID, &bookingID,
		&view.DateFrom, &view.DateTo, &view.SingleDay, &view.Guests, &view.TotalAmount,
		&view.Status, &view.Source, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.CustomerID = pgconv.UUIDPtrFromPgtype(customerID)
	view.DeviceID = pgconv.StringPtrFromPgtype(deviceID)
	view.BookingID = pgconv.UUIDPtrFromPgtype(bookingID)
	return &view, nil
}

func collectLeadViews(rows pgx.Rows) ([]*queries.LeadView, error) {
	defer rows.Close()

	var out []*queries.LeadView
	for rows.Next() {
		view, err := scanLeadView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lead row", err)
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lead rows", err)
	}
	return out, nil
}
