package readstore

import (
	"context"

	"venuebook/internal/domain/venue"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/dateutil"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VenueReadStore struct {
	db db.DBTX
}

func NewVenueReadStore(dbtx db.DBTX) *VenueReadStore {
	return &VenueReadStore{db: dbtx}
}

const venueByIDSQL = `
SELECT id, vendor_id, name, status, min_guests, max_guests, blocked_dates
FROM venues
WHERE id = $1`

func (r *VenueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	return r.findByID(ctx, r.db, id)
}

func (r *VenueReadStore) findByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.VenueView, error) {
	var (
		view      queries.VenueView
		minGuests pgtype.Int4
		maxGuests pgtype.Int4
	)
	err := dbtx.QueryRow(ctx, venueByIDSQL, id).Scan(
		&view.ID,
		&view.VendorID,
		&view.Name,
		&view.Status,
		&minGuests,
		&maxGuests,
		&view.BlockedDates,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by ID", err)
	}
	view.MinGuests = pgconv.Int32PtrFromPgtype(minGuests)
	view.MaxGuests = pgconv.Int32PtrFromPgtype(maxGuests)
	return &view, nil
}

// SnapshotByID loads the venue as a domain snapshot for command-side
// availability decisions, optionally inside a transaction.
func (r *VenueReadStore) SnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*venue.Venue, error) {
	if dbtx == nil {
		dbtx = r.db
	}
	view, err := r.findByID(ctx, dbtx, id)
	if err != nil {
		return nil, err
	}
	return ViewToVenue(view)
}

func ViewToVenue(view *queries.VenueView) (*venue.Venue, error) {
	status := venue.Status(view.Status)
	blocked := make([]dateutil.Day, 0, len(view.BlockedDates))
	for _, t := range view.BlockedDates {
		blocked = append(blocked, dateutil.NormalizeDay(t))
	}
	v, err := venue.NewVenue(
		view.ID,
		view.VendorID,
		view.Name,
		status,
		venue.Capacity{MinGuests: view.MinGuests, MaxGuests: view.MaxGuests},
		blocked,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("stored venue is invalid", err)
	}
	return v, nil
}
