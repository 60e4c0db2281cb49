package readstore

import (
	"context"

	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(dbtx db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: dbtx}
}

const ledgerEntriesSQL = `
SELECT id, vendor_id, type, category, description, amount, date,
       status, reference, venue_id, notes, created_at
FROM ledger_entries
WHERE vendor_id = $1
ORDER BY date DESC, created_at DESC`

func (r *LedgerReadStore) FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*queries.LedgerEntryView, error) {
	rows, err := r.db.Query(ctx, ledgerEntriesSQL, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries", err)
	}
	defer rows.Close()

	var out []*queries.LedgerEntryView
	for rows.Next() {
		var (
			view    queries.LedgerEntryView
			venueID pgtype.UUID
			notes   pgtype.Text
		)
		if err := rows.Scan(
			&view.ID, &view.VendorID, &view.Type, &view.Category, &view.Description,
			&view.Amount, &view.Date, &view.Status, &view.Reference,
			&venueID, &notes, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger entry", err)
		}
		view.VenueID = pgconv.UUIDPtrFromPgtype(venueID)
		view.Notes = pgconv.StringPtrFromPgtype(notes)
		out = append(out, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ledger entries", err)
	}
	return out, nil
}

const incomeReferencesSQL = `
SELECT reference
FROM ledger_entries
WHERE vendor_id = $1 AND venue_id = $2 AND type = 'income'`

// IncomeReferences returns the set of income references already posted
// for a vendor/venue pair. Used by the backfill scan to skip bookings
// that already have a ledger entry.
func (r *LedgerReadStore) IncomeReferences(ctx context.Context, vendorID, venueID uuid.UUID) (map[string]struct{}, error) {
	rows, err := r.db.Query(ctx, incomeReferencesSQL, vendorID, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load income references", err)
	}
	defer rows.Close()

	refs := make(map[string]struct{})
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, infra.WrapRepoErr("failed to scan income reference", err)
		}
		refs[ref] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate income references", err)
	}
	return refs, nil
}
