package repository

import (
	"context"

	"venuebook/internal/domain/ledger"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/pgconv"
)

type LedgerRepository struct{}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

const insertLedgerEntrySQL = `
INSERT INTO ledger_entries (
    id, vendor_id, type, category, description, amount, date, status,
    reference, venue_id, notes, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (vendor_id, venue_id, reference) WHERE type = 'income' DO NOTHING`

// InsertIncomeIfAbsent posts an income entry idempotently. The dedup
// lives entirely in the partial unique index: the second post for the
// same (vendor, venue, reference) is a silent no-op and returns false.
func (r *LedgerRepository) InsertIncomeIfAbsent(ctx context.Context, dbtx db.DBTX, e *ledger.Entry) (bool, error) {
	tag, err := dbtx.Exec(ctx, insertLedgerEntrySQL,
		e.ID(),
		e.VendorID(),
		string(e.Type()),
		e.Category(),
		e.Description(),
		e.Amount(),
		e.Date(),
		string(e.Status()),
		e.Reference(),
		pgconv.UUIDPtrToPgtype(e.VenueID()),
		pgconv.StringPtrToPgtype(e.Notes()),
		e.CreatedAt(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert ledger entry", err, classifyPgErr(err))
	}
	return tag.RowsAffected() > 0, nil
}
