package queries

import (
	"context"

	"venuebook/internal/domain/user"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type LedgerQueries interface {
	// ListForVendor returns the vendor's own ledger; admins may read
	// any vendor's ledger.
	ListForVendor(ctx context.Context, actor user.Principal, vendorID uuid.UUID) ([]*LedgerEntryView, error)
}

type LedgerViewRepo interface {
	FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*LedgerEntryView, error)
}

type ledgerQueriesImpl struct {
	repo LedgerViewRepo
}

func NewLedgerQueries(repo LedgerViewRepo) LedgerQueries {
	return &ledgerQueriesImpl{repo: repo}
}

func (q *ledgerQueriesImpl) ListForVendor(ctx context.Context, actor user.Principal, vendorID uuid.UUID) ([]*LedgerEntryView, error) {
	if !actor.IsAdmin() && !(actor.IsVendor() && actor.ID == vendorID) {
		return nil, errs.ErrAccessDenied
	}
	entries, err := q.repo.FindByVendorID(ctx, vendorID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entries, nil
}
