package queries

import (
	"context"

	"venuebook/internal/domain/lead"
	"venuebook/internal/domain/user"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type LeadQueries interface {
	GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*LeadView, error)
	// List returns the actor-scoped lead funnel, optionally narrowed
	// to one status.
	List(ctx context.Context, actor user.Principal, status *lead.Status) ([]*LeadView, error)
}

type LeadViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LeadView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, status *lead.Status) ([]*LeadView, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID, status *lead.Status) ([]*LeadView, error)
	FindAll(ctx context.Context, status *lead.Status) ([]*LeadView, error)
}

type leadQueriesImpl struct {
	repo LeadViewRepo
}

func NewLeadQueries(repo LeadViewRepo) LeadQueries {
	return &leadQueriesImpl{repo: repo}
}

func (q *leadQueriesImpl) GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*LeadView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLeadNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !canSeeLead(view, actor) {
		return nil, errs.ErrLeadNotFound
	}
	return view, nil
}

func (q *leadQueriesImpl) List(ctx context.Context, actor user.Principal, status *lead.Status) ([]*LeadView, error) {
	switch {
	case actor.IsAdmin():
		return q.repo.FindAll(ctx, status)
	case actor.IsVendor():
		return q.repo.FindByVendorID(ctx, actor.ID, status)
	default:
		return q.repo.FindByCustomerID(ctx, actor.ID, status)
	}
}

func canSeeLead(view *LeadView, actor user.Principal) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsVendor():
		// Leads are the vendor's funnel; no approval gate applies.
		return view.VendorID == actor.ID
	default:
		return view.CustomerID != nil && *view.CustomerID == actor.ID
	}
}
