package queries

import (
	"context"

	"venuebook/internal/domain/user"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor user.Principal) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*BookingListItem, error)
	FindAll(ctx context.Context) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !canSeeBooking(view, actor) {
		// Hidden rows read as absent, not as forbidden.
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

// List scopes the result to the actor: customers see their own
// bookings, vendors see approved bookings on their venues, admins see
// everything.
func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Principal) ([]*BookingListItem, error) {
	switch {
	case actor.IsAdmin():
		return q.repo.FindAll(ctx)
	case actor.IsVendor():
		return q.repo.FindByVendorID(ctx, actor.ID)
	default:
		return q.repo.FindByCustomerID(ctx, actor.ID)
	}
}

func canSeeBooking(view *BookingView, actor user.Principal) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsVendor():
		return view.VendorID == actor.ID && view.AdminApproved
	default:
		return view.CustomerID != nil && *view.CustomerID == actor.ID
	}
}
