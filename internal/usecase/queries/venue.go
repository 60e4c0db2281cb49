package queries

import (
	"context"

	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type VenueQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
}

type VenueViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
}

type venueQueriesImpl struct {
	repo VenueViewRepo
}

func NewVenueQueries(repo VenueViewRepo) VenueQueries {
	return &venueQueriesImpl{repo: repo}
}

func (q *venueQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVenueNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
