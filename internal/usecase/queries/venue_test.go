//go:build unit

package queries_test

import (
	"context"
	"testing"

	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVenueQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()

	t.Run("returns the venue view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockVenueViewRepo(ctrl)
		view := &queries.VenueView{ID: venueID, Name: "Grand Hall", Status: "approved"}
		repo.EXPECT().FindByID(ctx, venueID).Return(view, nil)

		q := queries.NewVenueQueries(repo)
		got, err := q.GetByID(ctx, venueID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("maps missing venue to ErrVenueNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockVenueViewRepo(ctrl)
		repo.EXPECT().FindByID(ctx, venueID).Return(nil, repoNotFound())

		q := queries.NewVenueQueries(repo)
		got, err := q.GetByID(ctx, venueID)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrVenueNotFound)
	})

	t.Run("wraps other repository failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockVenueViewRepo(ctrl)
		repo.EXPECT().FindByID(ctx, venueID).Return(nil, assert.AnError)

		q := queries.NewVenueQueries(repo)
		_, err := q.GetByID(ctx, venueID)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
