//go:build unit

package queries_test

import (
	"context"
	"testing"

	"venuebook/internal/domain/lead"
	"venuebook/internal/domain/user"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLeadQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	leadID := uuid.New()
	customerID := uuid.New()
	vendorID := uuid.New()

	view := builder.NewLeadBuilder().
		WithID(leadID).
		WithCustomerID(customerID).
		WithVendorID(vendorID).
		BuildView()

	testCases := []struct {
		name        string
		actor       user.Principal
		returnView  *queries.LeadView
		returnErr   error
		expectedErr error
	}{
		{
			name:       "admin sees any lead",
			actor:      user.Principal{ID: uuid.New(), Role: user.RoleAdmin},
			returnView: view,
		},
		{
			name:       "customer sees their own lead",
			actor:      user.Principal{ID: customerID, Role: user.RoleCustomer},
			returnView: view,
		},
		{
			name:        "customer cannot see a stranger's lead",
			actor:       user.Principal{ID: uuid.New(), Role: user.RoleCustomer},
			returnView:  view,
			expectedErr: errs.ErrLeadNotFound,
		},
		{
			// Leads feed the vendor funnel, so no approval gate applies.
			name:       "vendor sees leads on their venues",
			actor:      user.Principal{ID: vendorID, Role: user.RoleVendor},
			returnView: view,
		},
		{
			name:        "vendor cannot see another vendor's lead",
			actor:       user.Principal{ID: uuid.New(), Role: user.RoleVendor},
			returnView:  view,
			expectedErr: errs.ErrLeadNotFound,
		},
		{
			name:        "missing row reads as not found",
			actor:       user.Principal{ID: uuid.New(), Role: user.RoleAdmin},
			returnErr:   repoNotFound(),
			expectedErr: errs.ErrLeadNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := queriesmock.NewMockLeadViewRepo(ctrl)
			repo.EXPECT().FindByID(ctx, leadID).Return(tc.returnView, tc.returnErr)

			q := queries.NewLeadQueries(repo)
			got, err := q.GetByID(ctx, tc.actor, leadID)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, leadID, got.ID)
			}
		})
	}
}

func TestLeadQueries_List(t *testing.T) {
	ctx := context.Background()
	views := []*queries.LeadView{builder.NewLeadBuilder().BuildView()}

	t.Run("vendor lists their funnel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		vendorID := uuid.New()
		repo := queriesmock.NewMockLeadViewRepo(ctrl)
		repo.EXPECT().FindByVendorID(ctx, vendorID, gomock.Nil()).Return(views, nil)

		got, err := queries.NewLeadQueries(repo).List(ctx, user.Principal{ID: vendorID, Role: user.RoleVendor}, nil)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("customer lists their own leads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customerID := uuid.New()
		repo := queriesmock.NewMockLeadViewRepo(ctrl)
		repo.EXPECT().FindByCustomerID(ctx, customerID, gomock.Nil()).Return(views, nil)

		got, err := queries.NewLeadQueries(repo).List(ctx, user.Principal{ID: customerID, Role: user.RoleCustomer}, nil)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("admin narrows the funnel to one status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		status := lead.StatusConverted
		repo := queriesmock.NewMockLeadViewRepo(ctrl)
		repo.EXPECT().FindAll(ctx, &status).Return(views, nil)

		got, err := queries.NewLeadQueries(repo).List(ctx, user.Principal{ID: uuid.New(), Role: user.RoleAdmin}, &status)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})
}
