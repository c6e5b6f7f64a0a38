package catalog_test

import (
	"context"
	"testing"

	"github.com/hanksha/venue-booking-backend/apperrors"
	"github.com/hanksha/venue-booking-backend/catalog"
	catalog_mocks "github.com/hanksha/venue-booking-backend/catalog/mocks"
	"github.com/hanksha/venue-booking-backend/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const resourceID = "5a1d3c7e-2b4f-4e8a-9c6d-0e1f2a3b4c01"

type testDeps struct {
	repo    *catalog_mocks.MockRepository
	service *catalog.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := catalog_mocks.NewMockRepository(ctrl)

	return ctrl, testDeps{
		repo:    repo,
		service: catalog.NewService(repo),
		ctx:     context.Background(),
	}
}

func boolPtr(b bool) *bool { return &b }

func TestListResources(t *testing.T) {
	t.Run("all types", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		resources := []model.Resource{{ID: resourceID, Type: model.ResourceAxeBay, Name: "Bay 1"}}
		deps.repo.EXPECT().ListResources(deps.ctx, []model.ResourceType{}).Return(resources, nil).Times(1)

		got, err := deps.service.ListResources(deps.ctx, "")
		require.NoError(t, err)
		require.Equal(t, resources, got)
	})

	t.Run("one type", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().
			ListResources(deps.ctx, []model.ResourceType{model.ResourceDuckpinLane}).
			Return([]model.Resource{}, nil).Times(1)

		_, err := deps.service.ListResources(deps.ctx, "DUCKPIN_LANE")
		require.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.ListResources(deps.ctx, "BILLIARDS")
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("store error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().ListResources(gomock.Any(), gomock.Any()).Return(nil, assert.AnError).Times(1)

		_, err := deps.service.ListResources(deps.ctx, "")
		require.True(t, apperrors.IsKind(err, apperrors.KindUnavailable))
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestCreateResource(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().InsertResource(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r model.Resource) (model.Resource, error) {
				require.NotEmpty(t, r.ID)
				require.Equal(t, model.ResourcePartyArea, r.Type)
				require.Equal(t, "Party Room", r.Name)
				require.Nil(t, r.Active)
				return r, nil
			}).Times(1)

		created, err := deps.service.CreateResource(deps.ctx, catalog.ResourceRequest{
			Type: "PARTY_AREA",
			Name: "Party Room",
		})
		require.NoError(t, err)
		require.True(t, created.IsActive())
	})

	t.Run("validation", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CreateResource(deps.ctx, catalog.ResourceRequest{Type: "POOL", SortOrder: -1})

		appErr := apperrors.AsAppError(err)
		require.Equal(t, apperrors.KindValidation, appErr.Kind)
		fields := appErr.Details["fields"].(map[string]string)
		require.Contains(t, fields, "type")
		require.Contains(t, fields, "name")
		require.Contains(t, fields, "sortOrder")
	})
}

func TestSetResourceActive(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().SetResourceActive(deps.ctx, resourceID, false).Return(nil).Times(1)

		err := deps.service.SetResourceActive(deps.ctx, resourceID, catalog.ActiveRequest{Active: boolPtr(false)})
		require.NoError(t, err)
	})

	t.Run("missing flag", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		err := deps.service.SetResourceActive(deps.ctx, resourceID, catalog.ActiveRequest{})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("malformed id", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		err := deps.service.SetResourceActive(deps.ctx, "bay-1", catalog.ActiveRequest{Active: boolPtr(true)})
		require.ErrorIs(t, err, catalog.ErrResourceNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().SetResourceActive(deps.ctx, resourceID, true).Return(model.ErrNotFound).Times(1)

		err := deps.service.SetResourceActive(deps.ctx, resourceID, catalog.ActiveRequest{Active: boolPtr(true)})
		require.ErrorIs(t, err, catalog.ErrResourceNotFound)
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestCreateBlackout(t *testing.T) {
	t.Run("full day", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().InsertBlackout(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, rule model.BlackoutRule) (model.BlackoutRule, error) {
				require.Nil(t, rule.StartMinute)
				require.Nil(t, rule.EndMinute)
				require.Equal(t, model.ScopeAll, rule.Scope)
				return rule, nil
			}).Times(1)

		_, err := deps.service.CreateBlackout(deps.ctx, catalog.BlackoutRequest{Date: "2024-07-04", Scope: "all"})
		require.NoError(t, err)
	})

	t.Run("partial day for one activity", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().InsertBlackout(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, rule model.BlackoutRule) (model.BlackoutRule, error) {
				return rule, nil
			}).Times(1)

		created, err := deps.service.CreateBlackout(deps.ctx, catalog.BlackoutRequest{
			Date:      "2024-07-04",
			StartTime: "18:00",
			EndTime:   "20:30",
			Scope:     "Duckpin Bowling",
			Reason:    "league night",
		})
		require.NoError(t, err)
		require.Equal(t, model.Scope(model.ActivityDuckpin), created.Scope)

		start, end := created.Minutes()
		require.Equal(t, 18*60, start)
		require.Equal(t, 20*60+30, end)
	})

	t.Run("inverted times", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CreateBlackout(deps.ctx, catalog.BlackoutRequest{
			Date: "2024-07-04", StartTime: "20:00", EndTime: "18:00", Scope: "ALL",
		})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("impossible date", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CreateBlackout(deps.ctx, catalog.BlackoutRequest{Date: "2024-02-30", Scope: "ALL"})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("unknown scope", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CreateBlackout(deps.ctx, catalog.BlackoutRequest{Date: "2024-07-04", Scope: "KARAOKE"})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestListBlackouts(t *testing.T) {
	ctrl, deps := newTestDeps(t)
	defer ctrl.Finish()

	deps.repo.EXPECT().ListBlackoutsByDate(deps.ctx, "2024-07-04").Return([]model.BlackoutRule{}, nil).Times(1)

	_, err := deps.service.ListBlackouts(deps.ctx, "2024-07-04")
	require.NoError(t, err)

	_, err = deps.service.ListBlackouts(deps.ctx, "07/04/2024")
	require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestDeleteBlackout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().DeleteBlackout(deps.ctx, resourceID).Return(nil).Times(1)

		require.NoError(t, deps.service.DeleteBlackout(deps.ctx, resourceID))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().DeleteBlackout(deps.ctx, resourceID).Return(model.ErrNotFound).Times(1)

		require.ErrorIs(t, deps.service.DeleteBlackout(deps.ctx, resourceID), catalog.ErrBlackoutNotFound)
	})
}

func TestCreateBufferRule(t *testing.T) {
	t.Run("active by default", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().InsertBufferRule(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, rule model.BufferRule) (model.BufferRule, error) {
				return rule, nil
			}).Times(1)

		created, err := deps.service.CreateBufferRule(deps.ctx, catalog.BufferRequest{Scope: "AXE", BeforeMinutes: 15})
		require.NoError(t, err)
		require.True(t, created.Active)
		require.Equal(t, model.Scope(model.ActivityAxe), created.Scope)
		require.Equal(t, 15, created.BeforeMinutes)
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.CreateBufferRule(deps.ctx, catalog.BufferRequest{Scope: "AXE", AfterMinutes: 500})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestListBufferRules(t *testing.T) {
	ctrl, deps := newTestDeps(t)
	defer ctrl.Finish()

	deps.repo.EXPECT().ListAllBufferRules(deps.ctx).Return(nil, assert.AnError).Times(1)

	_, err := deps.service.ListBufferRules(deps.ctx)
	require.True(t, apperrors.IsKind(err, apperrors.KindUnavailable))
}
