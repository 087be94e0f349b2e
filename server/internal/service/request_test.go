package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"
)

func TestService_CreateRequest(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
		repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r model.ItemRequest) (model.ItemRequest, error) {
				r.ID = 1
				return r, nil
			})

		got, err := svc.CreateRequest(context.Background(), 2, model.CreateItemRequestRequest{Description: "need a drill"})
		require.NoError(t, err)
		require.Equal(t, int64(1), got.ID)
		require.Equal(t, "need a drill", got.Description)
		require.NotNil(t, got.Items)
		require.Empty(t, got.Items)
	})

	t.Run("unknown requestor", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(9)).Return(model.User{}, errs.ErrUserNotFound)

		_, err := svc.CreateRequest(context.Background(), 9, model.CreateItemRequestRequest{Description: "need a drill"})
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestService_ListOwnRequests(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t)

	created := time.Now()
	requestID := int64(1)
	requests := []model.ItemRequest{
		{ID: 1, Description: "need a drill", RequestorID: 2, Created: created},
		{ID: 2, Description: "need a ladder", RequestorID: 2, Created: created},
	}
	items := []model.Item{{ID: 5, Name: "drill", Available: true, OwnerID: 1, RequestID: &requestID}}

	repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
	repo.EXPECT().ListRequestsByRequestor(gomock.Any(), int64(2)).Return(requests, nil)
	repo.EXPECT().ListItemsByRequestIDs(gomock.Any(), []int64{1, 2}).Return(items, nil)

	got, err := svc.ListOwnRequests(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, items, got[0].Items)
	require.NotNil(t, got[1].Items)
	require.Empty(t, got[1].Items)
}

func TestService_ListOtherRequests(t *testing.T) {
	t.Parallel()

	t.Run("invalid page", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)

		_, err := svc.ListOtherRequests(context.Background(), 2, 0, 0)
		require.ErrorIs(t, err, errs.ErrPagination)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		requests := []model.ItemRequest{{ID: 3, Description: "need a saw", RequestorID: 4}}
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
		repo.EXPECT().ListRequestsByOthers(gomock.Any(), int64(2), model.PageRequest{Page: 0, Size: 10}).Return(requests, nil)
		repo.EXPECT().ListItemsByRequestIDs(gomock.Any(), []int64{3}).Return(nil, nil)

		got, err := svc.ListOtherRequests(context.Background(), 2, 0, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, int64(3), got[0].ID)
	})
}

func TestService_GetRequest(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
		repo.EXPECT().GetRequest(gomock.Any(), int64(3)).Return(model.ItemRequest{ID: 3, Description: "need a saw"}, nil)
		repo.EXPECT().ListItemsByRequestIDs(gomock.Any(), []int64{3}).Return(nil, nil)

		got, err := svc.GetRequest(context.Background(), 2, 3)
		require.NoError(t, err)
		require.Equal(t, int64(3), got.ID)
	})

	t.Run("missing request", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
		repo.EXPECT().GetRequest(gomock.Any(), int64(9)).Return(model.ItemRequest{}, errs.ErrRequestNotFound)

		_, err := svc.GetRequest(context.Background(), 2, 9)
		require.ErrorIs(t, err, errs.ErrRequestNotFound)
	})
}
