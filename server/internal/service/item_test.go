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

func TestService_CreateItem(t *testing.T) {
	t.Parallel()

	available := true
	req := model.CreateItemRequest{Name: "drill", Description: "cordless", Available: &available}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, nil)
		repo.EXPECT().CreateItem(gomock.Any(), model.Item{
			Name:        "drill",
			Description: "cordless",
			Available:   true,
			OwnerID:     1,
		}).Return(model.Item{ID: 5, Name: "drill", Description: "cordless", Available: true, OwnerID: 1}, nil)

		got, err := svc.CreateItem(context.Background(), 1, req)
		require.NoError(t, err)
		require.Equal(t, int64(5), got.ID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(9)).Return(model.User{}, errs.ErrUserNotFound)

		_, err := svc.CreateItem(context.Background(), 9, req)
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("nil available flag", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, nil)
		repo.EXPECT().CreateItem(gomock.Any(), model.Item{
			Name:        "drill",
			Description: "cordless",
			Available:   false,
			OwnerID:     1,
		}).Return(model.Item{ID: 5, Name: "drill", Description: "cordless", OwnerID: 1}, nil)

		got, err := svc.CreateItem(context.Background(), 1, model.CreateItemRequest{Name: "drill", Description: "cordless"})
		require.NoError(t, err)
		require.False(t, got.Available)
	})
}

func TestService_UpdateItem(t *testing.T) {
	t.Parallel()

	stored := model.Item{ID: 5, Name: "drill", Description: "cordless", Available: true, OwnerID: 1}
	newName := "hammer drill"

	t.Run("merges non-nil fields", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, nil)
		repo.EXPECT().GetItem(gomock.Any(), int64(5)).Return(stored, nil)

		merged := stored
		merged.Name = newName
		repo.EXPECT().UpdateItem(gomock.Any(), merged).Return(merged, nil)

		got, err := svc.UpdateItem(context.Background(), 1, 5, model.UpdateItemRequest{Name: &newName})
		require.NoError(t, err)
		require.Equal(t, newName, got.Name)
		require.Equal(t, "cordless", got.Description)
	})

	t.Run("foreign item looks missing", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
		repo.EXPECT().GetItem(gomock.Any(), int64(5)).Return(stored, nil)

		_, err := svc.UpdateItem(context.Background(), 2, 5, model.UpdateItemRequest{Name: &newName})
		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}

func TestService_GetItem(t *testing.T) {
	t.Parallel()

	item := model.Item{ID: 5, Name: "drill", Available: true, OwnerID: 1}
	comments := []model.CommentInfo{{ID: 1, Text: "works great", AuthorName: "booker"}}
	last := &model.BookingBrief{ID: 3, BookerID: 2}
	next := &model.BookingBrief{ID: 4, BookerID: 2}

	t.Run("owner sees bookings", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, nil)
		repo.EXPECT().GetItem(gomock.Any(), int64(5)).Return(item, nil)
		repo.EXPECT().ListCommentsByItem(gomock.Any(), int64(5)).Return(comments, nil)
		repo.EXPECT().LastBooking(gomock.Any(), int64(5), gomock.Any()).Return(last, nil)
		repo.EXPECT().NextBooking(gomock.Any(), int64(5), gomock.Any()).Return(next, nil)

		got, err := svc.GetItem(context.Background(), 1, 5)
		require.NoError(t, err)
		require.Equal(t, comments, got.Comments)
		require.Equal(t, last, got.LastBooking)
		require.Equal(t, next, got.NextBooking)
	})

	t.Run("other viewer gets comments only", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
		repo.EXPECT().GetItem(gomock.Any(), int64(5)).Return(item, nil)
		repo.EXPECT().ListCommentsByItem(gomock.Any(), int64(5)).Return(comments, nil)

		got, err := svc.GetItem(context.Background(), 2, 5)
		require.NoError(t, err)
		require.Equal(t, comments, got.Comments)
		require.Nil(t, got.LastBooking)
		require.Nil(t, got.NextBooking)
	})
}

func TestService_ListItems(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t)

	items := []model.Item{
		{ID: 1, OwnerID: 1, Available: true},
		{ID: 2, OwnerID: 1, Available: true},
		{ID: 3, OwnerID: 1, Available: true},
	}
	now := time.Now()

	repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, nil)
	repo.EXPECT().ListItemsByOwner(gomock.Any(), int64(1), model.PageRequest{Page: 0, Size: 10}).Return(items, nil)
	repo.EXPECT().ListCommentsByItem(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	// item 1 was booked a week ago, item 3 yesterday, item 2 never
	repo.EXPECT().LastBooking(gomock.Any(), int64(1), gomock.Any()).
		Return(&model.BookingBrief{ID: 10, Start: now.Add(-7 * 24 * time.Hour)}, nil)
	repo.EXPECT().LastBooking(gomock.Any(), int64(2), gomock.Any()).Return(nil, nil)
	repo.EXPECT().LastBooking(gomock.Any(), int64(3), gomock.Any()).
		Return(&model.BookingBrief{ID: 11, Start: now.Add(-24 * time.Hour)}, nil)
	repo.EXPECT().NextBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	got, err := svc.ListItems(context.Background(), 1, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, int64(3), got[0].ID)
	require.Equal(t, int64(1), got[1].ID)
	require.Equal(t, int64(2), got[2].ID)
}

func TestService_SearchItems(t *testing.T) {
	t.Parallel()

	t.Run("empty text short-circuits", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, nil)

		got, err := svc.SearchItems(context.Background(), 1, "", 0, 10)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("invalid page", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, nil)

		_, err := svc.SearchItems(context.Background(), 1, "drill", -1, 10)
		require.ErrorIs(t, err, errs.ErrPagination)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		found := []model.Item{{ID: 5, Name: "drill", Available: true, OwnerID: 1}}
		repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1}, nil)
		repo.EXPECT().SearchItems(gomock.Any(), "drill", model.PageRequest{Page: 0, Size: 10}).Return(found, nil)

		got, err := svc.SearchItems(context.Background(), 1, "drill", 0, 10)
		require.NoError(t, err)
		require.Equal(t, found, got)
	})
}

func TestService_CreateComment(t *testing.T) {
	t.Parallel()

	item := model.Item{ID: 5, OwnerID: 1, Available: true}
	author := model.User{ID: 2, Name: "booker"}
	req := model.CreateCommentRequest{Text: "works great"}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetItem(gomock.Any(), int64(5)).Return(item, nil)
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(author, nil)
		repo.EXPECT().LastBookingByBooker(gomock.Any(), int64(5), int64(2), gomock.Any()).
			Return(&model.BookingBrief{ID: 3, BookerID: 2}, nil)
		repo.EXPECT().CreateComment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c model.Comment) (model.Comment, error) {
				c.ID = 1
				return c, nil
			})

		got, err := svc.CreateComment(context.Background(), 2, 5, req)
		require.NoError(t, err)
		require.Equal(t, "works great", got.Text)
		require.Equal(t, "booker", got.AuthorName)
	})

	t.Run("no finished booking", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetItem(gomock.Any(), int64(5)).Return(item, nil)
		repo.EXPECT().GetUser(gomock.Any(), int64(2)).Return(author, nil)
		repo.EXPECT().LastBookingByBooker(gomock.Any(), int64(5), int64(2), gomock.Any()).Return(nil, nil)

		_, err := svc.CreateComment(context.Background(), 2, 5, req)
		require.ErrorIs(t, err, errs.ErrInvalidComment)
	})
}
