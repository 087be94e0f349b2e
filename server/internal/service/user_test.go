package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"
)

func TestService_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().CreateUser(gomock.Any(), model.User{Name: "alice", Email: "alice@mail.com"}).
			Return(model.User{ID: 1, Name: "alice", Email: "alice@mail.com"}, nil)

		got, err := svc.CreateUser(context.Background(), model.CreateUserRequest{Name: "alice", Email: "alice@mail.com"})
		require.NoError(t, err)
		require.Equal(t, int64(1), got.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(model.User{}, errs.ErrDuplicateEmail)

		_, err := svc.CreateUser(context.Background(), model.CreateUserRequest{Name: "alice", Email: "alice@mail.com"})
		require.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})
}

func TestService_UpdateUser(t *testing.T) {
	t.Parallel()

	stored := model.User{ID: 1, Name: "alice", Email: "alice@mail.com"}
	newEmail := "alice@new.com"

	t.Run("partial update keeps other fields", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(stored, nil)

		merged := stored
		merged.Email = newEmail
		repo.EXPECT().UpdateUser(gomock.Any(), merged).Return(merged, nil)

		got, err := svc.UpdateUser(context.Background(), 1, model.UpdateUserRequest{Email: &newEmail})
		require.NoError(t, err)
		require.Equal(t, "alice", got.Name)
		require.Equal(t, newEmail, got.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(gomock.Any(), int64(9)).Return(model.User{}, errs.ErrUserNotFound)

		_, err := svc.UpdateUser(context.Background(), 9, model.UpdateUserRequest{Email: &newEmail})
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestService_DeleteUser(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t)
	repo.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil)

	require.NoError(t, svc.DeleteUser(context.Background(), 1))
}
