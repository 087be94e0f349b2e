package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"
	"github.com/practicum/shareit/server/internal/repository/mocks"
)

func newTestService(t *testing.T) (*Service, *mocks.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	return NewService(repo, nil, zap.NewNop()), repo
}

func TestService_CreateBooking(t *testing.T) {
	t.Parallel()

	var (
		now   = time.Now()
		item  = model.Item{ID: 5, Name: "drill", Available: true, OwnerID: 1}
		req   = model.CreateBookingRequest{ItemID: 5, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)}
		wantInfo = model.BookingInfo{
			ID:     7,
			Start:  req.Start,
			End:    req.End,
			Status: model.StatusWaiting,
			Booker: model.User{ID: 2, Name: "booker"},
			Item:   item,
		}
	)

	type mockBehavior func(r *mocks.MockRepository)

	tests := []struct {
		name         string
		userID       int64
		req          model.CreateBookingRequest
		mockBehavior mockBehavior
		want         model.BookingInfo
		wantErr      error
	}{
		{
			name:   "ok",
			userID: 2,
			req:    req,
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetItem(gomock.Any(), int64(5)).Return(item, nil)
				r.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2, Name: "booker"}, nil)
				r.EXPECT().CreateBooking(gomock.Any(), model.Booking{
					Start:    req.Start,
					End:      req.End,
					ItemID:   5,
					BookerID: 2,
					Status:   model.StatusWaiting,
				}).Return(int64(7), nil)
				r.EXPECT().GetBooking(gomock.Any(), int64(7)).Return(wantInfo, nil)
			},
			want: wantInfo,
		},
		{
			name:   "item missing",
			userID: 2,
			req:    req,
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetItem(gomock.Any(), int64(5)).Return(model.Item{}, errs.ErrItemNotFound)
			},
			wantErr: errs.ErrItemNotFound,
		},
		{
			name:   "item unavailable",
			userID: 2,
			req:    req,
			mockBehavior: func(r *mocks.MockRepository) {
				unavailable := item
				unavailable.Available = false
				r.EXPECT().GetItem(gomock.Any(), int64(5)).Return(unavailable, nil)
			},
			wantErr: errs.ErrNotAvailable,
		},
		{
			name:   "end equals start",
			userID: 2,
			req:    model.CreateBookingRequest{ItemID: 5, Start: req.Start, End: req.Start},
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetItem(gomock.Any(), int64(5)).Return(item, nil)
			},
			wantErr: errs.ErrInvalidDateTime,
		},
		{
			name:   "end before start",
			userID: 2,
			req:    model.CreateBookingRequest{ItemID: 5, Start: req.End, End: req.Start},
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetItem(gomock.Any(), int64(5)).Return(item, nil)
			},
			wantErr: errs.ErrInvalidDateTime,
		},
		{
			name:   "owner books own item",
			userID: 1,
			req:    req,
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetItem(gomock.Any(), int64(5)).Return(item, nil)
				r.EXPECT().GetUser(gomock.Any(), int64(1)).Return(model.User{ID: 1, Name: "owner"}, nil)
			},
			wantErr: errs.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			got, err := svc.CreateBooking(context.Background(), tt.userID, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ApproveBooking(t *testing.T) {
	t.Parallel()

	boolPtr := func(v bool) *bool { return &v }

	waiting := model.BookingInfo{
		ID:     3,
		Status: model.StatusWaiting,
		Booker: model.User{ID: 2},
		Item:   model.Item{ID: 5, OwnerID: 1},
	}

	type mockBehavior func(r *mocks.MockRepository)

	tests := []struct {
		name         string
		userID       int64
		approved     *bool
		mockBehavior mockBehavior
		wantStatus   model.Status
		wantErr      error
	}{
		{
			name:     "approve",
			userID:   1,
			approved: boolPtr(true),
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(waiting, nil)
				r.EXPECT().UpdateBookingStatus(gomock.Any(), int64(3), model.StatusApproved).Return(nil)
			},
			wantStatus: model.StatusApproved,
		},
		{
			name:     "reject",
			userID:   1,
			approved: boolPtr(false),
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(waiting, nil)
				r.EXPECT().UpdateBookingStatus(gomock.Any(), int64(3), model.StatusRejected).Return(nil)
			},
			wantStatus: model.StatusRejected,
		},
		{
			name:     "nil approved keeps status",
			userID:   1,
			approved: nil,
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(waiting, nil)
			},
			wantStatus: model.StatusWaiting,
		},
		{
			name:     "not the owner",
			userID:   2,
			approved: boolPtr(true),
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(waiting, nil)
			},
			wantErr: errs.ErrUserNotFound,
		},
		{
			name:     "already approved",
			userID:   1,
			approved: boolPtr(true),
			mockBehavior: func(r *mocks.MockRepository) {
				resolved := waiting
				resolved.Status = model.StatusApproved
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(resolved, nil)
			},
			wantErr: errs.ErrInvalidStatus,
		},
		{
			name:     "already rejected",
			userID:   1,
			approved: boolPtr(false),
			mockBehavior: func(r *mocks.MockRepository) {
				resolved := waiting
				resolved.Status = model.StatusRejected
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(resolved, nil)
			},
			wantErr: errs.ErrInvalidStatus,
		},
		{
			name:     "cancelled",
			userID:   1,
			approved: boolPtr(true),
			mockBehavior: func(r *mocks.MockRepository) {
				resolved := waiting
				resolved.Status = model.StatusCancelled
				r.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(resolved, nil)
			},
			wantErr: errs.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			got, err := svc.ApproveBooking(context.Background(), tt.userID, 3, tt.approved)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestService_GetBooking(t *testing.T) {
	t.Parallel()

	info := model.BookingInfo{
		ID:     3,
		Status: model.StatusWaiting,
		Booker: model.User{ID: 2},
		Item:   model.Item{ID: 5, OwnerID: 1},
	}

	tests := []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{name: "booker sees it", userID: 2},
		{name: "owner sees it", userID: 1},
		{name: "stranger does not", userID: 9, wantErr: errs.ErrUserNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			repo.EXPECT().GetBooking(gomock.Any(), int64(3)).Return(info, nil)

			got, err := svc.GetBooking(context.Background(), tt.userID, 3)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, info, got)
		})
	}
}

func TestService_ListBookings(t *testing.T) {
	t.Parallel()

	type mockBehavior func(r *mocks.MockRepository)

	infos := []model.BookingInfo{{ID: 3, Status: model.StatusWaiting}}

	tests := []struct {
		name         string
		state        string
		from, size   int
		byOwner      bool
		mockBehavior mockBehavior
		want         []model.BookingInfo
		wantErr      string
	}{
		{
			name:  "booker all",
			state: "ALL",
			from:  0, size: 10,
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
				r.EXPECT().ListBookings(gomock.Any(), int64(2), model.RoleBooker, model.StateAll,
					gomock.Any(), model.PageRequest{Page: 0, Size: 10}).Return(infos, nil)
			},
			want: infos,
		},
		{
			name:    "owner future",
			state:   "FUTURE",
			from:    0, size: 10,
			byOwner: true,
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
				r.EXPECT().ListBookings(gomock.Any(), int64(2), model.RoleOwner, model.StateFuture,
					gomock.Any(), model.PageRequest{Page: 0, Size: 10}).Return(infos, nil)
			},
			want: infos,
		},
		{
			name:  "page boundary snapping",
			state: "ALL",
			from:  7, size: 3,
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
				r.EXPECT().ListBookings(gomock.Any(), int64(2), model.RoleBooker, model.StateAll,
					gomock.Any(), model.PageRequest{Page: 2, Size: 3}).Return(infos, nil)
			},
			want: infos,
		},
		{
			name:  "unknown state",
			state: "SOMETIME",
			from:  0, size: 10,
			mockBehavior: func(r *mocks.MockRepository) {},
			wantErr:      "Unknown state: SOMETIME",
		},
		{
			name:  "unknown user",
			state: "ALL",
			from:  0, size: 10,
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{}, errs.ErrUserNotFound)
			},
			wantErr: errs.ErrUserNotFound.Error(),
		},
		{
			name:  "negative from",
			state: "ALL",
			from:  -1, size: 10,
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
			},
			wantErr: errs.ErrPagination.Error(),
		},
		{
			name:  "zero size",
			state: "ALL",
			from:  0, size: 0,
			mockBehavior: func(r *mocks.MockRepository) {
				r.EXPECT().GetUser(gomock.Any(), int64(2)).Return(model.User{ID: 2}, nil)
			},
			wantErr: errs.ErrPagination.Error(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			var (
				got []model.BookingInfo
				err error
			)
			if tt.byOwner {
				got, err = svc.ListBookingsByOwner(context.Background(), 2, tt.state, tt.from, tt.size)
			} else {
				got, err = svc.ListBookings(context.Background(), 2, tt.state, tt.from, tt.size)
			}
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
