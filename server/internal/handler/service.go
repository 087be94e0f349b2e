package handler

import (
	"context"

	"github.com/practicum/shareit/server/internal/model"
	"github.com/practicum/shareit/server/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

var (
	_ UserService    = (*service.Service)(nil)
	_ ItemService    = (*service.Service)(nil)
	_ BookingService = (*service.Service)(nil)
	_ RequestService = (*service.Service)(nil)
)

type UserService interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	UpdateUser(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.User, error)
	GetUser(ctx context.Context, userID int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type ItemService interface {
	CreateItem(ctx context.Context, userID int64, req model.CreateItemRequest) (model.Item, error)
	UpdateItem(ctx context.Context, userID, itemID int64, req model.UpdateItemRequest) (model.Item, error)
	GetItem(ctx context.Context, userID, itemID int64) (model.ItemInfo, error)
	ListItems(ctx context.Context, userID int64, from, size int) ([]model.ItemInfo, error)
	SearchItems(ctx context.Context, userID int64, text string, from, size int) ([]model.Item, error)
	CreateComment(ctx context.Context, userID, itemID int64, req model.CreateCommentRequest) (model.CommentInfo, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID int64, req model.CreateBookingRequest) (model.BookingInfo, error)
	ApproveBooking(ctx context.Context, userID, bookingID int64, approved *bool) (model.BookingInfo, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (model.BookingInfo, error)
	ListBookings(ctx context.Context, userID int64, state string, from, size int) ([]model.BookingInfo, error)
	ListBookingsByOwner(ctx context.Context, userID int64, state string, from, size int) ([]model.BookingInfo, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, userID int64, req model.CreateItemRequestRequest) (model.ItemRequestInfo, error)
	ListOwnRequests(ctx context.Context, userID int64) ([]model.ItemRequestInfo, error)
	ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]model.ItemRequestInfo, error)
	GetRequest(ctx context.Context, userID, requestID int64) (model.ItemRequestInfo, error)
}
