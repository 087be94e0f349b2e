package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/practicum/shareit/server/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ItemRepository interface {
	CreateItem(ctx context.Context, item model.Item) (model.Item, error)
	UpdateItem(ctx context.Context, item model.Item) (model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	ListItemsByOwner(ctx context.Context, ownerID int64, page model.PageRequest) ([]model.Item, error)
	SearchItems(ctx context.Context, text string, page model.PageRequest) ([]model.Item, error)
	ListItemsByRequestIDs(ctx context.Context, requestIDs []int64) ([]model.Item, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking model.Booking) (int64, error)
	GetBooking(ctx context.Context, id int64) (model.BookingInfo, error)
	UpdateBookingStatus(ctx context.Context, id int64, status model.Status) error
	ListBookings(ctx context.Context, actorID int64, role model.Role, state model.State, now time.Time, page model.PageRequest) ([]model.BookingInfo, error)
	LastBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingBrief, error)
	NextBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingBrief, error)
	LastBookingByBooker(ctx context.Context, itemID, bookerID int64, now time.Time) (*model.BookingBrief, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error)
	ListCommentsByItem(ctx context.Context, itemID int64) ([]model.CommentInfo, error)
}

type RequestRepository interface {
	CreateRequest(ctx context.Context, request model.ItemRequest) (model.ItemRequest, error)
	GetRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	ListRequestsByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ListRequestsByOthers(ctx context.Context, requestorID int64, page model.PageRequest) ([]model.ItemRequest, error)
}

type Repository interface {
	UserRepository
	ItemRepository
	BookingRepository
	CommentRepository
	RequestRepository
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName    = `users`
	itemsTableName    = `items`
	bookingsTableName = `bookings`
	commentsTableName = `comments`
	requestsTableName = `requests`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
