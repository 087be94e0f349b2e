package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"
)

// bookingRow is a booking joined with its item and booker.
type bookingRow struct {
	ID              int64        `db:"id"`
	StartTS         time.Time    `db:"start_ts"`
	EndTS           time.Time    `db:"end_ts"`
	Status          model.Status `db:"status"`
	ItemID          int64        `db:"item_id"`
	ItemName        string       `db:"item_name"`
	ItemDescription string       `db:"item_description"`
	ItemAvailable   bool         `db:"item_available"`
	ItemRequestID   *int64       `db:"item_request_id"`
	OwnerID         int64        `db:"owner_id"`
	BookerID        int64        `db:"booker_id"`
	BookerName      string       `db:"booker_name"`
	BookerEmail     string       `db:"booker_email"`
}

func (row bookingRow) toBookingInfo() model.BookingInfo {
	return model.BookingInfo{
		ID:     row.ID,
		Start:  row.StartTS,
		End:    row.EndTS,
		Status: row.Status,
		Booker: model.User{
			ID:    row.BookerID,
			Name:  row.BookerName,
			Email: row.BookerEmail,
		},
		Item: model.Item{
			ID:          row.ItemID,
			Name:        row.ItemName,
			Description: row.ItemDescription,
			Available:   row.ItemAvailable,
			OwnerID:     row.OwnerID,
			RequestID:   row.ItemRequestID,
		},
	}
}

func bookingSelect() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.start_ts", "b.end_ts", "b.status",
		"i.id as item_id", "i.name as item_name", "i.description as item_description",
		"i.available as item_available", "i.request_id as item_request_id", "i.owner_id",
		"u.id as booker_id", "u.name as booker_name", "u.email as booker_email").
		From(bookingsTableName + " b").
		Join(itemsTableName + " i on i.id = b.item_id").
		Join(usersTableName + " u on u.id = b.booker_id")
}

func (r *repository) CreateBooking(ctx context.Context, booking model.Booking) (int64, error) {
	query, args, err := qb.Insert(bookingsTableName).
		Columns("start_ts", "end_ts", "item_id", "booker_id", "status").
		Values(booking.Start, booking.End, booking.ItemID, booking.BookerID, booking.Status).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.Error("CreateBooking", zap.String("q", query), zap.Any("args", args))
		return 0, err
	}
	return id, nil
}

func (r *repository) GetBooking(ctx context.Context, id int64) (model.BookingInfo, error) {
	query, args, err := bookingSelect().
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return model.BookingInfo{}, err
	}

	var row bookingRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookingInfo{}, errs.ErrBookingNotFound
		}
		return model.BookingInfo{}, err
	}
	return row.toBookingInfo(), nil
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id int64, status model.Status) error {
	query, args, err := qb.Update(bookingsTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

// listBookingsQuery renders the one query behind the booking list endpoints:
// role picks the actor column, state adds its time/status predicate.
func listBookingsQuery(
	actorID int64, role model.Role, state model.State, now time.Time, page model.PageRequest,
) (string, []interface{}, error) {
	q := bookingSelect()
	if role == model.RoleOwner {
		q = q.Where(sq.Eq{"i.owner_id": actorID})
	} else {
		q = q.Where(sq.Eq{"b.booker_id": actorID})
	}

	switch state {
	case model.StateCurrent:
		q = q.Where(sq.LtOrEq{"b.start_ts": now}).Where(sq.Gt{"b.end_ts": now})
	case model.StatePast:
		q = q.Where(sq.Lt{"b.end_ts": now})
	case model.StateFuture:
		q = q.Where(sq.Gt{"b.start_ts": now})
	case model.StateWaiting:
		q = q.Where(sq.Eq{"b.status": model.StatusWaiting})
	case model.StateRejected:
		q = q.Where(sq.Eq{"b.status": model.StatusRejected})
	}

	return q.OrderBy("b.start_ts desc").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
}

func (r *repository) ListBookings(
	ctx context.Context, actorID int64, role model.Role, state model.State, now time.Time, page model.PageRequest,
) ([]model.BookingInfo, error) {
	query, args, err := listBookingsQuery(actorID, role, state, now, page)
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBookings", zap.String("query", query), zap.Any("args", args))

	var rows []bookingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	bookings := make([]model.BookingInfo, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, row.toBookingInfo())
	}
	return bookings, nil
}

func (r *repository) LastBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingBrief, error) {
	return r.topBooking(ctx,
		qb.Select("id", "booker_id", "start_ts", "end_ts").
			From(bookingsTableName).
			Where(sq.Eq{"item_id": itemID, "status": model.StatusApproved}).
			Where(sq.Lt{"end_ts": now}).
			OrderBy("end_ts desc"))
}

func (r *repository) NextBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingBrief, error) {
	return r.topBooking(ctx,
		qb.Select("id", "booker_id", "start_ts", "end_ts").
			From(bookingsTableName).
			Where(sq.Eq{"item_id": itemID, "status": model.StatusApproved}).
			Where(sq.Gt{"end_ts": now}).
			OrderBy("end_ts asc"))
}

func (r *repository) LastBookingByBooker(ctx context.Context, itemID, bookerID int64, now time.Time) (*model.BookingBrief, error) {
	return r.topBooking(ctx,
		qb.Select("id", "booker_id", "start_ts", "end_ts").
			From(bookingsTableName).
			Where(sq.Eq{"item_id": itemID, "booker_id": bookerID, "status": model.StatusApproved}).
			Where(sq.Lt{"end_ts": now}).
			OrderBy("end_ts desc"))
}

func (r *repository) topBooking(ctx context.Context, q sq.SelectBuilder) (*model.BookingBrief, error) {
	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var brief model.BookingBrief
	if err := r.db.GetContext(ctx, &brief, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &brief, nil
}
