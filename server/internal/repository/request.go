package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"
)

const requestColumns = "id, description, requestor_id, created"

func (r *repository) CreateRequest(ctx context.Context, request model.ItemRequest) (model.ItemRequest, error) {
	query, args, err := qb.Insert(requestsTableName).
		Columns("description", "requestor_id", "created").
		Values(request.Description, request.RequestorID, request.Created).
		Suffix("returning " + requestColumns).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}

	var created model.ItemRequest
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateRequest", zap.String("q", query), zap.Any("args", args))
		return model.ItemRequest{}, err
	}
	return created, nil
}

func (r *repository) GetRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	query, args, err := qb.Select(requestColumns).
		From(requestsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}

	var request model.ItemRequest
	if err := r.db.GetContext(ctx, &request, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ItemRequest{}, errs.ErrRequestNotFound
		}
		return model.ItemRequest{}, err
	}
	return request, nil
}

func (r *repository) ListRequestsByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	query, args, err := qb.Select(requestColumns).
		From(requestsTableName).
		Where(sq.Eq{"requestor_id": requestorID}).
		OrderBy("created desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	requests := make([]model.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repository) ListRequestsByOthers(ctx context.Context, requestorID int64, page model.PageRequest) ([]model.ItemRequest, error) {
	query, args, err := qb.Select(requestColumns).
		From(requestsTableName).
		Where(sq.NotEq{"requestor_id": requestorID}).
		OrderBy("created desc").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, err
	}

	requests := make([]model.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, err
	}
	return requests, nil
}
