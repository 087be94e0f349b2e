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

const itemColumns = "id, name, description, available, owner_id, request_id"

func (r *repository) CreateItem(ctx context.Context, item model.Item) (model.Item, error) {
	query, args, err := qb.Insert(itemsTableName).
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(item.Name, item.Description, item.Available, item.OwnerID, item.RequestID).
		Suffix("returning " + itemColumns).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var created model.Item
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateItem", zap.String("q", query), zap.Any("args", args))
		return model.Item{}, err
	}
	return created, nil
}

func (r *repository) UpdateItem(ctx context.Context, item model.Item) (model.Item, error) {
	query, args, err := qb.Update(itemsTableName).
		Set("name", item.Name).
		Set("description", item.Description).
		Set("available", item.Available).
		Where(sq.Eq{"id": item.ID}).
		Suffix("returning " + itemColumns).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var updated model.Item
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrItemNotFound
		}
		return model.Item{}, err
	}
	return updated, nil
}

func (r *repository) GetItem(ctx context.Context, id int64) (model.Item, error) {
	query, args, err := qb.Select(itemColumns).
		From(itemsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	var item model.Item
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrItemNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) ListItemsByOwner(ctx context.Context, ownerID int64, page model.PageRequest) ([]model.Item, error) {
	query, args, err := qb.Select(itemColumns).
		From(itemsTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) SearchItems(ctx context.Context, text string, page model.PageRequest) ([]model.Item, error) {
	pattern := "%" + text + "%"
	query, args, err := qb.Select(itemColumns).
		From(itemsTableName).
		Where(sq.Eq{"available": true}).
		Where(sq.Or{sq.ILike{"name": pattern}, sq.ILike{"description": pattern}}).
		OrderBy("id").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListItemsByRequestIDs(ctx context.Context, requestIDs []int64) ([]model.Item, error) {
	if len(requestIDs) == 0 {
		return []model.Item{}, nil
	}
	query, args, err := qb.Select(itemColumns).
		From(itemsTableName).
		Where(sq.Eq{"request_id": requestIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
