package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/practicum/shareit/server/internal/model"
)

func (r *repository) CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error) {
	query, args, err := qb.Insert(commentsTableName).
		Columns("text", "item_id", "author_id", "created").
		Values(comment.Text, comment.ItemID, comment.AuthorID, comment.Created).
		Suffix("returning id, text, item_id, author_id, created").
		ToSql()
	if err != nil {
		return model.Comment{}, err
	}

	var created model.Comment
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateComment", zap.String("q", query), zap.Any("args", args))
		return model.Comment{}, err
	}
	return created, nil
}

func (r *repository) ListCommentsByItem(ctx context.Context, itemID int64) ([]model.CommentInfo, error) {
	query, args, err := qb.Select("c.id", "c.text", "u.name as author_name", "c.created").
		From(commentsTableName + " c").
		Join(usersTableName + " u on u.id = c.author_id").
		Where(sq.Eq{"c.item_id": itemID}).
		OrderBy("c.created").
		ToSql()
	if err != nil {
		return nil, err
	}

	comments := make([]model.CommentInfo, 0)
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}
