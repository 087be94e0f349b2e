package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"
)

func (s *Service) CreateItem(ctx context.Context, userID int64, req model.CreateItemRequest) (model.Item, error) {
	owner, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.Item{}, err
	}
	// the flag is required at the API boundary, but this layer must not
	// assume the validator ran
	available := req.Available != nil && *req.Available
	return s.repo.CreateItem(ctx, model.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   available,
		OwnerID:     owner.ID,
		RequestID:   req.RequestID,
	})
}

func (s *Service) UpdateItem(ctx context.Context, userID, itemID int64, req model.UpdateItemRequest) (model.Item, error) {
	owner, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.Item{}, err
	}
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.Item{}, err
	}
	// a foreign item stays invisible to the caller
	if item.OwnerID != owner.ID {
		return model.Item{}, errs.ErrItemNotFound
	}
	return s.repo.UpdateItem(ctx, model.MergeItem(item, req))
}

func (s *Service) GetItem(ctx context.Context, userID, itemID int64) (model.ItemInfo, error) {
	viewer, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.ItemInfo{}, err
	}
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.ItemInfo{}, err
	}
	return s.annotateItem(ctx, item, viewer.ID, time.Now())
}

func (s *Service) ListItems(ctx context.Context, userID int64, from, size int) ([]model.ItemInfo, error) {
	owner, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	page, err := model.NewPageRequest(from, size)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItemsByOwner(ctx, owner.ID, page)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	infos := make([]model.ItemInfo, 0, len(items))
	for _, item := range items {
		info, err := s.annotateItem(ctx, item, owner.ID, now)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	// most recently booked first, never-booked items go last
	sort.SliceStable(infos, func(i, j int) bool {
		li, lj := infos[i].LastBooking, infos[j].LastBooking
		switch {
		case li == nil:
			return false
		case lj == nil:
			return true
		default:
			return li.Start.After(lj.Start)
		}
	})
	return infos, nil
}

func (s *Service) SearchItems(ctx context.Context, userID int64, text string, from, size int) ([]model.Item, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	if text == "" {
		return []model.Item{}, nil
	}
	page, err := model.NewPageRequest(from, size)
	if err != nil {
		return nil, err
	}
	return s.repo.SearchItems(ctx, text, page)
}

func (s *Service) CreateComment(ctx context.Context, userID, itemID int64, req model.CreateCommentRequest) (model.CommentInfo, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.CommentInfo{}, err
	}
	author, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.CommentInfo{}, err
	}

	now := time.Now()
	booking, err := s.repo.LastBookingByBooker(ctx, item.ID, author.ID, now)
	if err != nil {
		return model.CommentInfo{}, err
	}
	if booking == nil {
		return model.CommentInfo{}, errs.ErrInvalidComment
	}

	comment, err := s.repo.CreateComment(ctx, model.Comment{
		Text:     req.Text,
		ItemID:   item.ID,
		AuthorID: author.ID,
		Created:  now,
	})
	if err != nil {
		return model.CommentInfo{}, err
	}
	return model.CommentInfo{
		ID:         comment.ID,
		Text:       comment.Text,
		AuthorName: author.Name,
		Created:    comment.Created,
	}, nil
}

// annotateItem attaches comments for every viewer and the last/next booking
// for the owner only.
func (s *Service) annotateItem(ctx context.Context, item model.Item, viewerID int64, now time.Time) (model.ItemInfo, error) {
	info := model.ItemInfo{Item: item}

	comments, err := s.repo.ListCommentsByItem(ctx, item.ID)
	if err != nil {
		return model.ItemInfo{}, err
	}
	info.Comments = comments

	if viewerID != item.OwnerID {
		return info, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		last, err := s.repo.LastBooking(ctx, item.ID, now)
		info.LastBooking = last
		return err
	})
	g.Go(func() error {
		next, err := s.repo.NextBooking(ctx, item.ID, now)
		info.NextBooking = next
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ItemInfo{}, err
	}
	return info, nil
}
