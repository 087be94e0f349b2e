package service

import (
	"context"
	"time"

	"github.com/practicum/shareit/server/internal/model"
)

func (s *Service) CreateRequest(ctx context.Context, userID int64, req model.CreateItemRequestRequest) (model.ItemRequestInfo, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.ItemRequestInfo{}, err
	}
	request, err := s.repo.CreateRequest(ctx, model.ItemRequest{
		Description: req.Description,
		RequestorID: user.ID,
		Created:     time.Now(),
	})
	if err != nil {
		return model.ItemRequestInfo{}, err
	}
	return model.ItemRequestInfo{
		ID:          request.ID,
		Description: request.Description,
		Created:     request.Created,
		Items:       []model.Item{},
	}, nil
}

func (s *Service) ListOwnRequests(ctx context.Context, userID int64) ([]model.ItemRequestInfo, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	requests, err := s.repo.ListRequestsByRequestor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.attachRequestItems(ctx, requests)
}

func (s *Service) ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]model.ItemRequestInfo, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	page, err := model.NewPageRequest(from, size)
	if err != nil {
		return nil, err
	}
	requests, err := s.repo.ListRequestsByOthers(ctx, user.ID, page)
	if err != nil {
		return nil, err
	}
	return s.attachRequestItems(ctx, requests)
}

func (s *Service) GetRequest(ctx context.Context, userID, requestID int64) (model.ItemRequestInfo, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return model.ItemRequestInfo{}, err
	}
	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return model.ItemRequestInfo{}, err
	}
	infos, err := s.attachRequestItems(ctx, []model.ItemRequest{request})
	if err != nil {
		return model.ItemRequestInfo{}, err
	}
	return infos[0], nil
}

// attachRequestItems joins items back onto the requests they fulfil.
func (s *Service) attachRequestItems(ctx context.Context, requests []model.ItemRequest) ([]model.ItemRequestInfo, error) {
	ids := make([]int64, 0, len(requests))
	for _, request := range requests {
		ids = append(ids, request.ID)
	}
	items, err := s.repo.ListItemsByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byRequest := make(map[int64][]model.Item, len(requests))
	for _, item := range items {
		if item.RequestID == nil {
			continue
		}
		byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
	}

	infos := make([]model.ItemRequestInfo, 0, len(requests))
	for _, request := range requests {
		requestItems := byRequest[request.ID]
		if requestItems == nil {
			requestItems = []model.Item{}
		}
		infos = append(infos, model.ItemRequestInfo{
			ID:          request.ID,
			Description: request.Description,
			Created:     request.Created,
			Items:       requestItems,
		})
	}
	return infos, nil
}
