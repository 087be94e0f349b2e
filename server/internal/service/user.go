package service

import (
	"context"

	"github.com/practicum/shareit/server/internal/model"
)

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	return s.repo.CreateUser(ctx, model.User{
		Name:  req.Name,
		Email: req.Email,
	})
}

func (s *Service) UpdateUser(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.User, error) {
	base, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	return s.repo.UpdateUser(ctx, model.MergeUser(base, req))
}

func (s *Service) GetUser(ctx context.Context, userID int64) (model.User, error) {
	return s.repo.GetUser(ctx, userID)
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) DeleteUser(ctx context.Context, userID int64) error {
	return s.repo.DeleteUser(ctx, userID)
}
