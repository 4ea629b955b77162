package user

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	usererrors "github.com/vitorindio/agendamento-ferias/internal/user/errors"
)

type Service interface {
	GetByID(ctx context.Context, id string) (UserResponse, error)
	GetByEmail(ctx context.Context, email string) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetActive(ctx context.Context) ([]UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	ChangeRole(ctx context.Context, id, role string) (UserResponse, error)
	ToggleActive(ctx context.Context, id string) (UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (UserResponse, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) GetActive(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	s.logger.Debug("update user requested", zap.String("user_id", id))

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if req.FullName != "" {
		u.FullName = req.FullName
	}
	if req.Email != "" && req.Email != u.Email {
		existing, err := s.repo.FindByEmail(ctx, req.Email)
		if err == nil && existing.ID != u.ID {
			return UserResponse{}, usererrors.ErrEmailInUse
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, err
		}
		u.Email = req.Email
	}
	if req.JobTitle != "" {
		u.JobTitle = req.JobTitle
	}
	if req.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidHireDate
		}
		u.HireDate = &hireDate
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update user success", zap.String("user_id", id))
	return mapToResponse(*u), nil
}

func (s *service) ChangeRole(ctx context.Context, id, role string) (UserResponse, error) {
	if !IsValidRole(role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.Role = role
	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("change role success", zap.String("user_id", id), zap.String("role", role))
	return mapToResponse(*u), nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.Active = !u.Active
	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("toggle active success", zap.String("user_id", id), zap.Bool("active", u.Active))
	return mapToResponse(*u), nil
}
