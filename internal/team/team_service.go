package team

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamerrors "github.com/vitorindio/agendamento-ferias/internal/team/errors"
	"github.com/vitorindio/agendamento-ferias/internal/user"
)

type Service interface {
	Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error)
	Update(ctx context.Context, id string, req UpdateTeamRequest) (TeamResponse, error)
	GetByID(ctx context.Context, id string) (TeamResponse, error)
	GetAll(ctx context.Context) ([]TeamResponse, error)
	GetByManager(ctx context.Context, managerID string) ([]TeamResponse, error)
	GetByMember(ctx context.Context, userID string) ([]TeamResponse, error)
	GetMembers(ctx context.Context, teamID string) ([]TeamMemberResponse, error)
	AddMember(ctx context.Context, teamID, userID string) error
	RemoveMember(ctx context.Context, teamID, userID string) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{repo: repo, userRepo: userRepo, logger: l}
}

func (s *service) resolveManager(ctx context.Context, managerID string) (*user.User, error) {
	manager, err := s.userRepo.FindByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamerrors.ErrManagerNotFound
		}
		return nil, err
	}
	if manager.Role != user.RoleManager && manager.Role != user.RoleAdmin {
		return nil, teamerrors.ErrManagerRoleRequired
	}
	return manager, nil
}

func (s *service) Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error) {
	manager, err := s.resolveManager(ctx, req.ManagerID)
	if err != nil {
		return TeamResponse{}, err
	}

	t := Team{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   manager.ID,
	}
	if err := s.repo.Create(ctx, &t); err != nil {
		return TeamResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("team created", zap.String("team_id", t.ID.String()), zap.String("manager_id", req.ManagerID))
	return mapToResponse(t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTeamRequest) (TeamResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TeamResponse{}, mapRepositoryError(err)
	}

	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Description != "" {
		t.Description = req.Description
	}
	if req.ManagerID != "" {
		manager, err := s.resolveManager(ctx, req.ManagerID)
		if err != nil {
			return TeamResponse{}, err
		}
		t.ManagerID = manager.ID
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return TeamResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("team updated", zap.String("team_id", id))
	return mapToResponse(*t), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TeamResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TeamResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(teams), nil
}

func (s *service) GetByManager(ctx context.Context, managerID string) ([]TeamResponse, error) {
	teams, err := s.repo.FindByManager(ctx, managerID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(teams), nil
}

func (s *service) GetByMember(ctx context.Context, userID string) ([]TeamResponse, error) {
	teams, err := s.repo.FindByMember(ctx, userID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(teams), nil
}

func (s *service) GetMembers(ctx context.Context, teamID string) ([]TeamMemberResponse, error) {
	if _, err := s.repo.FindByID(ctx, teamID); err != nil {
		return nil, mapRepositoryError(err)
	}

	members, err := s.repo.FindMembers(ctx, teamID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, TeamMemberResponse{
			UserID:   m.ID,
			FullName: m.FullName,
			Email:    m.Email,
			JobTitle: m.JobTitle,
		})
	}
	return resp, nil
}

func (s *service) AddMember(ctx context.Context, teamID, userID string) error {
	if _, err := s.repo.FindByID(ctx, teamID); err != nil {
		return mapRepositoryError(err)
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return teamerrors.ErrMemberNotFound
		}
		return err
	}

	if err := s.repo.AddMember(ctx, teamID, userID); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("team member added", zap.String("team_id", teamID), zap.String("user_id", userID))
	return nil
}

func (s *service) RemoveMember(ctx context.Context, teamID, userID string) error {
	if _, err := s.repo.FindByID(ctx, teamID); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.RemoveMember(ctx, teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return teamerrors.ErrMemberNotFound
		}
		return mapRepositoryError(err)
	}

	s.logger.Info("team member removed", zap.String("team_id", teamID), zap.String("user_id", userID))
	return nil
}
