package absencetype

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	absencetypeerrors "github.com/vitorindio/agendamento-ferias/internal/absencetype/errors"
)

const (
	activeTypesCacheKey = "absence_types:active"
	activeTypesCacheTTL = 10 * time.Minute
)

type Service interface {
	Create(ctx context.Context, req CreateAbsenceTypeRequest) (AbsenceTypeResponse, error)
	Update(ctx context.Context, id string, req UpdateAbsenceTypeRequest) (AbsenceTypeResponse, error)
	ToggleActive(ctx context.Context, id string) (AbsenceTypeResponse, error)
	GetAll(ctx context.Context) ([]AbsenceTypeResponse, error)
	GetActive(ctx context.Context) ([]AbsenceTypeResponse, error)
	GetByID(ctx context.Context, id string) (AbsenceTypeResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

// NewService builds the absence type service. rdb may be nil, in which
// case the active listing always hits the database.
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("absencetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absencetype.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAbsenceTypeRequest) (AbsenceTypeResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return AbsenceTypeResponse{}, absencetypeerrors.ErrTypeNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AbsenceTypeResponse{}, err
	}

	t := AbsenceType{
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if req.ColorHex != "" {
		t.ColorHex = req.ColorHex
	} else {
		t.ColorHex = "#34D399"
	}
	if req.DeductsBalance != nil {
		t.DeductsBalance = *req.DeductsBalance
	} else {
		t.DeductsBalance = true
	}

	if err := s.repo.Create(ctx, &t); err != nil {
		return AbsenceTypeResponse{}, mapRepositoryError(err)
	}

	s.invalidateActiveCache(ctx)
	s.logger.Info("absence type created", zap.String("type_id", t.ID.String()), zap.String("name", t.Name))
	return mapToResponse(t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAbsenceTypeRequest) (AbsenceTypeResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AbsenceTypeResponse{}, mapRepositoryError(err)
	}

	if req.Name != "" && req.Name != t.Name {
		existing, err := s.repo.FindByName(ctx, req.Name)
		if err == nil && existing.ID != t.ID {
			return AbsenceTypeResponse{}, absencetypeerrors.ErrTypeNameTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return AbsenceTypeResponse{}, err
		}
		t.Name = req.Name
	}
	if req.ColorHex != "" {
		t.ColorHex = req.ColorHex
	}
	if req.DeductsBalance != nil {
		t.DeductsBalance = *req.DeductsBalance
	}
	if req.Description != "" {
		t.Description = req.Description
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return AbsenceTypeResponse{}, mapRepositoryError(err)
	}

	s.invalidateActiveCache(ctx)
	s.logger.Info("absence type updated", zap.String("type_id", id))
	return mapToResponse(*t), nil
}

func (s *service) ToggleActive(ctx context.Context, id string) (AbsenceTypeResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AbsenceTypeResponse{}, mapRepositoryError(err)
	}

	t.Active = !t.Active
	if err := s.repo.Update(ctx, t); err != nil {
		return AbsenceTypeResponse{}, mapRepositoryError(err)
	}

	s.invalidateActiveCache(ctx)
	s.logger.Info("absence type toggled", zap.String("type_id", id), zap.Bool("active", t.Active))
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]AbsenceTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(types), nil
}

// GetActive serves the active listing from redis when possible. A
// singleflight group keeps concurrent cache misses down to one
// database query.
func (s *service) GetActive(ctx context.Context) ([]AbsenceTypeResponse, error) {
	if s.rdb == nil {
		types, err := s.repo.FindActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return mapToListResponse(types), nil
	}

	cached, err := s.rdb.Get(ctx, activeTypesCacheKey).Bytes()
	if err == nil {
		var resp []AbsenceTypeResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			return resp, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("active types cache read failed", zap.Error(err))
	}

	v, err, _ := s.group.Do(activeTypesCacheKey, func() (interface{}, error) {
		types, err := s.repo.FindActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		resp := mapToListResponse(types)

		payload, jsonErr := json.Marshal(resp)
		if jsonErr == nil {
			if setErr := s.rdb.Set(ctx, activeTypesCacheKey, payload, activeTypesCacheTTL).Err(); setErr != nil {
				s.logger.Warn("active types cache write failed", zap.Error(setErr))
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]AbsenceTypeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AbsenceTypeResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AbsenceTypeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) invalidateActiveCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, activeTypesCacheKey).Err(); err != nil {
		s.logger.Warn("active types cache invalidation failed", zap.Error(err))
	}
}
