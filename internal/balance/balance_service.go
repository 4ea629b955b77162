package balance

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	balanceerrors "github.com/vitorindio/agendamento-ferias/internal/balance/errors"
)

type Service interface {
	GetCurrent(ctx context.Context, userID string) (BalanceResponse, error)
	GetByYear(ctx context.Context, userID string, year int) (BalanceResponse, error)
	ListByUser(ctx context.Context, userID string) ([]BalanceResponse, error)
	ListByYear(ctx context.Context, year int) ([]BalanceResponse, error)
	AdjustTotal(ctx context.Context, userID string, year, totalDays int) (BalanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func validYear(year int) bool {
	return year >= 2000 && year <= 2200
}

func (s *service) GetCurrent(ctx context.Context, userID string) (BalanceResponse, error) {
	return s.GetByYear(ctx, userID, time.Now().UTC().Year())
}

func (s *service) GetByYear(ctx context.Context, userID string, year int) (BalanceResponse, error) {
	if !validYear(year) {
		return BalanceResponse{}, balanceerrors.ErrInvalidYear
	}

	b, err := s.repo.GetOrCreate(ctx, userID, year)
	if err != nil {
		return BalanceResponse{}, err
	}
	return mapToResponse(*b), nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]BalanceResponse, error) {
	balances, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(balances), nil
}

func (s *service) ListByYear(ctx context.Context, year int) ([]BalanceResponse, error) {
	if !validYear(year) {
		return nil, balanceerrors.ErrInvalidYear
	}

	balances, err := s.repo.FindByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(balances), nil
}

func (s *service) AdjustTotal(ctx context.Context, userID string, year, totalDays int) (BalanceResponse, error) {
	if !validYear(year) {
		return BalanceResponse{}, balanceerrors.ErrInvalidYear
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.GetOrCreate(ctx, userID, year); err != nil {
		return BalanceResponse{}, err
	}

	ok, err := qtx.SetTotal(ctx, userID, year, totalDays)
	if err != nil {
		return BalanceResponse{}, err
	}
	if !ok {
		return BalanceResponse{}, balanceerrors.ErrTotalBelowUsed
	}

	b, err := qtx.GetOrCreate(ctx, userID, year)
	if err != nil {
		return BalanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BalanceResponse{}, err
	}

	s.logger.Info("balance total adjusted",
		zap.String("user_id", userID),
		zap.Int("year", year),
		zap.Int("total_days", totalDays),
	)
	return mapToResponse(*b), nil
}
