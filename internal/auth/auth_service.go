package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "github.com/vitorindio/agendamento-ferias/internal/auth/errors"
	"github.com/vitorindio/agendamento-ferias/internal/messaging/kafka"
	"github.com/vitorindio/agendamento-ferias/internal/notification"
	"github.com/vitorindio/agendamento-ferias/internal/user"
)

const (
	accessTokenTTL       = 15 * time.Minute
	refreshTokenTTL      = 7 * 24 * time.Hour
	confirmationTokenTTL = 24 * time.Hour
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)
	Confirm(ctx context.Context, token string) (user.UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error)
	GetMe(ctx context.Context, userID string) (user.UserResponse, error)
}

type service struct {
	userRepo user.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(userRepo user.Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{userRepo: userRepo, outbox: outbox, logger: l}
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return user.UserResponse{}, autherrors.ErrEmailInUse
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}

	confirmToken, err := randomToken()
	if err != nil {
		return user.UserResponse{}, autherrors.ErrTokenGenerationFailed
	}
	expiresAt := time.Now().UTC().Add(confirmationTokenTTL)

	u := user.User{
		FullName:              req.FullName,
		Email:                 req.Email,
		PasswordHash:          string(hash),
		Role:                  user.RoleUser,
		Active:                false,
		JobTitle:              req.JobTitle,
		ConfirmationToken:     &confirmToken,
		ConfirmationExpiresAt: &expiresAt,
	}
	if req.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", req.HireDate)
		if err == nil {
			u.HireDate = &hireDate
		}
	}

	if err := s.userRepo.Create(ctx, &u); err != nil {
		return user.UserResponse{}, mapRegisterError(err)
	}

	if s.outbox != nil {
		err := notification.QueueUserRegistered(ctx, s.outbox, u.ID.String(), u.FullName, u.Email, confirmToken)
		if err != nil {
			s.logger.Warn("queue registration notification failed",
				zap.String("user_id", u.ID.String()), zap.Error(err))
		}
	}

	s.logger.Info("user registered", zap.String("user_id", u.ID.String()))
	return user.MapToResponse(u), nil
}

// mapRegisterError catches the unique violation a concurrent registration
// slips past the FindByEmail pre-check.
func mapRegisterError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return autherrors.ErrEmailInUse
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_user_email" {
			return autherrors.ErrEmailInUse
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_user_email") {
		return autherrors.ErrEmailInUse
	}

	return err
}

func (s *service) Confirm(ctx context.Context, token string) (user.UserResponse, error) {
	u, err := s.userRepo.FindByConfirmationToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserResponse{}, autherrors.ErrConfirmationTokenInvalid
		}
		return user.UserResponse{}, err
	}

	if u.ConfirmationExpiresAt == nil || time.Now().UTC().After(*u.ConfirmationExpiresAt) {
		return user.UserResponse{}, autherrors.ErrConfirmationTokenExpired
	}

	u.Active = true
	u.ConfirmationToken = nil
	u.ConfirmationExpiresAt = nil
	if err := s.userRepo.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	s.logger.Info("user confirmed", zap.String("user_id", u.ID.String()))
	return user.MapToResponse(*u), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenPairResponse, error) {
	u, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPairResponse{}, autherrors.ErrInvalidCredentials
		}
		return TokenPairResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return TokenPairResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.Active {
		return TokenPairResponse{}, autherrors.ErrAccountNotConfirmed
	}

	pair, err := s.issueTokenPair(*u)
	if err != nil {
		return TokenPairResponse{}, err
	}

	s.logger.Info("user logged in", zap.String("user_id", u.ID.String()))
	return pair, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidRefreshToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return TokenPairResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPairResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if kind, _ := claims["kind"].(string); kind != "refresh" {
		return TokenPairResponse{}, autherrors.ErrInvalidRefreshToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return TokenPairResponse{}, autherrors.ErrInvalidRefreshToken
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPairResponse{}, autherrors.ErrUserNotFound
		}
		return TokenPairResponse{}, err
	}
	if !u.Active {
		return TokenPairResponse{}, autherrors.ErrAccountNotConfirmed
	}

	return s.issueTokenPair(*u)
}

func (s *service) GetMe(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserResponse{}, autherrors.ErrUserNotFound
		}
		return user.UserResponse{}, err
	}
	return user.MapToResponse(*u), nil
}

func (s *service) issueTokenPair(u user.User) (TokenPairResponse, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))
	now := time.Now().UTC()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID.String(),
		"role":    u.Role,
		"kind":    "access",
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	})
	accessToken, err := access.SignedString(secret)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrTokenGenerationFailed
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID.String(),
		"kind":    "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTokenTTL).Unix(),
	})
	refreshToken, err := refresh.SignedString(secret)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.MapToResponse(u),
	}, nil
}
