package autherrors

import (
	"net/http"

	"github.com/vitorindio/agendamento-ferias/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"token has expired",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrAccountNotConfirmed = apperror.New(
		apperror.CodeForbidden,
		"account has not been confirmed yet",
		http.StatusForbidden,
	)
	ErrEmailInUse = apperror.New(
		apperror.CodeConflict,
		"email is already registered",
		http.StatusConflict,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrConfirmationTokenInvalid = apperror.New(
		apperror.CodeInvalidInput,
		"invalid confirmation token",
		http.StatusBadRequest,
	)
	ErrConfirmationTokenExpired = apperror.New(
		apperror.CodeInvalidInput,
		"confirmation token has expired",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"could not generate token",
		http.StatusInternalServerError,
	)
)
