package balanceerrors

import (
	"net/http"

	"github.com/vitorindio/agendamento-ferias/internal/shared/apperror"
)

var (
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave balance not found",
		http.StatusNotFound,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeConflict,
		"insufficient leave balance for the requested period",
		http.StatusConflict,
	)
	ErrTotalBelowUsed = apperror.New(
		apperror.CodeConflict,
		"total days cannot be set below days already used",
		http.StatusConflict,
	)
)
