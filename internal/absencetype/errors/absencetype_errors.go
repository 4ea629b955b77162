package absencetypeerrors

import (
	"net/http"

	"github.com/vitorindio/agendamento-ferias/internal/shared/apperror"
)

var (
	ErrInvalidTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid absence type id",
		http.StatusBadRequest,
	)
	ErrTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"absence type not found",
		http.StatusNotFound,
	)
	ErrTypeNameTaken = apperror.New(
		apperror.CodeConflict,
		"an absence type with this name already exists",
		http.StatusConflict,
	)
	ErrTypeInactive = apperror.New(
		apperror.CodeInvalidInput,
		"absence type is not active",
		http.StatusBadRequest,
	)
)
