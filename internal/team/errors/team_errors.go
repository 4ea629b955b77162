package teamerrors

import (
	"net/http"

	"github.com/vitorindio/agendamento-ferias/internal/shared/apperror"
)

var (
	ErrInvalidTeamID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid team id",
		http.StatusBadRequest,
	)
	ErrTeamNotFound = apperror.New(
		apperror.CodeNotFound,
		"team not found",
		http.StatusNotFound,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"manager user not found",
		http.StatusBadRequest,
	)
	ErrManagerRoleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"manager must hold the MANAGER role",
		http.StatusBadRequest,
	)
	ErrAlreadyMember = apperror.New(
		apperror.CodeConflict,
		"user is already a member of this team",
		http.StatusConflict,
	)
	ErrMemberNotFound = apperror.New(
		apperror.CodeNotFound,
		"user is not a member of this team",
		http.StatusNotFound,
	)
)
