package leaveerrors

import (
	"net/http"

	"github.com/vitorindio/agendamento-ferias/internal/shared/apperror"
)

var (
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must not be before start_date",
		http.StatusBadRequest,
	)
	ErrPastDate = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must not be in the past",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrPeriodConflict = apperror.New(
		apperror.CodeConflict,
		"the requested period overlaps an existing request",
		http.StatusConflict,
	)
	ErrOnlyPendingDecidable = apperror.New(
		apperror.CodeInvalidState,
		"only pending requests can be approved or rejected",
		http.StatusConflict,
	)
	ErrCancelTerminal = apperror.New(
		apperror.CodeInvalidState,
		"rejected or cancelled requests cannot be cancelled",
		http.StatusConflict,
	)
	ErrApprovalForbidden = apperror.New(
		apperror.CodeForbidden,
		"only managers can decide leave requests",
		http.StatusForbidden,
	)
	ErrCancelForbidden = apperror.New(
		apperror.CodeForbidden,
		"only the requester can cancel a leave request",
		http.StatusForbidden,
	)
	ErrRequesterNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"requester not found",
		http.StatusBadRequest,
	)
	ErrApproverNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"approver not found",
		http.StatusBadRequest,
	)
)
