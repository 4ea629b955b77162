package balance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	balanceerrors "github.com/vitorindio/agendamento-ferias/internal/balance/errors"
	"github.com/vitorindio/agendamento-ferias/internal/shared/apperror"
	"github.com/vitorindio/agendamento-ferias/internal/shared/contextutil"
	"github.com/vitorindio/agendamento-ferias/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("balance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("balance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, false
	}
	return year, true
}

func (h *Handler) GetMine(c *gin.Context) {
	userID, ok := contextutil.GetUserID(c.Request.Context())
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.GetCurrent(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMineByYear(c *gin.Context) {
	userID, ok := contextutil.GetUserID(c.Request.Context())
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	year, ok := yearParam(c)
	if !ok {
		h.writeServiceError(c, balanceerrors.ErrInvalidYear)
		return
	}

	resp, err := h.service.GetByYear(c.Request.Context(), userID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByUser(c *gin.Context) {
	resp, err := h.service.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByYear(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		h.writeServiceError(c, balanceerrors.ErrInvalidYear)
		return
	}

	resp, err := h.service.ListByYear(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdjustTotal(c *gin.Context) {
	var req AdjustTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	year, ok := yearParam(c)
	if !ok {
		h.writeServiceError(c, balanceerrors.ErrInvalidYear)
		return
	}

	resp, err := h.service.AdjustTotal(c.Request.Context(), c.Param("id"), year, req.TotalDays)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
