package balance

import (
	"github.com/gin-gonic/gin"

	"github.com/vitorindio/agendamento-ferias/internal/middleware"
	"github.com/vitorindio/agendamento-ferias/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	balances := r.Group("/balances")
	balances.Use(middleware.AuthMiddleware())
	{
		balances.GET("/me", handler.GetMine)
		balances.GET("/me/:year", handler.GetMineByYear)

		balances.GET("/users/:id", middleware.RBACAuthorize(rbacService, "request", "read_all"), handler.ListByUser)
		balances.GET("/year/:year", middleware.RBACAuthorize(rbacService, "request", "read_all"), handler.ListByYear)

		balances.PUT("/users/:id/:year", middleware.RBACAuthorize(rbacService, "balance", "adjust"), handler.AdjustTotal)
	}
}
