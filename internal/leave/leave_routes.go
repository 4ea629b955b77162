package leave

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/vitorindio/agendamento-ferias/internal/middleware"
	"github.com/vitorindio/agendamento-ferias/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("",
			middleware.RBACAuthorize(rbacService, "request", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		requests.GET("", handler.GetMine)
		requests.GET("/year/:year", handler.GetMineByYear)
		requests.GET("/pending", middleware.RBACAuthorize(rbacService, "request", "read_all"), handler.GetPending)
		requests.GET("/all", middleware.RBACAuthorize(rbacService, "request", "read_all"), handler.GetAll)
		requests.GET("/:id", handler.GetByID)

		requests.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "request", "approve"), handler.Approve)
		requests.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "request", "approve"), handler.Reject)
		requests.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "request", "cancel"), handler.Cancel)
	}
}
