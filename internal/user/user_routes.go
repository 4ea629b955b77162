package user

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
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", middleware.RBACAuthorize(rbacService, "user", "manage"), handler.GetAll)
		users.GET("/:id", handler.GetByID)
		users.PUT("/:id", middleware.RBACAuthorize(rbacService, "user", "manage"), handler.Update)
		users.PUT("/:id/role", middleware.RBACAuthorize(rbacService, "user", "manage"), handler.ChangeRole)
		users.PUT("/:id/active", middleware.RBACAuthorize(rbacService, "user", "manage"), handler.ToggleActive)
	}
}
