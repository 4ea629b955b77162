package absencetype

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
	types := r.Group("/absence-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", handler.GetAll)
		types.GET("/:id", handler.GetByID)
		types.POST("", middleware.RBACAuthorize(rbacService, "absence_type", "manage"), handler.Create)
		types.PUT("/:id", middleware.RBACAuthorize(rbacService, "absence_type", "manage"), handler.Update)
		types.PUT("/:id/active", middleware.RBACAuthorize(rbacService, "absence_type", "manage"), handler.ToggleActive)
	}
}
