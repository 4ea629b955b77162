package team

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
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("", handler.GetAll)
		teams.GET("/mine", handler.GetMine)
		teams.GET("/managed", handler.GetManaged)
		teams.GET("/:id", handler.GetByID)
		teams.GET("/:id/members", handler.GetMembers)

		manage := teams.Group("")
		manage.Use(middleware.RBACAuthorize(rbacService, "team", "manage"))
		{
			manage.POST("", handler.Create)
			manage.PUT("/:id", handler.Update)
			manage.POST("/:id/members", handler.AddMember)
			manage.DELETE("/:id/members/:userId", handler.RemoveMember)
		}
	}
}
