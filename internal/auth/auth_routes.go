package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/vitorindio/agendamento-ferias/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimitByIP(5, 10), handler.Register)
		authGroup.POST("/confirm", handler.Confirm)
		authGroup.GET("/confirm", handler.Confirm)
		authGroup.POST("/login", middleware.RateLimitByIP(5, 10), handler.Login)
		authGroup.POST("/refresh", middleware.RateLimitByIP(5, 10), handler.Refresh)

		authGroup.GET("/me", middleware.AuthMiddleware(), handler.GetMe)
	}
}
