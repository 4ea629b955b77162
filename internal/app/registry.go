package app

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vitorindio/agendamento-ferias/internal/absencetype"
	"github.com/vitorindio/agendamento-ferias/internal/auth"
	"github.com/vitorindio/agendamento-ferias/internal/balance"
	"github.com/vitorindio/agendamento-ferias/internal/leave"
	"github.com/vitorindio/agendamento-ferias/internal/messaging/kafka"
	"github.com/vitorindio/agendamento-ferias/internal/rbac"
	"github.com/vitorindio/agendamento-ferias/internal/rbac/infra"
	"github.com/vitorindio/agendamento-ferias/internal/team"
	"github.com/vitorindio/agendamento-ferias/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	sqlDB *sql.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return fmt.Errorf("build enforcer: %w", err)
	}
	rbacService := rbac.NewService(enforcer)

	var outbox kafka.OutboxRepository
	if os.Getenv("NOTIFICATIONS_DISABLED") != "true" {
		outbox = kafka.NewOutboxRepository(sqlDB)
	}

	userRepo := user.NewRepository(db)
	teamRepo := team.NewRepository(db)
	typeRepo := absencetype.NewRepository(db)
	balanceRepo := balance.NewRepository(db, sqlDB)
	leaveRepo := leave.NewRepository(db, sqlDB)

	userService := user.NewService(userRepo, logger)
	teamService := team.NewService(teamRepo, userRepo, logger)
	typeService := absencetype.NewService(typeRepo, rdb, logger)
	balanceService := balance.NewService(sqlDB, balanceRepo, logger)
	leaveService := leave.NewService(sqlDB, leaveRepo, userRepo, teamRepo, typeRepo, balanceRepo, outbox, logger)
	authService := auth.NewService(userRepo, outbox, logger)

	api := router.Group("/api/v1")

	auth.RegisterRoutes(api, auth.NewHandler(authService, logger))
	user.RegisterRoutes(api, user.NewHandler(userService, logger), rbacService)
	team.RegisterRoutes(api, team.NewHandler(teamService, logger), rbacService)
	absencetype.RegisterRoutes(api, absencetype.NewHandler(typeService, logger), rbacService)
	balance.RegisterRoutes(api, balance.NewHandler(balanceService, logger), rbacService)
	leave.RegisterRoutes(api, leave.NewHandlerWithRedis(leaveService, rdb, logger), rbacService, rdb)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return nil
}
