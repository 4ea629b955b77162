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
	"github.com/vitorindio/agendamento-ferias/internal/balance"
	"github.com/vitorindio/agendamento-ferias/internal/leave"
	"github.com/vitorindio/agendamento-ferias/internal/middleware"
	"github.com/vitorindio/agendamento-ferias/internal/shared/connection"
	"github.com/vitorindio/agendamento-ferias/internal/team"
	"github.com/vitorindio/agendamento-ferias/internal/user"
)

type App struct {
	DB     *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
	Router *gin.Engine
	Logger *zap.Logger
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildApp connects the infrastructure, migrates the schema, seeds the
// defaults and wires every module onto a fresh router.
func BuildApp(logger *zap.Logger) (*App, error) {
	db, err := connection.ConnectGORMWithRetry(
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		envOr("DB_PASSWORD", "postgres"),
		envOr("DB_NAME", "agendamento_ferias"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"),
		10,
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(envOr("REDIS_ADDR", "localhost:6379"), 10)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := seed(db, logger); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	if err := registerModules(router, db, sqlDB, rdb, logger); err != nil {
		return nil, err
	}

	return &App{
		DB:     db,
		SQLDB:  sqlDB,
		Redis:  rdb,
		Router: router,
		Logger: logger,
	}, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&team.Team{},
		&team.TeamMember{},
		&absencetype.AbsenceType{},
		&balance.LeaveBalance{},
		&leave.LeaveRequest{},
	); err != nil {
		return err
	}

	// Outbox rows are written with raw SQL, so the table is created the
	// same way.
	return db.Exec(`
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id VARCHAR(64),
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type VARCHAR(100) NOT NULL,
	topic VARCHAR(100) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message VARCHAR(500),
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`).Error
}
