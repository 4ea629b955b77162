package app

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vitorindio/agendamento-ferias/internal/messaging/kafka"
	"github.com/vitorindio/agendamento-ferias/internal/messaging/kafka/producer"
	"github.com/vitorindio/agendamento-ferias/internal/shared/connection"
)

// RunWorker drives the outbox producer: pending rows go out to kafka
// until the process receives a stop signal.
func RunWorker(logger *zap.Logger) error {
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
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	writer, err := connection.ConnectKafkaWithRetry(envOr("KAFKA_BROKER", "localhost:9092"), 10)
	if err != nil {
		return err
	}
	defer writer.Close()

	pollInterval := 3 * time.Second
	if v := os.Getenv("OUTBOX_POLL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			pollInterval = time.Duration(secs) * time.Second
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(sqlDB), writer, logger, pollInterval)
	return nil
}
