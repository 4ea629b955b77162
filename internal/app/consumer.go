package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/vitorindio/agendamento-ferias/internal/events"
	"github.com/vitorindio/agendamento-ferias/internal/mailer"
	"github.com/vitorindio/agendamento-ferias/internal/messaging/kafka/consumer"
)

func buildMailer(logger *zap.Logger) mailer.Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		logger.Warn("SMTP_HOST not set, emails will be dropped")
		return mailer.NewNoopMailer()
	}
	return mailer.NewSMTPMailer(
		host,
		envOr("SMTP_PORT", "587"),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
		envOr("SMTP_FROM", "no-reply@agendamento-ferias.local"),
		logger,
	)
}

func newReader(broker, topic string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{broker},
		GroupID: "notification-service",
		Topic:   topic,
	})
}

// RunConsumer keeps one reader per notification topic until the process
// receives a stop signal.
func RunConsumer(logger *zap.Logger) error {
	broker := envOr("KAFKA_BROKER", "localhost:9092")
	frontendURL := envOr("FRONTEND_URL", "http://localhost:3000")
	m := buildMailer(logger)

	createdReader := newReader(broker, events.RequestCreatedTopic)
	decidedReader := newReader(broker, events.RequestDecidedTopic)
	registeredReader := newReader(broker, events.UserRegisteredTopic)
	defer createdReader.Close()
	defer decidedReader.Close()
	defer registeredReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		consumer.ConsumeRequestCreated(ctx, createdReader, m, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeRequestDecided(ctx, decidedReader, m, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeUserRegistered(ctx, registeredReader, m, frontendURL, logger)
	}()

	wg.Wait()
	return nil
}
