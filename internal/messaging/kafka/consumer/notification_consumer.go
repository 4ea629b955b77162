package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/vitorindio/agendamento-ferias/internal/events"
	"github.com/vitorindio/agendamento-ferias/internal/mailer"
)

// ConsumeRequestCreated mails every manager that a new pending request is
// waiting for their review.
func ConsumeRequestCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	m mailer.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_created")
	log.Info("request created consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request created consumer stopped")
				return
			}
			log.Error("fetch request created message failed", zap.Error(err))
			continue
		}

		var event events.RequestCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode request_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		subject := "New leave request pending approval"
		body := fmt.Sprintf(
			"Hello %s,\n\n"+
				"You have a new leave request to review:\n\n"+
				"Employee: %s\nPeriod: %s\n\n"+
				"Log in to approve or reject the request.\n",
			event.ManagerName, event.RequesterName, event.Period,
		)

		if err := m.Send(ctx, event.ManagerEmail, subject, body); err != nil {
			log.Error("send request created mail failed",
				zap.String("request_id", event.RequestID),
				zap.String("manager_email", event.ManagerEmail),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit request created message failed", zap.Error(err))
			continue
		}

		log.Info("request created notification delivered",
			zap.String("request_id", event.RequestID),
			zap.String("manager_email", event.ManagerEmail),
		)
	}
}

// ConsumeRequestDecided mails the requester with the approval or rejection
// outcome.
func ConsumeRequestDecided(
	ctx context.Context,
	reader *kafkago.Reader,
	m mailer.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_decided")
	log.Info("request decided consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request decided consumer stopped")
				return
			}
			log.Error("fetch request decided message failed", zap.Error(err))
			continue
		}

		var event events.RequestDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode request_decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		outcome := "APPROVED"
		if !event.Approved {
			outcome = "REJECTED"
		}

		subject := fmt.Sprintf("Your leave request was %s", outcome)
		body := fmt.Sprintf(
			"Hello %s,\n\nYour leave request for %s was %s.\n",
			event.RequesterName, event.Period, outcome,
		)
		if !event.Approved && event.Reason != "" {
			body += fmt.Sprintf("\nReason: %s\n", event.Reason)
		}

		if err := m.Send(ctx, event.RequesterEmail, subject, body); err != nil {
			log.Error("send request decided mail failed",
				zap.String("request_id", event.RequestID),
				zap.String("requester_email", event.RequesterEmail),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit request decided message failed", zap.Error(err))
			continue
		}

		log.Info("request decided notification delivered",
			zap.String("request_id", event.RequestID),
			zap.Bool("approved", event.Approved),
		)
	}
}

// ConsumeUserRegistered mails the email confirmation link for new accounts.
func ConsumeUserRegistered(
	ctx context.Context,
	reader *kafkago.Reader,
	m mailer.Mailer,
	frontendURL string,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.user_registered")
	log.Info("user registered consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("user registered consumer stopped")
				return
			}
			log.Error("fetch user registered message failed", zap.Error(err))
			continue
		}

		var event events.UserRegisteredEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode user_registered event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		subject := "Confirm your registration"
		body := fmt.Sprintf(
			"Hello %s,\n\n"+
				"Thanks for signing up.\n\n"+
				"Click the link below to confirm your email:\n%s/confirm-email?token=%s\n\n"+
				"This link expires in 24 hours. If you did not sign up, ignore this email.\n",
			event.Name, frontendURL, event.ConfirmationToken,
		)

		if err := m.Send(ctx, event.Email, subject, body); err != nil {
			log.Error("send confirmation mail failed",
				zap.String("user_id", event.UserID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit user registered message failed", zap.Error(err))
			continue
		}

		log.Info("confirmation mail delivered", zap.String("user_id", event.UserID))
	}
}
