// Package notification turns domain happenings into outbox rows. The
// kafka producer worker picks the rows up and the consumer sends the
// actual emails, so request handling never blocks on SMTP.
package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/vitorindio/agendamento-ferias/internal/events"
	"github.com/vitorindio/agendamento-ferias/internal/messaging/kafka"
	"github.com/vitorindio/agendamento-ferias/internal/shared/contextutil"
)

type ManagerContact struct {
	Name  string
	Email string
}

func FormatPeriod(start, end time.Time) string {
	return start.Format("2006-01-02") + " to " + end.Format("2006-01-02")
}

func queue(ctx context.Context, outbox kafka.OutboxRepository, topic, eventType, aggregateType, aggregateID string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	requestID, _ := contextutil.GetRequestID(ctx)
	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}
	return outbox.Create(ctx, event)
}

// QueueRequestCreated writes one outbox row per manager to notify.
func QueueRequestCreated(ctx context.Context, outbox kafka.OutboxRepository, requestID, requesterName, period string, managers []ManagerContact) error {
	for _, m := range managers {
		payload := events.RequestCreatedEvent{
			EventType:     "leave.request.created",
			RequestID:     requestID,
			RequesterName: requesterName,
			ManagerName:   m.Name,
			ManagerEmail:  m.Email,
			Period:        period,
			OccurredAt:    time.Now().UTC(),
		}
		if err := queue(ctx, outbox, events.RequestCreatedTopic, payload.EventType, "leave_request", requestID, payload); err != nil {
			return err
		}
	}
	return nil
}

func QueueRequestDecided(ctx context.Context, outbox kafka.OutboxRepository, requestID, requesterName, requesterEmail, period string, approved bool, reason string) error {
	payload := events.RequestDecidedEvent{
		EventType:      "leave.request.decided",
		RequestID:      requestID,
		RequesterName:  requesterName,
		RequesterEmail: requesterEmail,
		Period:         period,
		Approved:       approved,
		Reason:         reason,
		OccurredAt:     time.Now().UTC(),
	}
	return queue(ctx, outbox, events.RequestDecidedTopic, payload.EventType, "leave_request", requestID, payload)
}

func QueueUserRegistered(ctx context.Context, outbox kafka.OutboxRepository, userID, name, email, confirmationToken string) error {
	payload := events.UserRegisteredEvent{
		EventType:         "auth.user.registered",
		UserID:            userID,
		Name:              name,
		Email:             email,
		ConfirmationToken: confirmationToken,
		OccurredAt:        time.Now().UTC(),
	}
	return queue(ctx, outbox, events.UserRegisteredTopic, payload.EventType, "user", userID, payload)
}
