package notification_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorindio/agendamento-ferias/internal/events"
	"github.com/vitorindio/agendamento-ferias/internal/messaging/kafka"
	"github.com/vitorindio/agendamento-ferias/internal/notification"
)

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(context.Context, int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(context.Context, string) error          { return nil }
func (f *fakeOutbox) MarkFailed(context.Context, string, string) error { return nil }

func TestFormatPeriod(t *testing.T) {
	start := time.Date(2027, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 7, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2027-07-01 to 2027-07-10", notification.FormatPeriod(start, end))
}

func TestQueueRequestCreated(t *testing.T) {
	outbox := &fakeOutbox{}
	managers := []notification.ManagerContact{
		{Name: "Bruno Lima", Email: "bruno@example.com"},
		{Name: "Carla Dias", Email: "carla@example.com"},
	}

	err := notification.QueueRequestCreated(
		context.Background(), outbox,
		"req-1", "Ana Souza", "2027-07-01 to 2027-07-10", managers,
	)

	require.NoError(t, err)
	require.Len(t, outbox.created, 2)

	for i, row := range outbox.created {
		assert.Equal(t, events.RequestCreatedTopic, row.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, row.Status)

		var event events.RequestCreatedEvent
		require.NoError(t, json.Unmarshal(row.Payload, &event))
		assert.Equal(t, "Ana Souza", event.RequesterName)
		assert.Equal(t, managers[i].Email, event.ManagerEmail)
	}
}

func TestQueueRequestDecided(t *testing.T) {
	outbox := &fakeOutbox{}

	err := notification.QueueRequestDecided(
		context.Background(), outbox,
		"req-1", "Ana Souza", "ana@example.com", "2027-07-01 to 2027-07-10",
		false, "peak season",
	)

	require.NoError(t, err)
	require.Len(t, outbox.created, 1)

	var event events.RequestDecidedEvent
	require.NoError(t, json.Unmarshal(outbox.created[0].Payload, &event))
	assert.False(t, event.Approved)
	assert.Equal(t, "peak season", event.Reason)
}
