package events

import "time"

const UserRegisteredTopic = "auth.user.registered.v1"

type UserRegisteredEvent struct {
	EventType         string    `json:"event_type"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	ConfirmationToken string    `json:"confirmation_token"`
	OccurredAt        time.Time `json:"occurred_at"`
}
