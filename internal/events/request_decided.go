package events

import "time"

const RequestDecidedTopic = "leave.request.decided.v1"

type RequestDecidedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id"`
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
	Period         string    `json:"period"`
	Approved       bool      `json:"approved"`
	Reason         string    `json:"reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
