package events

import "time"

const RequestCreatedTopic = "leave.request.created.v1"

// RequestCreatedEvent is queued once per manager that should hear about a new
// pending request.
type RequestCreatedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id"`
	RequesterName string    `json:"requester_name"`
	ManagerName   string    `json:"manager_name"`
	ManagerEmail  string    `json:"manager_email"`
	Period        string    `json:"period"`
	OccurredAt    time.Time `json:"occurred_at"`
}
