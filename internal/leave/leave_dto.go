package leave

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	AbsenceTypeID string `json:"absence_type_id" binding:"required,uuid"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Comment       string `json:"comment" binding:"omitempty,max=500"`
}

type RejectRequestRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type RequestResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	AbsenceTypeID  uuid.UUID  `json:"absence_type_id"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	TotalDays      int        `json:"total_days"`
	Status         string     `json:"status"`
	Comment        string     `json:"comment,omitempty"`
	DecisionReason string     `json:"decision_reason,omitempty"`
	DeciderID      *uuid.UUID `json:"decider_id,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func mapToResponse(r LeaveRequest) RequestResponse {
	return RequestResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		AbsenceTypeID:  r.AbsenceTypeID,
		StartDate:      r.StartDate.Format("2006-01-02"),
		EndDate:        r.EndDate.Format("2006-01-02"),
		TotalDays:      r.TotalDays(),
		Status:         r.Status,
		Comment:        r.Comment,
		DecisionReason: r.DecisionReason,
		DeciderID:      r.DeciderID,
		DecidedAt:      r.DecidedAt,
		CancelledAt:    r.CancelledAt,
		CreatedAt:      r.CreatedAt,
	}
}

func mapToListResponse(requests []LeaveRequest) []RequestResponse {
	resp := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, mapToResponse(r))
	}
	return resp
}
