package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// LeaveRequest is the unit of the scheduling workflow. Status only
// moves PENDING -> APPROVED/REJECTED, and PENDING/APPROVED -> CANCELLED.
type LeaveRequest struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	AbsenceTypeID  uuid.UUID  `gorm:"type:uuid;not null" json:"absence_type_id"`
	StartDate      time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time  `gorm:"type:date;not null" json:"end_date"`
	Status         string     `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	Comment        string     `gorm:"size:500" json:"comment"`
	DecisionReason string     `gorm:"size:500" json:"decision_reason"`
	DeciderID      *uuid.UUID `gorm:"type:uuid" json:"decider_id,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// TotalDays counts calendar days in the period, both ends inclusive.
func (r LeaveRequest) TotalDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

func (r LeaveRequest) IsTerminal() bool {
	return r.Status == StatusRejected || r.Status == StatusCancelled
}
