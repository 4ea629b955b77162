package balance

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTotalDays is granted when a balance row is created lazily for
// a user/year pair that has never been touched.
const DefaultTotalDays = 30

// LeaveBalance is the per-user, per-year ledger. UsedDays only moves
// through guarded single-statement updates so concurrent approvals
// cannot overdraw it.
type LeaveBalance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_balance_user_year" json:"user_id"`
	Year      int       `gorm:"not null;uniqueIndex:uq_balance_user_year" json:"year"`
	TotalDays int       `gorm:"not null;default:30" json:"total_days"`
	UsedDays  int       `gorm:"not null;default:0" json:"used_days"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

func (b LeaveBalance) AvailableDays() int {
	return b.TotalDays - b.UsedDays
}
