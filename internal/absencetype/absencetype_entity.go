package absencetype

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsenceType classifies a leave request and decides whether approved
// days are deducted from the requester's balance.
type AbsenceType struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string         `gorm:"size:100;not null;uniqueIndex:uq_absence_type_name" json:"name"`
	ColorHex       string         `gorm:"size:7;not null;default:'#34D399'" json:"color_hex"`
	DeductsBalance bool           `gorm:"not null;default:true" json:"deducts_balance"`
	Description    string         `gorm:"size:255" json:"description"`
	Active         bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AbsenceType) TableName() string {
	return "absence_types"
}
