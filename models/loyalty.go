package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoyaltyMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserEmail string    `gorm:"index;not null" json:"userEmail"`

	Name  string `gorm:"not null" json:"name"`
	Email string `json:"email"`

	Level      string      `gorm:"type:varchar(20);default:'Bronze'" json:"level"` // Bronze, Silver, Gold, Platinum
	Points     int         `gorm:"default:0" json:"points"`
	TotalSpent float64     `gorm:"type:decimal(10,2);default:0.0" json:"totalSpent"`
	Tags       StringArray `gorm:"type:jsonb;default:'[]'" json:"tags"`

	LastActivity *time.Time `json:"lastActivity"`

	gorm.Model `json:"-"`
}

func (m *LoyaltyMember) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
