// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserEmail     string    `gorm:"index;not null" json:"userEmail"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null" json:"appointmentId"`

	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"type:varchar(20)" json:"status"`  // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"errorMessage"`
	Channel      string    `gorm:"type:varchar(20)" json:"channel"` // whatsapp, sms
	SentAt       time.Time `json:"sentAt"`

	gorm.Model `json:"-"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
