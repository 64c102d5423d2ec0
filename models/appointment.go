package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserEmail string    `gorm:"index;not null" json:"userEmail"`

	ClientName  string    `gorm:"not null" json:"clientName"`
	ClientPhone string    `json:"clientPhone"`
	Date        time.Time `gorm:"not null" json:"date"`
	Time        string    `json:"time"`
	Purpose     string    `json:"purpose"`
	Duration    int       `gorm:"default:30" json:"duration"` // minutes
	Status      string    `gorm:"type:varchar(20);default:'Scheduled'" json:"status"` // Scheduled, Completed, Cancelled
	Location    string    `json:"location"`

	gorm.Model `json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
