package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserEmail string    `gorm:"index;not null" json:"userEmail"`

	ClientName  string `gorm:"not null" json:"clientName"`
	ClientEmail string `json:"clientEmail"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `gorm:"type:text" json:"comment"`
	Reply   string `gorm:"type:text" json:"reply"`

	ProductName   string `json:"productName"`
	OrderNumber   string `json:"orderNumber"`
	InvoiceNumber string `json:"invoiceNumber"`

	Status   string `gorm:"type:varchar(20);default:'New'" json:"status"`
	IsPublic bool   `gorm:"default:false" json:"isPublic"`

	gorm.Model `json:"-"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
