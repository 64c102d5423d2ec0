package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Transaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserEmail string    `gorm:"index;not null" json:"userEmail"`

	Description string     `gorm:"not null" json:"description"`
	Amount      float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Type        string     `gorm:"type:varchar(10);not null" json:"type"` // Income, Expense
	Category    string     `gorm:"default:'General'" json:"category"`
	Date        *time.Time `json:"date"` // legacy date field on imported records

	gorm.Model `json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// IsIncome reports whether the transaction adds to revenue.
func (t *Transaction) IsIncome() bool {
	return t.Type == "Income"
}
