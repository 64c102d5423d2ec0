package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserEmail string    `gorm:"index;not null" json:"userEmail"`

	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"default:'General'" json:"category"`
	Status   string `gorm:"type:varchar(20);default:'Active'" json:"status"` // Active, Archived

	// Price is the total (base + additional items), BalanceDue is
	// price - depositPaid. Both are computed when the order is written
	// and trusted verbatim on read.
	BasePrice   float64 `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DepositPaid float64 `gorm:"type:decimal(10,2);default:0.0" json:"depositPaid"`
	BalanceDue  float64 `gorm:"type:decimal(10,2);default:0.0" json:"balanceDue"`

	DueDate *time.Time `json:"dueDate"`

	ClientID    *uuid.UUID `gorm:"type:uuid;index" json:"clientId"`
	ClientName  string     `json:"clientName"`
	ClientEmail string     `json:"clientEmail"`
	ClientPhone string     `json:"clientPhone"`

	Measurements JSONB `gorm:"type:jsonb;default:'{}'" json:"measurements"`

	AdditionalItems []OrderItem `gorm:"foreignKey:OrderID" json:"additionalItems"`

	gorm.Model `json:"-"`
}

type OrderItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;index;not null" json:"orderId"`
	Name    string    `gorm:"not null" json:"name"`
	Price   float64   `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
