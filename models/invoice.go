package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Invoice struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserEmail string    `gorm:"index;not null" json:"userEmail"`

	InvoiceNumber string `gorm:"uniqueIndex;not null" json:"invoiceNumber"`

	ClientID    *uuid.UUID `gorm:"type:uuid;index" json:"clientId"`
	ClientName  string     `gorm:"not null" json:"clientName"`
	ClientEmail string     `json:"clientEmail"`
	ClientPhone string     `json:"clientPhone"`

	// Subtotal, DiscountAmount, TaxAmount and Amount are computed once
	// at write time and never recomputed on read, so stored invoices
	// keep their historical figures even if prices change later.
	Subtotal        float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DiscountPercent float64 `gorm:"type:decimal(5,2);default:0.0" json:"discountPercent"`
	DiscountAmount  float64 `gorm:"type:decimal(10,2);default:0.0" json:"discountAmount"`
	TaxRatePercent  float64 `gorm:"type:decimal(5,2);default:0.0" json:"taxRatePercent"`
	TaxAmount       float64 `gorm:"type:decimal(10,2);default:0.0" json:"taxAmount"`
	Amount          float64 `gorm:"type:decimal(10,2);not null" json:"amount"`

	Status      string     `gorm:"type:varchar(20);default:'Unpaid'" json:"status"` // Paid, Unpaid, PartiallyPaid
	PaidAmount  float64    `gorm:"type:decimal(10,2);default:0.0" json:"paidAmount"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedDate time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"createdDate"`
	Notes       string     `json:"notes"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`

	gorm.Model `json:"-"`
}

type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoiceId"`

	Description string  `gorm:"not null" json:"description"`
	Quantity    int     `gorm:"default:1" json:"quantity"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	// Optional link to a stock item; set when the line should draw
	// down inventory on invoice creation.
	InventoryItemID *uuid.UUID `gorm:"type:uuid;index" json:"inventoryItemId"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return
}
