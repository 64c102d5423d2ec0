package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserEmail string    `gorm:"index;not null" json:"userEmail"`

	Name         string `gorm:"not null" json:"name"`
	SKU          string `gorm:"index" json:"sku"`
	Category     string `gorm:"default:'General'" json:"category"`
	SupplierName string `json:"supplierName"`

	Quantity     int     `gorm:"default:0" json:"quantity"`
	Unit         string  `gorm:"default:'pcs'" json:"unit"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	ReorderPoint int     `gorm:"default:5" json:"reorderPoint"`

	// Status is reclassified from Quantity and ReorderPoint on every
	// write, never on read.
	Status string `gorm:"type:varchar(20);default:'In Stock'" json:"status"`

	gorm.Model `json:"-"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
