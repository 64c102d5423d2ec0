package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserEmail string    `gorm:"index;not null" json:"userEmail"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `json:"email"`
	Phone   string `gorm:"not null" json:"phone"`
	Address string `json:"address"`
	Status  string `gorm:"type:varchar(20);default:'Active'" json:"status"` // Active, Inactive
	Notes   string `json:"notes"`

	TotalSpent  float64 `gorm:"type:decimal(10,2);default:0.0" json:"totalSpent"`
	TotalOrders int     `gorm:"default:0" json:"totalOrders"`

	gorm.Model `json:"-"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
