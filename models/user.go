package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"fashiontally-backend/tenancy"
	"fashiontally-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `json:"phone"`

	BusinessName string `json:"businessName"`
	Currency     string `gorm:"default:'NGN'" json:"currency"`

	// IsAdmin + InvitedBy together decide whose dataset this account
	// operates on. A non-empty InvitedBy on an admin account marks a
	// team member scoped to the inviter's tenant.
	IsAdmin   bool   `gorm:"default:false" json:"isAdmin"`
	InvitedBy string `gorm:"index" json:"invitedBy"`

	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	gorm.Model `json:"-"`
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// Account returns the identity view consumed by the tenancy resolver.
func (u *User) Account() *tenancy.Account {
	if u == nil {
		return nil
	}
	return &tenancy.Account{
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		InvitedBy: u.InvitedBy,
	}
}

// Custom JSONB type for measurements and other loose maps
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}

// StringArray stores a list of tags as a JSONB column.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *StringArray) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}
