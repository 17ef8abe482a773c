package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Address struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"index;not null" json:"user_id"`
	FullName      string    `gorm:"not null" json:"full_name"`
	StreetAddress string    `gorm:"not null" json:"street_address"`
	City          string    `gorm:"not null" json:"city"`
	State         string    `gorm:"not null" json:"state"`
	PostalCode    string    `gorm:"not null" json:"postal_code"`
	Phone         string    `gorm:"not null" json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
