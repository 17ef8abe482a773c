package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// All monetary values are stored in minor units (paise).
type Product struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	CategoryID   string    `gorm:"index;not null" json:"category_id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	Price        int64     `gorm:"not null" json:"price"`
	SalePrice    *int64    `json:"sale_price"`
	ImageURL     string    `gorm:"not null" json:"image_url"`
	Stock        int       `gorm:"default:0" json:"stock"`
	IsBestseller bool      `gorm:"default:false" json:"is_bestseller"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// EffectivePrice is the price a buyer actually pays for one unit.
func (p *Product) EffectivePrice() int64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
