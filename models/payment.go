package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodWallet:
		return true
	}
	return false
}

// Payment is a bookkeeping record only; no gateway is charged.
type Payment struct {
	ID        string        `gorm:"primaryKey" json:"id"`
	OrderID   string        `gorm:"index;not null" json:"order_id"`
	Amount    int64         `gorm:"not null" json:"amount"`
	Method    PaymentMethod `gorm:"type:VARCHAR(20);not null" json:"payment_method"`
	CreatedAt time.Time     `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
