package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Amounts are in minor units (paise).
type Order struct {
	ID                string        `gorm:"primaryKey" json:"id"`
	UserID            string        `gorm:"index;not null" json:"user_id"`
	OrderNumber       string        `gorm:"unique;not null" json:"order_number"`
	Items             []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal          int64         `json:"subtotal"`
	TaxAmount         int64         `json:"tax_amount"`
	ShippingAmount    int64         `json:"shipping_amount"`
	TotalAmount       int64         `json:"total_amount"`
	BillingAddressID  string        `gorm:"not null" json:"billing_address_id"`
	ShippingAddressID string        `gorm:"not null" json:"shipping_address_id"`
	Status            OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus     PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt         time.Time     `json:"created_at"`
}

// OrderItem freezes the product's name and price at purchase time so later
// catalog edits never change historical orders.
type OrderItem struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	OrderID             string `gorm:"index;not null" json:"order_id"`
	ProductID           string `gorm:"not null" json:"product_id"`
	ProductName         string `gorm:"not null" json:"product_name"`
	Quantity            int    `gorm:"not null" json:"quantity"`
	PriceAtPurchase     int64  `json:"price_at_purchase"`
	SalePriceAtPurchase *int64 `json:"sale_price_at_purchase"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
