package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/models"
	"github.com/chaikart/teashop-api/pricing"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	ShippingAddressID string               `json:"shipping_address_id" binding:"required"`
	BillingAddressID  string               `json:"billing_address_id"`
	PaymentMethod     models.PaymentMethod `json:"payment_method" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoShippingAddress = errors.New("shipping address not found")
	ErrNoBillingAddress  = errors.New("billing address not found")
	ErrInvalidPayment    = errors.New("invalid payment method")
)

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// generateOrderNumber combines wall clock and a UUID so concurrent
// placements can never collide.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), uuid.NewString())
}

// -------- Core Logic --------

// PlaceOrder runs the whole checkout: validates the cart and addresses,
// snapshots line items at today's prices, then creates the order, its
// payment record, and clears the cart in one transaction. Either the
// order, payment, and empty cart all land together or none of them do.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, ErrInvalidPayment
	}

	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var shipping models.Address
	if err := db.Where("id = ? AND user_id = ?", req.ShippingAddressID, userID).
		First(&shipping).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoShippingAddress
		}
		return nil, err
	}

	billingID := req.BillingAddressID
	if billingID == "" {
		billingID = shipping.ID
	} else if billingID != shipping.ID {
		var billing models.Address
		if err := db.Where("id = ? AND user_id = ?", billingID, userID).
			First(&billing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNoBillingAddress
			}
			return nil, err
		}
	}

	totals := pricing.Compute(items)

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID:           item.ProductID,
			ProductName:         item.Product.Name,
			Quantity:            item.Quantity,
			PriceAtPurchase:     item.Product.Price,
			SalePriceAtPurchase: item.Product.SalePrice,
		})
	}
	// Cart rows whose product vanished from the catalog carry nothing to
	// buy; an order must have at least one real line.
	if len(orderItems) == 0 {
		return nil, ErrEmptyCart
	}

	order := models.Order{
		UserID:            userID,
		OrderNumber:       generateOrderNumber(),
		Items:             orderItems,
		Subtotal:          totals.Subtotal,
		TaxAmount:         totals.Tax,
		ShippingAmount:    totals.Shipping,
		TotalAmount:       totals.Total,
		BillingAddressID:  billingID,
		ShippingAddressID: shipping.ID,
		Status:            models.OrderStatusPending,
		PaymentStatus:     models.PaymentStatusPending,
		CreatedAt:         time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		payment := models.Payment{
			OrderID: order.ID,
			Amount:  order.TotalAmount,
			Method:  req.PaymentMethod,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /user/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart),
				errors.Is(err, ErrNoShippingAddress),
				errors.Is(err, ErrNoBillingAddress),
				errors.Is(err, ErrInvalidPayment):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.Preload("Items").Where("user_id = ?", userID).
			Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:orderID
// Users see only their own orders; admins see any.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Preload("Items").
			Where("id = ? OR order_number = ?", orderID, orderID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.UserID != c.GetString("user_id") && !c.GetBool("is_admin") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

// PUT /admin/orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("payment_status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", orderID).Delete(&models.Payment{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

// GET /admin/orders/:orderID/payments
func GetOrderPaymentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var payments []models.Payment
		if err := db.Where("order_id = ?", orderID).Order("created_at").
			Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}

		c.JSON(http.StatusOK, payments)
	}
}
