package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/chaikart/teashop-api/controllers/address"
	cartControllers "github.com/chaikart/teashop-api/controllers/cart"
	orderControllers "github.com/chaikart/teashop-api/controllers/order"
	userControllers "github.com/chaikart/teashop-api/controllers/user"
	"github.com/chaikart/teashop-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Addresses ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("/", addressControllers.GetAddresses(db))
			addressGroup.POST("/", addressControllers.CreateAddress(db))
		}

		// ──────────────── Checkout & Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/", orderControllers.PlaceOrderHandler(db))
			orderGroup.GET("/", orderControllers.GetUserOrdersHandler(db))
			orderGroup.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
		}
	}
}
