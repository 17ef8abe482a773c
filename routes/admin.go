package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/cache"
	adminController "github.com/chaikart/teashop-api/controllers/admin"
	orderControllers "github.com/chaikart/teashop-api/controllers/order"
	productcontroller "github.com/chaikart/teashop-api/controllers/product"
	"github.com/chaikart/teashop-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an admin JWT.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store *cache.Store) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", adminController.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, store))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, store))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, store))
			productAdmin.GET("/grouped", adminController.GetGroupedProducts(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db, store))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db, store))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db, store))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/feed", orderControllers.OrderFeedHandler)
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
			orderAdmin.GET("/:orderID/payments", orderControllers.GetOrderPaymentsHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Image Uploads ───────────
		adminGroup.POST("/uploads", adminController.UploadImage())
	}
}
