package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/cache"
	productcontroller "github.com/chaikart/teashop-api/controllers/product"
)

// SetupShopRoutes registers the public catalog endpoints behind "/shop".
func SetupShopRoutes(r *gin.Engine, db *gorm.DB, store *cache.Store) {
	shop := r.Group("/shop")
	{
		shop.GET("/categories", productcontroller.GetAllCategories(db, store))
		shop.GET("/products", productcontroller.GetProducts(db, store))
		shop.GET("/products/:id", productcontroller.GetProductByID(db))
	}
}
