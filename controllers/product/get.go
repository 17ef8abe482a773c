package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/cache"
	"github.com/chaikart/teashop-api/models"
)

// GetProducts lists the catalog, optionally filtered by ?category_id=.
// List results are served from the query cache until a product or
// category mutation invalidates them.
func GetProducts(db *gorm.DB, store *cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Query("category_id")

		key := cache.KeyProducts
		if categoryID != "" {
			key = cache.KeyProductsByCategory(categoryID)
		}
		if cached, ok := store.Get(key); ok {
			c.JSON(http.StatusOK, cached)
			return
		}

		query := db.Model(&models.Product{})
		if categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		store.Set(key, products)
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
