package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/cache"
	"github.com/chaikart/teashop-api/models"
)

// DeleteProduct removes a product from the catalog, along with any cart
// lines still pointing at it.
func DeleteProduct(db *gorm.DB, store *cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var deleted int64
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			result := tx.Delete(&models.Product{}, "id = ?", id)
			if result.Error != nil {
				return result.Error
			}
			deleted = result.RowsAffected
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if deleted == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		store.Notify(cache.EventProductWrite)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
