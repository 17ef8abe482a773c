package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/cache"
	"github.com/chaikart/teashop-api/models"
)

type UpdateProductInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	SalePrice   *int64  `json:"sale_price"`
	// ClearSalePrice removes the sale price entirely; a JSON null in
	// sale_price is indistinguishable from the field being absent.
	ClearSalePrice bool    `json:"clear_sale_price"`
	ImageURL       *string `json:"image_url"`
	Stock          *int    `json:"stock"`
	IsBestseller   *bool   `json:"is_bestseller"`
	CategoryID     *string `json:"category_id"`
}

// UpdateProduct applies a partial update; only the fields present in the
// body change.
func UpdateProduct(db *gorm.DB, store *cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			if *input.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
				return
			}
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
				return
			}
			product.Price = *input.Price
		}
		if input.ClearSalePrice {
			product.SalePrice = nil
		} else if input.SalePrice != nil {
			if *input.SalePrice < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "sale_price must not be negative"})
				return
			}
			product.SalePrice = input.SalePrice
		}
		if product.SalePrice != nil && *product.SalePrice >= product.Price {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sale_price must be lower than price"})
			return
		}
		if input.ImageURL != nil {
			if *input.ImageURL == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "image_url must not be empty"})
				return
			}
			product.ImageURL = *input.ImageURL
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock must not be negative"})
				return
			}
			product.Stock = *input.Stock
		}
		if input.IsBestseller != nil {
			product.IsBestseller = *input.IsBestseller
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = category.ID
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		store.Notify(cache.EventProductWrite)
		c.JSON(http.StatusOK, product)
	}
}
