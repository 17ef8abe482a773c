package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/cache"
	"github.com/chaikart/teashop-api/models"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// GetAllCategories lists categories ordered by name, served through the
// query cache.
func GetAllCategories(db *gorm.DB, store *cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cached, ok := store.Get(cache.KeyCategories); ok {
			c.JSON(http.StatusOK, cached)
			return
		}

		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		store.Set(cache.KeyCategories, categories)
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory(db *gorm.DB, store *cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			Name:        input.Name,
			Description: input.Description,
			ImageURL:    input.ImageURL,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		store.Notify(cache.EventCategoryWrite)
		c.JSON(http.StatusCreated, category)
	}
}

func UpdateCategory(db *gorm.DB, store *cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category.Name = input.Name
		category.Description = input.Description
		category.ImageURL = input.ImageURL

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		store.Notify(cache.EventCategoryWrite)
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory refuses to delete a category that still has products.
// Orphaning products behind a vanished category is never allowed.
func DeleteCategory(db *gorm.DB, store *cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var count int64
		if err := db.Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category usage"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Category still has products; move or delete them first"})
			return
		}

		result := db.Delete(&models.Category{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		store.Notify(cache.EventCategoryWrite)
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
