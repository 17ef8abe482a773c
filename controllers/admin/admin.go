package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/models"
	"github.com/chaikart/teashop-api/storage"
)

// CategoryGroup is one row of the admin products view: a category and
// every product under it.
type CategoryGroup struct {
	Category models.Category  `json:"category"`
	Products []models.Product `json:"products"`
}

// GET /admin/products/grouped
// Returns the full catalog grouped by category in one pass. Products whose
// category row no longer exists land in a trailing "uncategorized" bucket
// so the table never silently hides them.
func GetGroupedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		byCategory := make(map[string][]models.Product, len(categories))
		for _, p := range products {
			byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
		}

		groups := make([]CategoryGroup, 0, len(categories)+1)
		for _, cat := range categories {
			groups = append(groups, CategoryGroup{
				Category: cat,
				Products: byCategory[cat.ID],
			})
			delete(byCategory, cat.ID)
		}

		var orphans []models.Product
		for _, leftover := range byCategory {
			orphans = append(orphans, leftover...)
		}
		if len(orphans) > 0 {
			groups = append(groups, CategoryGroup{
				Category: models.Category{Name: "uncategorized"},
				Products: orphans,
			})
		}

		c.JSON(http.StatusOK, groups)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Select("id", "email", "name", "phone", "is_admin", "created_at").
			Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// POST /admin/uploads
// Accepts a multipart image and returns its public URL, for forms that
// store an image_url instead of sending the file inline.
func UploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
			return
		}

		subdir := c.DefaultPostForm("folder", "misc")
		url, err := storage.SaveImage(c.Request.Context(), file, subdir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image: " + err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}
