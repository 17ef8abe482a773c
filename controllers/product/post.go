package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/cache"
	"github.com/chaikart/teashop-api/models"
	"github.com/chaikart/teashop-api/storage"
)

// CreateProduct creates a product from a multipart form. The image comes
// either as an "image" file upload or a pre-uploaded "image_url".
// Prices are in paise.
func CreateProduct(db *gorm.DB, store *cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		categoryID := c.PostForm("category_id")
		if name == "" || priceStr == "" || categoryID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and category_id are required"})
			return
		}

		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var salePrice *int64
		if s := c.PostForm("sale_price"); s != "" {
			sp, err := strconv.ParseInt(s, 10, 64)
			if err != nil || sp < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_price"})
				return
			}
			if sp >= price {
				c.JSON(http.StatusBadRequest, gin.H{"error": "sale_price must be lower than price"})
				return
			}
			salePrice = &sp
		}

		stock := 0
		if s := c.PostForm("stock"); s != "" {
			stock, err = strconv.Atoi(s)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		isBestseller := c.PostForm("is_bestseller") == "true"

		var category models.Category
		if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			return
		}

		imageURL := c.PostForm("image_url")
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = storage.SaveImage(c.Request.Context(), file, "products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image: " + err.Error()})
				return
			}
		}
		if imageURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		product := models.Product{
			CategoryID:   category.ID,
			Name:         name,
			Description:  c.PostForm("description"),
			Price:        price,
			SalePrice:    salePrice,
			ImageURL:     imageURL,
			Stock:        stock,
			IsBestseller: isBestseller,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		store.Notify(cache.EventProductWrite)
		c.JSON(http.StatusCreated, product)
	}
}
