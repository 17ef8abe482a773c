package addressControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/models"
)

type AddressInput struct {
	FullName      string `json:"full_name" binding:"required"`
	StreetAddress string `json:"street_address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
}

// GET /user/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var addresses []models.Address
		if err := db.Where("user_id = ?", userID).Order("created_at DESC").
			Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}

		c.JSON(http.StatusOK, addresses)
	}
}

// POST /user/addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address := models.Address{
			UserID:        userID,
			FullName:      input.FullName,
			StreetAddress: input.StreetAddress,
			City:          input.City,
			State:         input.State,
			PostalCode:    input.PostalCode,
			Phone:         input.Phone,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}

		c.JSON(http.StatusCreated, address)
	}
}
