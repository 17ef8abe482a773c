package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignUp(db))
		authGroup.POST("/signin", auth.SignIn(db))
		authGroup.POST("/admin-signin", auth.AdminSignIn(db))
	}
}
