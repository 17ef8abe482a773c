package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chaikart/teashop-api/cache"
)

// SetupRoutes is the single entry point that wires up the Auth, Shop,
// User, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *cache.Store) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog browsing
	SetupShopRoutes(r, db, store)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db, store)
}
