package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth + catalog routes (no middleware)
	SetupAuthRoutes(r, db)
	SetupCatalogRoutes(r, db)

	// Buyer routes (JWT + buyer role)
	SetupBuyerRoutes(r, db)

	// Seller routes (JWT + seller role)
	SetupSellerRoutes(r, db)
}
