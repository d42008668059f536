package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookControllers "github.com/MansiS117/api-bookstore/controllers/book"
	categoryControllers "github.com/MansiS117/api-bookstore/controllers/category"
)

// SetupCatalogRoutes registers the public, read-only catalog endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/books", bookControllers.GetBooks(db))
	r.GET("/books/:id", bookControllers.GetBookByID(db))
	r.GET("/categories", categoryControllers.GetCategories(db))
	r.GET("/categories/:id", categoryControllers.GetCategoryByID(db))
}
