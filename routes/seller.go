package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookControllers "github.com/MansiS117/api-bookstore/controllers/book"
	categoryControllers "github.com/MansiS117/api-bookstore/controllers/category"
	"github.com/MansiS117/api-bookstore/middleware"
)

// SetupSellerRoutes registers catalog management for sellers.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB) {
	seller := r.Group("/")
	seller.Use(middleware.ValidateToken(db), middleware.RequireSeller())
	{
		seller.POST("/books", bookControllers.CreateBook(db))
		seller.PUT("/books/:id", bookControllers.UpdateBook(db))
		seller.DELETE("/books/:id", bookControllers.DeleteBook(db))
		seller.GET("/books/export", bookControllers.ExportBooksToExcel(db))

		seller.POST("/categories", categoryControllers.CreateCategory(db))
		seller.DELETE("/categories/:id", categoryControllers.DeleteCategory(db))
	}
}
