package bookControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MansiS117/api-bookstore/models"
)

const defaultPageSize = 10

// GetBooks returns the public catalog, optionally filtered by a search term
// matching title, author, description or category name.
// GET /books?search=...&page=...&page_size=...
func GetBooks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
		if pageSize < 1 || pageSize > 100 {
			pageSize = defaultPageSize
		}

		query := db.Model(&models.Book{}).Preload("Category")

		if search := c.Query("search"); search != "" {
			// LOWER on both sides keeps matching case-insensitive on
			// Postgres and sqlite alike.
			like := "%" + search + "%"
			query = query.
				Joins("LEFT JOIN categories ON categories.id = books.category_id").
				Where("LOWER(books.title) LIKE LOWER(?) OR LOWER(books.author) LIKE LOWER(?) OR LOWER(books.description) LIKE LOWER(?) OR LOWER(categories.name) LIKE LOWER(?)",
					like, like, like, like)
		}

		var total int64
		if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
			return
		}

		var books []models.Book
		if err := query.
			Order("books.id").
			Limit(pageSize).
			Offset((page - 1) * pageSize).
			Find(&books).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"count":   total,
			"page":    page,
			"results": books,
		})
	}
}
