package bookControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MansiS117/api-bookstore/middleware"
	"github.com/MansiS117/api-bookstore/models"
)

type BookInput struct {
	Title       string          `json:"title" binding:"required"`
	Author      string          `json:"author"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	CategoryID  *uint           `json:"category_id"`
	IsAvailable *bool           `json:"is_available"`
}

// CreateBook adds a book owned by the authenticated seller. The seller is
// always the principal, never taken from the payload.
// POST /books
func CreateBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input BookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}

		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
				}
				return
			}
		}

		book := models.Book{
			Title:       input.Title,
			Author:      input.Author,
			SellerID:    sellerID,
			CategoryID:  input.CategoryID,
			Price:       input.Price,
			Description: input.Description,
			Image:       input.Image,
			IsAvailable: true,
		}
		if input.IsAvailable != nil {
			book.IsAvailable = *input.IsAvailable
		}

		if err := db.Create(&book).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
			return
		}

		c.JSON(http.StatusCreated, book)
	}
}
