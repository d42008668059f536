// Package testutil provides the shared fixtures for handler tests: an
// isolated sqlite database, a fully wired router and factory helpers.
package testutil

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MansiS117/api-bookstore/auth"
	"github.com/MansiS117/api-bookstore/models"
	"github.com/MansiS117/api-bookstore/routes"
)

const TestPassword = "strong_password"

// NewTestDB opens a migrated sqlite database in the test's temp dir.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Category{},
		&models.Book{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// NewRouter wires the full route surface against the given database.
func NewRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, db)
	return r
}

// CreateUser inserts a user with TestPassword and the given role.
func CreateUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// Login issues a bearer token for the user, as POST /login would.
func Login(t *testing.T, db *gorm.DB, user *models.User) string {
	t.Helper()
	token, err := auth.IssueToken(db, user)
	require.NoError(t, err)
	return token
}

// CreateBook inserts a book owned by the seller at the given price.
func CreateBook(t *testing.T, db *gorm.DB, seller *models.User, title, price string) *models.Book {
	t.Helper()
	book := &models.Book{
		Title:       title,
		Author:      "Test Author",
		SellerID:    seller.ID,
		Price:       decimal.RequireFromString(price),
		IsAvailable: true,
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

// AddToCart puts the book into the buyer's cart, creating it if needed.
func AddToCart(t *testing.T, db *gorm.DB, buyer *models.User, book *models.Book, quantity int) *models.Cart {
	t.Helper()
	var cart models.Cart
	err := db.Where("buyer_id = ?", buyer.ID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{BuyerID: buyer.ID}
		require.NoError(t, db.Create(&cart).Error)
	} else {
		require.NoError(t, err)
	}
	require.NoError(t, db.Create(&models.CartItem{
		CartID:   cart.CartID,
		BookID:   book.ID,
		Quantity: quantity,
	}).Error)
	return &cart
}
