package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/MansiS117/api-bookstore/controllers/auth"
	userControllers "github.com/MansiS117/api-bookstore/controllers/user"
	"github.com/MansiS117/api-bookstore/middleware"
)

// SetupAuthRoutes registers registration, login/logout and the profile.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", authControllers.Register(db))
	r.POST("/login", authControllers.Login(db))

	authed := r.Group("/")
	authed.Use(middleware.ValidateToken(db))
	{
		authed.POST("/logout", authControllers.Logout(db))
		authed.GET("/me", userControllers.GetUser(db))
		authed.PUT("/me", userControllers.UpdateUser(db))
	}
}
