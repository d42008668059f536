package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MansiS117/api-bookstore/models"
)

// requireRole gates a route group on the authenticated principal's role.
// Runs after ValidateToken; the controllers never re-check the role.
func requireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if r, ok := v.(models.Role); !ok || r != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireBuyer() gin.HandlerFunc  { return requireRole(models.RoleBuyer) }
func RequireSeller() gin.HandlerFunc { return requireRole(models.RoleSeller) }
