package middleware

import (
	"net/http"

	"kedai/internal/domain"

	"github.com/gin-gonic/gin"
)

// AdminRequired checks that the authenticated caller has the ADMIN role.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if r, _ := role.(string); !exists || r != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
