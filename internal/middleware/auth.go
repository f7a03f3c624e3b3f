package middleware

import (
	"net/http"
	"strings"

	"kedai/config"
	"kedai/internal/auth"

	"github.com/gin-gonic/gin"
)

// TokenCookie carries the admin access token for the HTML admin pages.
const TokenCookie = "admin_token"

// AuthRequired validates the JWT from the Authorization header (API) or the
// admin cookie (HTML pages) and sets admin_id, email and role in context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errMsg := bearerOrCookie(c)
		if token == "" {
			abortUnauthorized(c, errMsg)
			return
		}
		claims, err := auth.ParseAccessToken(cfg, token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}
		c.Set("admin_id", claims.AdminID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

func bearerOrCookie(c *gin.Context) (string, string) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", "invalid authorization format"
		}
		return parts[1], ""
	}
	if v, err := c.Cookie(TokenCookie); err == nil && v != "" {
		return v, ""
	}
	return "", "missing authorization header"
}

// abortUnauthorized answers JSON for API calls and redirects browsers to the login page.
func abortUnauthorized(c *gin.Context, msg string) {
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, "/admin/login")
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func wantsHTML(c *gin.Context) bool {
	return !strings.HasPrefix(c.Request.URL.Path, "/api/") &&
		strings.Contains(c.GetHeader("Accept"), "text/html")
}

// GetAdminID returns the authenticated admin ID from context (must be used after AuthRequired).
func GetAdminID(c *gin.Context) uint {
	v, _ := c.Get("admin_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}
