package middleware

import (
	"net/http"
	"strings"

	"github.com/aszxazs-a11y/aboutleesanbang/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const AdminTokenCookie = "admin_token"

// AdminAuth guards the administrative surface. The token is carried in a
// cookie for the server-rendered screens and may also be supplied as a
// bearer header for the JSON API.
func AdminAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AdminTokenCookie)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString == "" {
			rejectAdmin(c)
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil || claims.Role != "admin" {
			rejectAdmin(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func rejectAdmin(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/admin/api") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		c.Abort()
		return
	}
	c.Redirect(http.StatusFound, "/admin/login")
	c.Abort()
}
