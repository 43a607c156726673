package middleware

import (
	"net/http"
	"strings"

	"coachify/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards admin endpoints with the static bearer
// token from config. Token issuance and rotation live outside this
// service.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if config.AppConfig.AdminToken == "" || tokenString != config.AppConfig.AdminToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
