package auth

import (
	"net/http"
	"strings"

	"campusconnect/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated account id.
const ContextUserID = "userID"

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware rejects requests without a valid Bearer token.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is required", "error": "unauthorized"})
			return
		}

		userID, err := jwt.ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token", "error": "unauthorized"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
