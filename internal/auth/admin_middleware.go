package auth

import (
	"net/http"

	"campusconnect/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminMiddleware creates a gin middleware to check for admin role.
// It must be used AFTER the standard AuthMiddleware.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			// This should not happen if AuthMiddleware is used before it
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated", "error": "unauthorized"})
			return
		}

		var acc models.Account
		if err := db.WithContext(c.Request.Context()).First(&acc, "id = ?", userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authenticated user not found", "error": "unauthorized"})
			return
		}

		if acc.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required", "error": "forbidden"})
			return
		}

		c.Next()
	}
}
