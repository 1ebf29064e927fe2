package middleware

import (
	"net/http"

	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/types"
	"github.com/gin-gonic/gin"
)

func ModeratorOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		if claims.Role != string(models.UserRoleModerator) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "moderators only"})
			return
		}

		c.Next()
	}
}
