package middleware

import (
	"net/http"
	"strings"

	"studyplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userID"

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  0,
	})
}

// JWTAuthUserMiddleware resolves the caller from a bearer token. Every planner
// operation is scoped to the user id stored under UserIDKey.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			zap.L().Debug("rejected bearer token", zap.Error(err))
			abortUnauthorized(c)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
