package handlers

import (
	"studyplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the logger stored on the gin context, or the global one,
// tagged with the route and the authenticated user.
func getLogger(c *gin.Context) *zap.Logger {
	logger := utils.GetLogger()
	if l, exists := c.Get("logger"); exists {
		if scoped, ok := l.(*zap.Logger); ok {
			logger = scoped
		}
	}
	return logger.With(zap.String("route", c.FullPath()), zap.String("userId", c.GetString("userID")))
}
