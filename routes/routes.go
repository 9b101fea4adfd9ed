package routes

import (
	"net/http"
	"time"

	"studyplanner/handlers"
	"studyplanner/middleware"
	"studyplanner/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHomeworkRoutes registers homework and free-days endpoints.
func RegisterHomeworkRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/homework")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("", hb.CreateHomeworkHandler)
		api.GET("", hb.ListHomeworkHandler)
		api.POST("/free-days/:pageNumber", hb.FreeDaysHandler)
	}
}

// RegisterWeekRoutes registers the weekly template and day override endpoints.
func RegisterWeekRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/week", hb.GetWeekHandler)
		api.PUT("/week", hb.SaveWeekHandler)
		api.DELETE("/days/:date", hb.ResetDayHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHomeworkRoutes(r, hb)
	RegisterWeekRoutes(r, hb)
	RegisterHealthRoute(r)
}
