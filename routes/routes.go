package routes

import (
	"net/http"
	"time"

	"voyago/handlers"
	"voyago/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTravelRoutes registers the travel concierge endpoints.
func RegisterTravelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/travel")
	{
		api.POST("/query", hb.QueryHandler)
		api.GET("/history/:sessionID", hb.HistoryHandler)
		api.DELETE("/history/:sessionID", hb.ClearHistoryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm Voyago",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterUIRoutes serves the chat web UI.
func RegisterUIRoutes(r *gin.Engine) {
	r.StaticFile("/", "./web/index.html")
	r.StaticFile("/app.js", "./web/app.js")
	r.StaticFile("/style.css", "./web/style.css")
}

// RegisterRoutes sets up global middleware and mounts every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"X-Session-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUIRoutes(r)
	RegisterTravelRoutes(r, hb)
}
