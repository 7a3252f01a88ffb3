package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selivandex/news-agent/internal/adapters/config"
)

// NewServer creates the HTTP server with all routes configured
func NewServer(handler *Handler, cfg *config.ServerConfig) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "News Recommendation Agent",
			"endpoints": map[string]string{
				"preferences":     "POST /api/preferences (requires X-API-Key header)",
				"recommendations": "GET /api/recommendations?user_id=<id> (requires X-API-Key header)",
				"health":          "GET /health",
			},
		})
	})

	// Each route carries its own limiter; writes are throttled harder
	// than reads.
	protected := r.Group("/api")
	protected.Use(authMiddleware(cfg.APIKey))
	{
		protected.POST("/preferences", rateLimitMiddleware(cfg.PreferencesRateLimit), handler.ReceivePreferences)
		protected.GET("/recommendations", rateLimitMiddleware(cfg.RecommendationsRateLimit), handler.GetRecommendations)
	}

	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
