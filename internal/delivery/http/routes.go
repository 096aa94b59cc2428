package http

import (
	"github.com/gin-gonic/gin"
	"github.com/pantrypal/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	if cfg.RateLimit.PerIP > 0 {
		router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	}

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		query := v1.Group("/query")
		{
			query.POST("/correct", handler.CorrectQuery)
			query.POST("/expand", handler.ExpandQuery)
			query.POST("/enhance", handler.EnhanceQuery)
		}

		recipes := v1.Group("/recipes")
		{
			recipes.POST("/search", handler.SearchRecipes)
		}
	}

	return router
}
