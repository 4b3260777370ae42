package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/segment-editor/api/drafts"
	"github.com/killallgit/segment-editor/api/health"
	"github.com/killallgit/segment-editor/api/media"
	"github.com/killallgit/segment-editor/api/timeline"
	"github.com/killallgit/segment-editor/api/types"
	"github.com/killallgit/segment-editor/api/version"
	_ "github.com/killallgit/segment-editor/docs/swagger"
	"github.com/killallgit/segment-editor/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limits config.RateLimitConfig, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("dependencies are nil")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")
	if limits.Enabled && limits.RequestsPerSecond > 0 {
		v1.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, limits.RequestsPerSecond, limits.Burst))
	}

	if deps.SegmentService != nil {
		mediaGroup := v1.Group("/media")
		media.RegisterRoutes(mediaGroup, deps)
		timeline.RegisterRoutes(mediaGroup, deps)
	}

	if deps.Drafts != nil {
		drafts.RegisterMediaRoutes(v1.Group("/media"), deps)
		drafts.RegisterRoutes(v1.Group("/drafts"), deps)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
