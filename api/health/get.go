package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/segment-editor/api/types"
	"github.com/killallgit/segment-editor/internal/services/drafts"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service status, database connectivity and draft buffer state
// @Tags         health
// @Produce      json
// @Success      200 {object} object "Service is healthy"
// @Failure      503 {object} object "Database is unreachable"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		// Add database status
		dbStatus := getDatabaseStatus(deps)
		response["database"] = dbStatus
		if dbStatus["status"] == "unhealthy" {
			status = http.StatusServiceUnavailable
			response["status"] = "unhealthy"
		}

		if deps != nil && deps.Drafts != nil {
			deps.Drafts.Do(func(s *drafts.Store) {
				response["drafts"] = gin.H{
					"media":               len(s.MediaIDs()),
					"has_unsaved_changes": s.HasUnsavedChanges(),
				}
			})
		}

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
