package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/segment-editor/api/types"
)

// Get handles version requests
// @Summary      Version
// @Description  Service name and build version
// @Tags         health
// @Produce      json
// @Success      200 {object} object "Version information"
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	version := "dev"
	if deps != nil && deps.Version != "" {
		version = deps.Version
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Segment Editor API",
			"version":     version,
			"description": "Timeline segment editing and local draft buffering",
			"status":      "running",
		})
	}
}
