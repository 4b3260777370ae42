package media

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/segment-editor/api/types"
)

// RegisterRoutes registers media and segment routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", RegisterMedia(deps))
	router.GET("", ListMedia(deps))
	router.GET("/:id/segments", GetSegments(deps))
	router.POST("/:id/segments", CreateSegment(deps))
}
