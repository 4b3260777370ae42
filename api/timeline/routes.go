package timeline

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/segment-editor/api/types"
)

// RegisterRoutes registers timeline routes under /media
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id/timeline", GetTimeline(deps))
	router.GET("/:id/timeline/ws", Stream(deps))
	router.POST("/:id/gestures", PostGestures(deps))
}
