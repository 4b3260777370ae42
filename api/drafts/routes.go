package drafts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/segment-editor/api/types"
)

// RegisterMediaRoutes registers per-media draft routes under /media
func RegisterMediaRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id/drafts", List(deps))
	router.PUT("/:id/drafts", Save(deps))
	router.DELETE("/:id/drafts", Clear(deps))
	router.PUT("/:id/drafts/:draftId", Update(deps))
	router.DELETE("/:id/drafts/:draftId", Remove(deps))
	router.GET("/:id/draft-segment", GetSegment(deps))
	router.POST("/:id/draft-segment", PostSegment(deps))
}

// RegisterRoutes registers bucket-wide draft routes under /drafts
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListAll(deps))
	router.DELETE("", ClearAll(deps))
}
