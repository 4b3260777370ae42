package media

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/segment-editor/api/types"
	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/internal/services/segments"
)

// RegisterMedia creates or updates a media item
// @Summary      Register media
// @Description  Create a media item or update its title, duration and frame rate
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        media body models.Media true "Media data (id, duration)"
// @Success      201 {object} models.Media "Registered media"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/media [post]
func RegisterMedia(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m models.Media
		if !types.BindJSONOrError(c, &m) {
			return
		}

		if err := deps.SegmentService.RegisterMedia(c.Request.Context(), &m); err != nil {
			types.SendAppError(c, err, "Failed to register media")
			return
		}

		types.SendCreated(c, m)
	}
}

// ListMedia lists registered media
// @Summary      List media
// @Tags         media
// @Produce      json
// @Success      200 {object} types.MediaListResponse
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/media [get]
func ListMedia(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.SegmentService.ListMedia(c.Request.Context())
		if err != nil {
			types.SendAppError(c, err, "Failed to list media")
			return
		}
		if list == nil {
			list = []models.Media{}
		}

		c.JSON(http.StatusOK, types.MediaListResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Media retrieved"},
			Media:        list,
			Count:        len(list),
		})
	}
}

// GetSegments returns the segment snapshot of a media item
// @Summary      Get segments for media
// @Description  Media duration and its segments ordered by start time
// @Tags         segments
// @Produce      json
// @Param        id path string true "Media ID"
// @Success      200 {object} types.SnapshotResponse
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id}/segments [get]
func GetSegments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := deps.SegmentService.Snapshot(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendAppError(c, err, "Failed to retrieve segments")
			return
		}

		c.JSON(http.StatusOK, types.SnapshotResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Segments retrieved"},
			Snapshot:     snap,
		})
	}
}

// CreateSegment stores a new segment
// @Summary      Create segment
// @Description  Create a labeled time segment. Omitting end_time records an open segment.
// @Tags         segments
// @Accept       json
// @Produce      json
// @Param        id path string true "Media ID"
// @Param        segment body segments.CreateInput true "Segment data"
// @Success      201 {object} models.Segment "Created segment"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id}/segments [post]
func CreateSegment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in segments.CreateInput
		if !types.BindJSONOrError(c, &in) {
			return
		}

		seg, err := deps.SegmentService.CreateSegment(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			types.SendAppError(c, err, "Failed to create segment")
			return
		}

		types.SendCreated(c, seg)
	}
}
