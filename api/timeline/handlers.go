package timeline

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/segment-editor/api/types"
	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/internal/services/geometry"
	"github.com/killallgit/segment-editor/internal/services/interaction"
	"github.com/killallgit/segment-editor/pkg/timescale"
)

// defaultWidth is the track width used when neither the request nor the
// configuration names one.
const defaultWidth = 1000.0

// GetTimeline renders the timeline of a media item
// @Summary      Render timeline
// @Description  Label rows with segment boxes, time markers and playhead position
// @Tags         timeline
// @Produce      json
// @Param        id       path  string  true   "Media ID"
// @Param        width    query number  false  "Track width in pixels"
// @Param        zoom     query number  false  "Zoom level, 1 to 5"
// @Param        selected query string  false  "Label whose rows come first"
// @Param        now      query number  false  "Current playback time in seconds"
// @Success      200 {object} types.TimelineResponse
// @Failure      400 {object} types.ErrorResponse "Invalid query"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id}/timeline [get]
func GetTimeline(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		width, ok := types.ParseFloatQuery(c, "width", deps.ContainerWidth(defaultWidth))
		if !ok {
			return
		}
		zoomLevel, ok := types.ParseFloatQuery(c, "zoom", geometry.MinZoom)
		if !ok {
			return
		}
		now, ok := types.ParseFloatQuery(c, "now", 0)
		if !ok {
			return
		}

		snap, err := deps.SegmentService.Snapshot(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendAppError(c, err, "Failed to load timeline")
			return
		}

		zoom := geometry.NewZoom(zoomLevel)
		layout := geometry.Build(snap, geometry.Options{
			SelectedLabel: c.Query("selected"),
			Now:           timescale.SafeTime(now, false, 0),
			Logger:        deps.Log(),
		})
		markers := geometry.Markers(snap.Duration, zoom)
		if markers == nil {
			markers = []geometry.Marker{}
		}

		c.JSON(http.StatusOK, types.TimelineResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Timeline rendered"},
			MediaID:      snap.MediaID,
			Width:        width,
			Zoom:         float64(zoom),
			Layout:       layout,
			Markers:      markers,
			PlayheadPct:  geometry.PlayheadPercent(now, snap.Duration),
			CurrentTime:  timescale.FormatTime(now),
			Duration:     timescale.FormatTime(snap.Duration),
		})
	}
}

// PostGestures replays a batch of pointer messages
// @Summary      Replay gestures
// @Description  Run pointer and key messages through a fresh interpreter and return the emitted events. With apply=true final edits are written to storage.
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        id      path  string                true   "Media ID"
// @Param        apply   query bool                  false  "Persist final move, resize and delete events"
// @Param        request body  types.GestureRequest  true   "Gesture messages"
// @Success      200 {object} types.GestureResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Media not found"
// @Router       /api/v1/media/{id}/gestures [post]
func PostGestures(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.GestureRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		ctx := c.Request.Context()
		mediaID := c.Param("id")
		snap, err := deps.SegmentService.Snapshot(ctx, mediaID)
		if err != nil {
			types.SendAppError(c, err, "Failed to load timeline")
			return
		}

		width := req.Width
		if width <= 0 {
			width = deps.ContainerWidth(defaultWidth)
		}
		events, err := interaction.Replay(snap, width, deps.InteractionOptions(req.SelectionMode), req.Messages)
		if err != nil {
			types.SendBadRequest(c, err.Error())
			return
		}

		applied := 0
		if c.Query("apply") == "true" {
			applied, err = applyFinals(ctx, deps, mediaID, events)
			if err != nil {
				types.SendAppError(c, err, "Failed to apply gesture")
				return
			}
		}

		encoded, err := encodeEvents(events)
		if err != nil {
			types.SendInternalError(c, "Failed to encode events")
			return
		}

		c.JSON(http.StatusOK, types.GestureResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Gestures replayed"},
			Events:       encoded,
			Applied:      applied,
		})
	}
}

// applyFinals writes the final edits among events to the segment service
func applyFinals(ctx context.Context, deps *types.Dependencies, mediaID string, events []models.Event) (int, error) {
	applied := 0
	for _, ev := range events {
		if !models.IsFinal(ev) {
			continue
		}
		ok, err := deps.SegmentService.Apply(ctx, mediaID, ev)
		if err != nil {
			deps.Log().Warn("failed to apply timeline event",
				zap.String("media_id", mediaID),
				zap.String("event", string(ev.Kind())),
				zap.Error(err))
			return applied, err
		}
		if ok {
			applied++
		}
	}
	return applied, nil
}

func encodeEvents(events []models.Event) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(events))
	for _, ev := range events {
		data, err := models.MarshalEvent(ev)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}
