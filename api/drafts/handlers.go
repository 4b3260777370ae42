package drafts

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/segment-editor/api/types"
	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/internal/services/drafts"
)

func lastSaved(s *drafts.Store) string {
	if t, ok := s.LastSaved(); ok {
		return t.UTC().Format(drafts.TimestampLayout)
	}
	return ""
}

func validateInput(in models.DraftInput) error {
	for name, v := range map[string]float64{"start": in.Start, "end": in.End} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s must be a non-negative number of seconds", name)
		}
	}
	return nil
}

// ListAll returns the drafts of every media item
// @Summary      List all drafts
// @Description  Every staged annotation draft, keyed by media id
// @Tags         drafts
// @Produce      json
// @Success      200 {object} types.DraftBucketResponse
// @Router       /api/v1/drafts [get]
func ListAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resp types.DraftBucketResponse
		deps.Drafts.Do(func(s *drafts.Store) {
			bucket := s.DraftAnnotations()
			resp = types.DraftBucketResponse{
				BaseResponse:      types.BaseResponse{Status: types.StatusOK, Message: "Drafts retrieved"},
				Drafts:            bucket,
				Count:             bucket.Count(),
				HasUnsavedChanges: s.HasUnsavedChanges(),
				LastSaved:         lastSaved(s),
			}
		})
		c.JSON(http.StatusOK, resp)
	}
}

// ClearAll removes every draft
// @Summary      Clear all drafts
// @Tags         drafts
// @Produce      json
// @Success      200 {object} types.BaseResponse
// @Router       /api/v1/drafts [delete]
func ClearAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Drafts.Do(func(s *drafts.Store) {
			s.ClearAllDrafts(c.Request.Context())
		})
		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Drafts cleared"})
	}
}

// List returns the drafts of one media item
// @Summary      List drafts for media
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Media ID"
// @Success      200 {object} types.DraftsResponse
// @Router       /api/v1/media/{id}/drafts [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("id")
		var resp types.DraftsResponse
		deps.Drafts.Do(func(s *drafts.Store) {
			list := s.GetDraftsForVideo(mediaID)
			resp = types.DraftsResponse{
				BaseResponse:      types.BaseResponse{Status: types.StatusOK, Message: "Drafts retrieved"},
				MediaID:           mediaID,
				Drafts:            list,
				Count:             len(list),
				HasUnsavedChanges: s.HasUnsavedChanges(),
				LastSaved:         lastSaved(s),
			}
		})
		c.JSON(http.StatusOK, resp)
	}
}

// Save stages a draft for a media item. A draft with the id of an existing
// one replaces it and keeps its creation time.
// @Summary      Save draft
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id      path string            true "Media ID"
// @Param        draft   body models.DraftInput true "Draft"
// @Success      200 {object} types.DraftResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/media/{id}/drafts [put]
func Save(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.DraftInput
		if !types.BindJSONOrError(c, &in) {
			return
		}
		saveDraft(c, deps, in)
	}
}

// Update saves a draft under the id in the path
// @Summary      Update draft
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id       path string            true "Media ID"
// @Param        draftId  path string            true "Draft ID"
// @Param        draft    body models.DraftInput true "Draft"
// @Success      200 {object} types.DraftResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/media/{id}/drafts/{draftId} [put]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseSegmentIDParam(c, "draftId")
		if !ok {
			return
		}
		var in models.DraftInput
		if !types.BindJSONOrError(c, &in) {
			return
		}
		in.ID = id
		saveDraft(c, deps, in)
	}
}

func saveDraft(c *gin.Context, deps *types.Dependencies, in models.DraftInput) {
	if err := validateInput(in); err != nil {
		types.SendBadRequest(c, err.Error())
		return
	}

	var saved models.AnnotationDraft
	deps.Drafts.Do(func(s *drafts.Store) {
		saved = s.SaveDraft(c.Request.Context(), c.Param("id"), in)
	})
	c.JSON(http.StatusOK, types.DraftResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Draft saved"},
		Draft:        saved,
	})
}

// Remove deletes one draft
// @Summary      Remove draft
// @Tags         drafts
// @Produce      json
// @Param        id       path string true "Media ID"
// @Param        draftId  path string true "Draft ID"
// @Success      200 {object} types.BaseResponse
// @Failure      404 {object} types.ErrorResponse "Draft not found"
// @Router       /api/v1/media/{id}/drafts/{draftId} [delete]
func Remove(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseSegmentIDParam(c, "draftId")
		if !ok {
			return
		}

		var removed bool
		deps.Drafts.Do(func(s *drafts.Store) {
			removed = s.RemoveDraft(c.Request.Context(), c.Param("id"), id)
		})
		if !removed {
			types.SendNotFound(c, "Draft not found")
			return
		}
		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Draft removed"})
	}
}

// Clear removes the drafts of one media item
// @Summary      Clear drafts for media
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Media ID"
// @Success      200 {object} types.BaseResponse
// @Router       /api/v1/media/{id}/drafts [delete]
func Clear(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Drafts.Do(func(s *drafts.Store) {
			s.ClearDraftsForVideo(c.Request.Context(), c.Param("id"))
		})
		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Drafts cleared"})
	}
}

func segmentResponse(s *drafts.Store, message string) types.DraftSegmentResponse {
	resp := types.DraftSegmentResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: message},
		Active:       s.IsDraftActive(),
		Complete:     s.IsDraftComplete(),
	}
	if d, ok := s.Draft(); ok {
		resp.Draft = &d
	}
	return resp
}

// GetSegment reports the segment being drawn
// @Summary      Get draft segment
// @Tags         drafts
// @Produce      json
// @Param        id path string true "Media ID"
// @Success      200 {object} types.DraftSegmentResponse
// @Router       /api/v1/media/{id}/draft-segment [get]
func GetSegment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resp types.DraftSegmentResponse
		deps.Drafts.Do(func(s *drafts.Store) {
			resp = segmentResponse(s, "Draft segment retrieved")
		})
		c.JSON(http.StatusOK, resp)
	}
}

// PostSegment starts, ends, cancels or commits the segment being drawn.
// Commit stages it as an annotation draft of the media item in the path.
// @Summary      Drive draft segment
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id       path string                     true "Media ID"
// @Param        request  body types.DraftSegmentRequest  true "Action"
// @Success      200 {object} types.DraftSegmentResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      409 {object} types.ErrorResponse "No draft segment in the required state"
// @Router       /api/v1/media/{id}/draft-segment [post]
func PostSegment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.DraftSegmentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if req.Action == types.DraftSegmentStart && req.Label == "" {
			types.SendBadRequest(c, "label is required to start a draft segment")
			return
		}

		var (
			resp     types.DraftSegmentResponse
			conflict string
		)
		deps.Drafts.Do(func(s *drafts.Store) {
			switch req.Action {
			case types.DraftSegmentStart:
				s.StartDraft(req.Label, req.Time)
				resp = segmentResponse(s, "Draft segment started")
			case types.DraftSegmentEnd:
				if !s.UpdateDraftEnd(models.Float(req.Time)) {
					conflict = "No draft segment in progress"
					return
				}
				resp = segmentResponse(s, "Draft segment ended")
			case types.DraftSegmentCancel:
				s.CancelDraft()
				resp = segmentResponse(s, "Draft segment cancelled")
			case types.DraftSegmentCommit:
				committed, ok := s.CommitDraft(c.Request.Context(), c.Param("id"), req.Note)
				if !ok {
					conflict = "Draft segment is not complete"
					return
				}
				resp = segmentResponse(s, "Draft segment committed")
				resp.Committed = &committed
			}
		})
		if conflict != "" {
			c.JSON(http.StatusConflict, types.ErrorResponse{Status: types.StatusError, Error: conflict})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
