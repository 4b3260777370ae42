package types

import (
	"encoding/json"

	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/internal/services/geometry"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}

// MediaListResponse lists registered media
type MediaListResponse struct {
	BaseResponse
	Media []models.Media `json:"media"`
	Count int            `json:"count"`
}

// SnapshotResponse is the segment source view of one media item
type SnapshotResponse struct {
	BaseResponse
	Snapshot models.Snapshot `json:"snapshot"`
}

// TimelineResponse is a rendered timeline
type TimelineResponse struct {
	BaseResponse
	MediaID     string            `json:"video_id"`
	Width       float64           `json:"width"` // Track width in pixels
	Zoom        float64           `json:"zoom"`
	Layout      geometry.Layout   `json:"layout"`
	Markers     []geometry.Marker `json:"markers"`
	PlayheadPct float64           `json:"playhead_pct"`
	CurrentTime string            `json:"current_time"` // MM:SS
	Duration    string            `json:"duration_label"`
}

// GestureResponse carries the events emitted by a replayed gesture batch
type GestureResponse struct {
	BaseResponse
	Events  []json.RawMessage `json:"events"`  // {"type": ..., "payload": ...}
	Applied int               `json:"applied"` // Final edits written to storage
}

// DraftsResponse lists the drafts of one media item
type DraftsResponse struct {
	BaseResponse
	MediaID           string                   `json:"video_id"`
	Drafts            []models.AnnotationDraft `json:"drafts"`
	Count             int                      `json:"count"`
	HasUnsavedChanges bool                     `json:"has_unsaved_changes"`
	LastSaved         string                   `json:"last_saved,omitempty"`
}

// DraftResponse carries one saved draft
type DraftResponse struct {
	BaseResponse
	Draft models.AnnotationDraft `json:"draft"`
}

// DraftSegmentResponse reports the segment being drawn
type DraftSegmentResponse struct {
	BaseResponse
	Active    bool                    `json:"active"`
	Complete  bool                    `json:"complete"`
	Draft     *models.DraftSegment    `json:"draft,omitempty"`
	Committed *models.AnnotationDraft `json:"committed,omitempty"`
}

// DraftBucketResponse lists the drafts of every media item
type DraftBucketResponse struct {
	BaseResponse
	Drafts            models.DraftBucket `json:"drafts"`
	Count             int                `json:"count"`
	HasUnsavedChanges bool               `json:"has_unsaved_changes"`
	LastSaved         string             `json:"last_saved,omitempty"`
}
