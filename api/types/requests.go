package types

import (
	"github.com/killallgit/segment-editor/internal/services/interaction"
)

// GestureRequest replays a batch of pointer and key messages
type GestureRequest struct {
	Width         float64               `json:"width,omitempty" example:"1000"` // Track width in pixels
	SelectionMode bool                  `json:"selection_mode,omitempty" example:"false"`
	Messages      []interaction.Message `json:"messages" binding:"required"`
}

// Draft segment actions
const (
	DraftSegmentStart  = "start"
	DraftSegmentEnd    = "end"
	DraftSegmentCancel = "cancel"
	DraftSegmentCommit = "commit"
)

// DraftSegmentRequest drives the segment currently being drawn
type DraftSegmentRequest struct {
	Action string  `json:"action" binding:"required,oneof=start end cancel commit" example:"start"`
	Label  string  `json:"label,omitempty" example:"polyp"`
	Time   float64 `json:"time,omitempty" binding:"gte=0" example:"12.5"` // Seconds
	Note   *string `json:"note,omitempty"`
}
