package types

import (
	"go.uber.org/zap"

	"github.com/killallgit/segment-editor/internal/database"
	"github.com/killallgit/segment-editor/internal/services/interaction"
	"github.com/killallgit/segment-editor/internal/services/segments"
	"github.com/killallgit/segment-editor/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	SegmentService segments.Service
	Drafts         *DraftStore
	Timeline       config.TimelineConfig
	WebSocket      config.WebSocketConfig
	Logger         *zap.Logger
	Version        string
}

// Log returns the handler logger, never nil
func (d *Dependencies) Log() *zap.Logger {
	if d == nil || d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// InteractionOptions builds interpreter options from the timeline settings
func (d *Dependencies) InteractionOptions(selectionMode bool) interaction.Options {
	opts := interaction.Options{SelectionMode: selectionMode, Logger: d.Log()}
	if d != nil {
		opts.HandlePx = d.Timeline.HandlePx
		opts.MinSegmentPx = d.Timeline.MinSegmentPx
		opts.SelectionThreshold = d.Timeline.SelectionThreshold
	}
	return opts
}

// ContainerWidth returns the configured track width in pixels, or fallback
func (d *Dependencies) ContainerWidth(fallback float64) float64 {
	if d != nil && d.Timeline.ContainerPx > 0 {
		return d.Timeline.ContainerPx
	}
	return fallback
}
