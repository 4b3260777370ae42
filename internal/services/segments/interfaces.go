package segments

import (
	"context"

	"github.com/killallgit/segment-editor/internal/models"
)

// Repository defines the interface for segment data access
type Repository interface {
	// Media operations
	SaveMedia(ctx context.Context, media *models.Media) error
	GetMedia(ctx context.Context, id string) (*models.Media, error)
	ListMedia(ctx context.Context) ([]models.Media, error)

	// Segment operations
	CreateSegment(ctx context.Context, record *models.SegmentRecord) error
	GetSegment(ctx context.Context, id uint) (*models.SegmentRecord, error)
	ListSegments(ctx context.Context, mediaID string) ([]models.SegmentRecord, error)
	UpdateSegment(ctx context.Context, record *models.SegmentRecord) error
	DeleteSegment(ctx context.Context, id uint) error
}

// Service defines the segment source the timeline renders from and applies
// committed edits to
type Service interface {
	RegisterMedia(ctx context.Context, media *models.Media) error
	ListMedia(ctx context.Context) ([]models.Media, error)

	// Snapshot returns the media duration and its segments ordered by start
	Snapshot(ctx context.Context, mediaID string) (models.Snapshot, error)

	CreateSegment(ctx context.Context, mediaID string, in CreateInput) (models.Segment, error)

	// Apply persists a final move, a final resize or a delete. It reports
	// false for events that do not mutate stored segments.
	Apply(ctx context.Context, mediaID string, event models.Event) (bool, error)
}

// CreateInput holds the fields of a new segment. A nil End records an open
// segment.
type CreateInput struct {
	Label      string   `json:"label" binding:"required"`
	StartTime  float64  `json:"start_time"`
	EndTime    *float64 `json:"end_time"`
	Confidence *float64 `json:"confidence,omitempty"`
}
