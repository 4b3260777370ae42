package drafts

import (
	"context"

	"github.com/killallgit/segment-editor/internal/models"
)

// Persister defines the interface for durable draft storage
type Persister interface {
	// Load reads the persisted bucket. An absent record yields an empty
	// bucket and no error; an unreadable record yields a MALFORMED_DATA error.
	Load(ctx context.Context) (models.DraftBucket, error)

	// Save replaces the persisted bucket
	Save(ctx context.Context, bucket models.DraftBucket) error

	// Key names the persisted record, for diagnostics
	Key() string
}
