package drafts

import (
	"context"

	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/internal/services/blobstore"
	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

// BlobPersister keeps the whole draft bucket as one JSON record in a blob store
type BlobPersister struct {
	store blobstore.Store
	key   string
}

// NewBlobPersister creates a persister writing to key in store
func NewBlobPersister(store blobstore.Store, key string) *BlobPersister {
	return &BlobPersister{store: store, key: key}
}

// Key returns the record name
func (p *BlobPersister) Key() string {
	return p.key
}

// Load reads and validates the persisted bucket
func (p *BlobPersister) Load(ctx context.Context) (models.DraftBucket, error) {
	data, ok, err := p.store.Get(ctx, p.key)
	if err != nil {
		return nil, apperrors.PersistenceError(p.key, err)
	}
	if !ok || len(data) == 0 {
		return models.DraftBucket{}, nil
	}

	bucket, err := Decode(data)
	if err != nil {
		return nil, apperrors.MalformedData(p.key, err.Error(), err)
	}
	return bucket, nil
}

// Save encodes and writes the bucket
func (p *BlobPersister) Save(ctx context.Context, bucket models.DraftBucket) error {
	data, err := Encode(bucket)
	if err != nil {
		return apperrors.PersistenceError(p.key, err)
	}
	if err := p.store.Set(ctx, p.key, data); err != nil {
		return apperrors.PersistenceError(p.key, err)
	}
	return nil
}

// Raw returns the persisted record as stored, without validation
func (p *BlobPersister) Raw(ctx context.Context) ([]byte, bool, error) {
	data, ok, err := p.store.Get(ctx, p.key)
	if err != nil {
		return nil, false, apperrors.PersistenceError(p.key, err)
	}
	return data, ok, nil
}

// Purge deletes the persisted record
func (p *BlobPersister) Purge(ctx context.Context) error {
	if err := p.store.Delete(ctx, p.key); err != nil {
		return apperrors.PersistenceError(p.key, err)
	}
	return nil
}
