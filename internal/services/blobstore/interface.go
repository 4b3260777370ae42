// Package blobstore persists named opaque values. Every backend offers the
// same contract: Get on an absent key reports ok=false with no error.
package blobstore

import (
	"context"
)

// Store defines the interface for blob storage backends
type Store interface {
	// Get retrieves a value. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores a value, replacing any previous one
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources
	Close() error
}

// Stats provides statistics about store usage
type Stats struct {
	Gets    int64 `json:"gets"`
	Misses  int64 `json:"misses"`
	Sets    int64 `json:"sets"`
	Deletes int64 `json:"deletes"`
	Size    int64 `json:"size"`
	MaxSize int64 `json:"max_size"`
}

// StatsProvider interface for stores that provide statistics
type StatsProvider interface {
	Stats() Stats
}
