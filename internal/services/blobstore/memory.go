package blobstore

import (
	"context"
	"sync"
	"sync/atomic"

	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

// MemoryStore keeps values in process memory with an optional byte quota.
// Writes that would exceed the quota fail with QUOTA_EXCEEDED instead of
// evicting, since the stored values are the only copy.
type MemoryStore struct {
	mu          sync.RWMutex
	items       map[string][]byte
	maxSize     int64
	currentSize int64
	stats       Stats
}

// NewMemoryStore creates a memory store. maxBytes <= 0 means unlimited.
func NewMemoryStore(maxBytes int64) *MemoryStore {
	return &MemoryStore{
		items:   make(map[string][]byte),
		maxSize: maxBytes,
	}
}

// Get retrieves a copy of the stored value
func (ms *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	atomic.AddInt64(&ms.stats.Gets, 1)

	ms.mu.RLock()
	value, exists := ms.items[key]
	ms.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&ms.stats.Misses, 1)
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set stores a copy of value
func (ms *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	size := int64(len(key) + len(value))

	ms.mu.Lock()
	defer ms.mu.Unlock()

	var oldSize int64
	if old, exists := ms.items[key]; exists {
		oldSize = int64(len(key) + len(old))
	}
	if ms.maxSize > 0 && ms.currentSize-oldSize+size > ms.maxSize {
		return apperrors.New(apperrors.ErrCodeQuotaExceeded, "storage quota exceeded").
			WithDetail("key", key).
			WithDetail("size", size).
			WithDetail("max_size", ms.maxSize)
	}

	ms.items[key] = append([]byte(nil), value...)
	ms.currentSize += size - oldSize
	atomic.AddInt64(&ms.stats.Sets, 1)
	return nil
}

// Delete removes a value
func (ms *MemoryStore) Delete(ctx context.Context, key string) error {
	ms.mu.Lock()
	if value, exists := ms.items[key]; exists {
		delete(ms.items, key)
		ms.currentSize -= int64(len(key) + len(value))
		atomic.AddInt64(&ms.stats.Deletes, 1)
	}
	ms.mu.Unlock()
	return nil
}

// Close is a no-op
func (ms *MemoryStore) Close() error {
	return nil
}

// Stats returns store statistics
func (ms *MemoryStore) Stats() Stats {
	ms.mu.RLock()
	size := ms.currentSize
	ms.mu.RUnlock()

	return Stats{
		Gets:    atomic.LoadInt64(&ms.stats.Gets),
		Misses:  atomic.LoadInt64(&ms.stats.Misses),
		Sets:    atomic.LoadInt64(&ms.stats.Sets),
		Deletes: atomic.LoadInt64(&ms.stats.Deletes),
		Size:    size,
		MaxSize: ms.maxSize,
	}
}
