package types

import (
	"sync"

	"github.com/killallgit/segment-editor/internal/services/drafts"
)

// DraftStore serializes handler access to a shared drafts.Store
type DraftStore struct {
	mu    sync.Mutex
	store *drafts.Store
}

// NewDraftStore wraps store
func NewDraftStore(store *drafts.Store) *DraftStore {
	return &DraftStore{store: store}
}

// Do runs fn while holding the store lock
func (d *DraftStore) Do(fn func(s *drafts.Store)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.store)
}
