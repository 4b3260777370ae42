// Package drafts stages annotations locally before they are saved to the
// backend. A Store owns two independent pieces of state: the single segment
// currently being drawn, and a bucket of annotation drafts per media item
// that is written through to a Persister on every change.
//
// A Store is not safe for concurrent use; callers that share one across
// goroutines must serialize access.
package drafts

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/killallgit/segment-editor/internal/models"
	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

// Store holds the draft segment and the draft bucket
type Store struct {
	persister Persister
	log       *zap.Logger
	now       func() time.Time

	draft     *models.DraftSegment
	bucket    models.DraftBucket
	lastSaved *time.Time
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger for persistence diagnostics
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty store. Call Init to hydrate it from persister.
func NewStore(persister Persister, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		log:       zap.NewNop(),
		now:       time.Now,
		bucket:    models.DraftBucket{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("drafts")
	return s
}

// Init resets in-memory state and loads the persisted bucket
func (s *Store) Init(ctx context.Context) {
	s.Reset()
	s.LoadFromStorage(ctx)
}

// Reset clears all in-memory state without touching storage
func (s *Store) Reset() {
	s.draft = nil
	s.bucket = models.DraftBucket{}
	s.lastSaved = nil
}

// StartDraft begins a new draft segment, discarding any previous one
func (s *Store) StartDraft(label string, start float64) {
	s.draft = &models.DraftSegment{Label: label, Start: start}
}

// UpdateDraftEnd sets the end of the active draft segment. A nil end puts the
// draft back in progress. It reports false when no draft is active.
func (s *Store) UpdateDraftEnd(end *float64) bool {
	if s.draft == nil {
		return false
	}
	if end == nil {
		s.draft.End = nil
		return true
	}
	s.draft.End = models.Float(*end)
	return true
}

// CancelDraft discards the draft segment
func (s *Store) CancelDraft() {
	s.draft = nil
}

// Draft returns a copy of the draft segment
func (s *Store) Draft() (models.DraftSegment, bool) {
	if s.draft == nil {
		return models.DraftSegment{}, false
	}
	d := *s.draft
	if d.End != nil {
		d.End = models.Float(*d.End)
	}
	return d, true
}

// IsDraftActive reports whether a draft segment exists
func (s *Store) IsDraftActive() bool {
	return s.draft != nil
}

// IsDraftComplete reports whether the draft segment has an end
func (s *Store) IsDraftComplete() bool {
	return s.draft != nil && s.draft.End != nil
}

// CommitDraft turns a complete draft segment into an annotation draft for
// mediaID and clears the draft segment.
func (s *Store) CommitDraft(ctx context.Context, mediaID string, note *string) (models.AnnotationDraft, bool) {
	if s.draft == nil {
		return models.AnnotationDraft{}, false
	}
	start, end, ok := s.draft.Interval()
	if !ok {
		return models.AnnotationDraft{}, false
	}
	saved := s.SaveDraft(ctx, mediaID, models.DraftInput{
		ID:    models.NewTempID(),
		Label: s.draft.Label,
		Start: start,
		End:   end,
		Note:  note,
	})
	s.draft = nil
	return saved, true
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(TimestampLayout)
}

// SaveDraft upserts an annotation draft by id and writes the bucket through.
// An input without id gets a fresh temporary id; an inverted interval is
// reordered. The stored entry is returned.
func (s *Store) SaveDraft(ctx context.Context, mediaID string, in models.DraftInput) models.AnnotationDraft {
	id := in.ID
	if id.IsZero() {
		id = models.NewTempID()
	}
	start, end := in.Start, in.End
	if end < start {
		start, end = end, start
	}

	ts := s.timestamp()
	entry := models.AnnotationDraft{
		ID:        id,
		Label:     in.Label,
		Start:     start,
		End:       end,
		IsDraft:   true,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if in.Note != nil {
		note := *in.Note
		entry.Note = &note
	}

	list := s.bucket[mediaID]
	replaced := false
	for i := range list {
		if list[i].ID == id {
			entry.CreatedAt = list[i].CreatedAt
			list[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, entry)
	}
	s.bucket[mediaID] = list

	now := s.now()
	s.lastSaved = &now
	s.persist(ctx, "save", mediaID)
	return entry.Clone()
}

// RemoveDraft deletes one draft. The media entry stays as an empty list.
// It reports whether a draft was removed.
func (s *Store) RemoveDraft(ctx context.Context, mediaID string, id models.SegmentID) bool {
	list, ok := s.bucket[mediaID]
	if !ok {
		return false
	}
	kept := make([]models.AnnotationDraft, 0, len(list))
	for _, d := range list {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(list) {
		return false
	}
	s.bucket[mediaID] = kept
	s.persist(ctx, "remove", mediaID)
	return true
}

// GetDraftsForVideo returns a copy of the drafts for mediaID, never nil
func (s *Store) GetDraftsForVideo(mediaID string) []models.AnnotationDraft {
	list := s.bucket[mediaID]
	out := make([]models.AnnotationDraft, len(list))
	for i, d := range list {
		out[i] = d.Clone()
	}
	return out
}

// ClearDraftsForVideo empties the drafts of one media item
func (s *Store) ClearDraftsForVideo(ctx context.Context, mediaID string) {
	if _, ok := s.bucket[mediaID]; !ok {
		return
	}
	s.bucket[mediaID] = []models.AnnotationDraft{}
	s.persist(ctx, "clear", mediaID)
}

// ClearAllDrafts empties the bucket and forgets the last save time
func (s *Store) ClearAllDrafts(ctx context.Context) {
	s.bucket = models.DraftBucket{}
	s.lastSaved = nil
	s.persist(ctx, "clear_all", "")
}

// DraftAnnotations returns a deep copy of the bucket
func (s *Store) DraftAnnotations() models.DraftBucket {
	return s.bucket.Clone()
}

// MediaIDs returns the media ids present in the bucket, sorted
func (s *Store) MediaIDs() []string {
	ids := make([]string, 0, len(s.bucket))
	for id := range s.bucket {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HasUnsavedChanges reports whether any media item has staged drafts
func (s *Store) HasUnsavedChanges() bool {
	for _, list := range s.bucket {
		if len(list) > 0 {
			return true
		}
	}
	return false
}

// LastSaved returns the time of the last SaveDraft
func (s *Store) LastSaved() (time.Time, bool) {
	if s.lastSaved == nil {
		return time.Time{}, false
	}
	return *s.lastSaved, true
}

// LoadFromStorage replaces the bucket with the persisted one. Absent or
// unreadable data leaves an empty bucket; errors are logged, not returned.
func (s *Store) LoadFromStorage(ctx context.Context) {
	if s.persister == nil {
		s.bucket = models.DraftBucket{}
		return
	}

	bucket, err := s.persister.Load(ctx)
	if err != nil {
		s.bucket = models.DraftBucket{}
		if apperrors.Is(err, apperrors.ErrCodeMalformedData) {
			s.log.Error("discarding malformed drafts",
				zap.String("key", s.persister.Key()),
				zap.Error(err))
			return
		}
		s.log.Error("failed to load drafts",
			zap.String("key", s.persister.Key()),
			zap.Error(err))
		return
	}
	if bucket == nil {
		bucket = models.DraftBucket{}
	}
	s.bucket = bucket
	s.log.Debug("drafts loaded",
		zap.String("key", s.persister.Key()),
		zap.Int("media", len(bucket)),
		zap.Int("drafts", bucket.Count()))
}

// persist writes the bucket through. Failures keep the in-memory state.
func (s *Store) persist(ctx context.Context, op, mediaID string) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.bucket.Clone()); err != nil {
		fields := []zap.Field{
			zap.String("op", op),
			zap.String("key", s.persister.Key()),
			zap.String("code", string(apperrors.GetCode(err))),
			zap.Error(err),
		}
		if mediaID != "" {
			fields = append(fields, zap.String("media_id", mediaID))
		}
		if apperrors.Is(err, apperrors.ErrCodeQuotaExceeded) {
			s.log.Error("draft storage is full, keeping drafts in memory", fields...)
			return
		}
		s.log.Error("failed to persist drafts", fields...)
	}
}
