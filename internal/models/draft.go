package models

// DraftSegment is the single segment currently being drawn. End is nil while
// the pointer is still down.
type DraftSegment struct {
	Label string   `json:"label"`
	Start float64  `json:"start"`
	End   *float64 `json:"end"`
}

// Complete reports whether the draft has an end time.
func (d DraftSegment) Complete() bool {
	return d.End != nil
}

// Interval returns the draft as an ordered interval. ok is false while the
// draft is incomplete.
func (d DraftSegment) Interval() (start, end float64, ok bool) {
	if d.End == nil {
		return 0, 0, false
	}
	start, end = d.Start, *d.End
	if end < start {
		start, end = end, start
	}
	return start, end, true
}

// AnnotationDraft is an annotation staged locally until it is explicitly
// saved to the backend. Timestamps are ISO-8601 strings.
type AnnotationDraft struct {
	ID        SegmentID `json:"id"`
	Label     string    `json:"label" validate:"required"`
	Start     float64   `json:"start" validate:"gte=0"`
	End       float64   `json:"end" validate:"gtefield=Start"`
	Note      *string   `json:"note,omitempty"`
	IsDraft   bool      `json:"isDraft"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// Clone returns a copy that shares no memory with the receiver.
func (a AnnotationDraft) Clone() AnnotationDraft {
	if a.Note != nil {
		note := *a.Note
		a.Note = &note
	}
	return a
}

// DraftInput carries the caller-provided fields of an AnnotationDraft.
type DraftInput struct {
	ID    SegmentID `json:"id"`
	Label string    `json:"label" binding:"required"`
	Start float64   `json:"start"`
	End   float64   `json:"end"`
	Note  *string   `json:"note,omitempty"`
}

// DraftBucket maps a media id to its drafts in creation order.
type DraftBucket map[string][]AnnotationDraft

// Clone returns a deep copy of the bucket. A nil bucket clones to an empty one.
func (b DraftBucket) Clone() DraftBucket {
	out := make(DraftBucket, len(b))
	for mediaID, list := range b {
		cp := make([]AnnotationDraft, len(list))
		for i, d := range list {
			cp[i] = d.Clone()
		}
		out[mediaID] = cp
	}
	return out
}

// Count returns the number of drafts across all media.
func (b DraftBucket) Count() int {
	n := 0
	for _, list := range b {
		n += len(list)
	}
	return n
}
