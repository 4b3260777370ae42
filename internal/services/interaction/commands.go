package interaction

import (
	"go.uber.org/zap"

	"github.com/killallgit/segment-editor/internal/models"
)

// Keys that delete the active segment.
const (
	KeyDelete    = "Delete"
	KeyBackspace = "Backspace"
)

// KeyDown handles a key press. Delete and Backspace remove the active
// segment unless focus is in an editable field. It reports whether an event
// was emitted.
func (in *Interpreter) KeyDown(key string, editableTarget bool) bool {
	if editableTarget {
		return false
	}
	switch key {
	case KeyDelete, KeyBackspace:
		return in.DeleteSelected()
	default:
		return false
	}
}

// DeleteSelected emits segment-delete for the active segment and clears the
// selection.
func (in *Interpreter) DeleteSelected() bool {
	if in.activeID.IsZero() {
		return false
	}
	seg, ok := in.snapshot.Find(in.activeID)
	in.activeID = models.SegmentID{}
	if !ok {
		return false
	}
	in.sink.Emit(models.SegmentDelete{Segment: seg})
	return true
}

// PlaySegment seeks to the start of a segment and toggles playback.
func (in *Interpreter) PlaySegment(id models.SegmentID) bool {
	seg, ok := in.snapshot.Find(id)
	if !ok {
		return false
	}
	if !in.snapshot.HasMedia() || !in.valid() {
		in.log.Debug("suppressing play on unusable timeline",
			zap.String("segment_id", id.String()))
		return false
	}
	in.sink.Emit(models.Seek{Time: seg.StartTime})
	in.sink.Emit(models.PlayPause{})
	return true
}

// EditSegment asks the caller to open a segment for editing.
func (in *Interpreter) EditSegment(id models.SegmentID) bool {
	seg, ok := in.snapshot.Find(id)
	if !ok {
		return false
	}
	in.sink.Emit(models.SegmentEdit{Segment: seg})
	return true
}

// PlayPause toggles playback. Suppressed when no media is loaded.
func (in *Interpreter) PlayPause() bool {
	if !in.snapshot.HasMedia() {
		in.log.Debug("suppressing play-pause without media")
		return false
	}
	in.sink.Emit(models.PlayPause{})
	return true
}
