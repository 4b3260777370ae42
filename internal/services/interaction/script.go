package interaction

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/internal/services/geometry"
)

// Action names an input message.
type Action string

const (
	ActionDown      Action = "down"
	ActionMove      Action = "move"
	ActionUp        Action = "up"
	ActionCancel    Action = "cancel"
	ActionKey       Action = "key"
	ActionPlayPause Action = "play-pause"
	ActionPlay      Action = "play"
	ActionEdit      Action = "edit"
	ActionDelete    Action = "delete"
	ActionSelection Action = "selection-mode"
)

// Message is one serialized input, as read from a replay file or a
// websocket client.
type Message struct {
	Action    Action  `json:"action"`
	PointerID int     `json:"pointer_id,omitempty"`
	OffsetX   float64 `json:"offset_x,omitempty"`

	// Target pins the press target. When nil and Row is set, the target is
	// found by hit testing that row; otherwise the press lands on the track.
	Target *Target `json:"target,omitempty"`
	Row    *int    `json:"row,omitempty"`

	Key       string           `json:"key,omitempty"`
	Editable  bool             `json:"editable,omitempty"`
	SegmentID models.SegmentID `json:"segment_id,omitempty"`
	Enabled   bool             `json:"enabled,omitempty"`
}

// Dispatch feeds one message to the interpreter. Layout is consulted only
// for hit testing and may be nil when messages carry explicit targets.
func (in *Interpreter) Dispatch(msg Message, layout *geometry.Layout) error {
	ev := PointerEvent{PointerID: msg.PointerID, OffsetX: msg.OffsetX}

	switch msg.Action {
	case ActionDown:
		in.PointerDown(ev, in.resolveTarget(msg, layout))
	case ActionMove:
		in.PointerMove(ev)
	case ActionUp:
		in.PointerUp(ev)
	case ActionCancel:
		in.PointerCancel(msg.PointerID)
	case ActionKey:
		in.KeyDown(msg.Key, msg.Editable)
	case ActionPlayPause:
		in.PlayPause()
	case ActionPlay:
		in.PlaySegment(msg.SegmentID)
	case ActionEdit:
		in.EditSegment(msg.SegmentID)
	case ActionDelete:
		in.DeleteSelected()
	case ActionSelection:
		in.SetSelectionMode(msg.Enabled)
	default:
		return fmt.Errorf("unknown action %q", msg.Action)
	}
	return nil
}

func (in *Interpreter) resolveTarget(msg Message, layout *geometry.Layout) Target {
	if msg.Target != nil {
		return *msg.Target
	}
	if msg.Row != nil && layout != nil {
		return HitTest(*layout, *msg.Row, msg.OffsetX, in.widthPx, in.opts.HandlePx)
	}
	return Track()
}

// Replay runs a sequence of messages against a fresh interpreter over the
// given snapshot and returns every event emitted, in order. Any gesture
// still open after the last message is aborted.
func Replay(snapshot models.Snapshot, widthPx float64, opts Options, msgs []Message) ([]models.Event, error) {
	rec := &Recorder{}
	in := NewInterpreter(rec, opts)
	in.SetSnapshot(snapshot)
	in.SetWidth(widthPx)

	layout := geometry.Build(snapshot, geometry.Options{Logger: opts.Logger})
	for i, msg := range msgs {
		if err := in.Dispatch(msg, &layout); err != nil {
			return rec.Events(), fmt.Errorf("message %d: %w", i, err)
		}
	}
	in.Abort()
	return rec.Events(), nil
}

// Script is a recorded interaction session: the timeline it ran against and
// the messages it received.
type Script struct {
	Snapshot      models.Snapshot `json:"snapshot"`
	Width         float64         `json:"width"`
	SelectionMode bool            `json:"selection_mode,omitempty"`
	Messages      []Message       `json:"messages"`
}

// LoadScript decodes a script from r
func LoadScript(r io.Reader) (Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	if !s.Snapshot.HasMedia() {
		return Script{}, fmt.Errorf("script has no snapshot")
	}
	return s, nil
}

// Run replays the script. opts.SelectionMode is set from the script when
// the script asks for it.
func (s Script) Run(opts Options) ([]models.Event, error) {
	if s.SelectionMode {
		opts.SelectionMode = true
	}
	return Replay(s.Snapshot, s.Width, opts, s.Messages)
}
