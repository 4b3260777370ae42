package models

import (
	"encoding/json"
	"fmt"
)

// EventKind names an event emitted by the timeline.
type EventKind string

const (
	EventSeek          EventKind = "seek"
	EventTimeSelection EventKind = "time-selection"
	EventSegmentSelect EventKind = "segment-select"
	EventSegmentDelete EventKind = "segment-delete"
	EventSegmentEdit   EventKind = "segment-edit"
	EventSegmentMove   EventKind = "segment-move"
	EventSegmentResize EventKind = "segment-resize"
	EventPlayPause     EventKind = "play-pause"
)

// ResizeEdge is the edge a resize gesture moves.
type ResizeEdge string

const (
	EdgeStart ResizeEdge = "start"
	EdgeEnd   ResizeEdge = "end"
)

// Event is one of the timeline event variants below. The set is closed:
// only types in this package implement it, so a type switch over the
// variants is exhaustive.
type Event interface {
	Kind() EventKind
	isEvent()
}

// Seek asks the player to jump to Time.
type Seek struct {
	Time float64 `json:"time"`
}

// TimeSelection is a completed range-select gesture.
type TimeSelection struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// SegmentSelect reports that a segment was picked.
type SegmentSelect struct {
	Segment Segment `json:"segment"`
}

// SegmentDelete asks the caller to delete a segment.
type SegmentDelete struct {
	Segment Segment `json:"segment"`
}

// SegmentEdit asks the caller to open a segment for editing.
type SegmentEdit struct {
	Segment Segment `json:"segment"`
}

// SegmentMove carries the interval of a segment being moved. Final is set
// only on the last event of the gesture.
type SegmentMove struct {
	ID    SegmentID `json:"id"`
	Start float64   `json:"start"`
	End   float64   `json:"end"`
	Final bool      `json:"final"`
}

// SegmentResize carries the interval of a segment being resized.
type SegmentResize struct {
	ID    SegmentID  `json:"id"`
	Start float64    `json:"start"`
	End   float64    `json:"end"`
	Edge  ResizeEdge `json:"mode"`
	Final bool       `json:"final"`
}

// PlayPause toggles playback.
type PlayPause struct{}

func (Seek) Kind() EventKind          { return EventSeek }
func (TimeSelection) Kind() EventKind { return EventTimeSelection }
func (SegmentSelect) Kind() EventKind { return EventSegmentSelect }
func (SegmentDelete) Kind() EventKind { return EventSegmentDelete }
func (SegmentEdit) Kind() EventKind   { return EventSegmentEdit }
func (SegmentMove) Kind() EventKind   { return EventSegmentMove }
func (SegmentResize) Kind() EventKind { return EventSegmentResize }
func (PlayPause) Kind() EventKind     { return EventPlayPause }

func (Seek) isEvent()          {}
func (TimeSelection) isEvent() {}
func (SegmentSelect) isEvent() {}
func (SegmentDelete) isEvent() {}
func (SegmentEdit) isEvent()   {}
func (SegmentMove) isEvent()   {}
func (SegmentResize) isEvent() {}
func (PlayPause) isEvent()     {}

// IsFinal reports whether e ends a gesture. Events without a live phase are
// always final.
func IsFinal(e Event) bool {
	switch ev := e.(type) {
	case SegmentMove:
		return ev.Final
	case SegmentResize:
		return ev.Final
	default:
		return true
	}
}

// EventEnvelope is the wire form of an Event: {"type": kind, "payload": {...}}.
type EventEnvelope struct {
	Type    EventKind       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MarshalEvent encodes an event into its envelope form.
func MarshalEvent(e Event) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", e.Kind(), err)
	}
	return json.Marshal(EventEnvelope{Type: e.Kind(), Payload: payload})
}

// UnmarshalEvent decodes an envelope back into its variant.
func UnmarshalEvent(data []byte) (Event, error) {
	var env EventEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding event envelope: %w", err)
	}

	var target Event
	switch env.Type {
	case EventSeek:
		var ev Seek
		if err := decodePayload(env.Payload, &ev); err != nil {
			return nil, err
		}
		target = ev
	case EventTimeSelection:
		var ev TimeSelection
		if err := decodePayload(env.Payload, &ev); err != nil {
			return nil, err
		}
		target = ev
	case EventSegmentSelect:
		var ev SegmentSelect
		if err := decodePayload(env.Payload, &ev); err != nil {
			return nil, err
		}
		target = ev
	case EventSegmentDelete:
		var ev SegmentDelete
		if err := decodePayload(env.Payload, &ev); err != nil {
			return nil, err
		}
		target = ev
	case EventSegmentEdit:
		var ev SegmentEdit
		if err := decodePayload(env.Payload, &ev); err != nil {
			return nil, err
		}
		target = ev
	case EventSegmentMove:
		var ev SegmentMove
		if err := decodePayload(env.Payload, &ev); err != nil {
			return nil, err
		}
		target = ev
	case EventSegmentResize:
		var ev SegmentResize
		if err := decodePayload(env.Payload, &ev); err != nil {
			return nil, err
		}
		target = ev
	case EventPlayPause:
		target = PlayPause{}
	default:
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	return target, nil
}

func decodePayload(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("event payload is missing")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding event payload: %w", err)
	}
	return nil
}
