package interaction

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/killallgit/segment-editor/internal/models"
)

// State is the phase of the active gesture.
type State int

const (
	StateIdle State = iota
	StatePressed
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Mode is the kind of gesture, fixed at press time.
type Mode int

const (
	ModeNone Mode = iota
	ModeSeek
	ModeRangeSelect
	ModeMove
	ModeResizeStart
	ModeResizeEnd
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSeek:
		return "seek"
	case ModeRangeSelect:
		return "range-select"
	case ModeMove:
		return "move"
	case ModeResizeStart:
		return "resize-start"
	case ModeResizeEnd:
		return "resize-end"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// TargetKind is where on the timeline a pointer landed.
type TargetKind int

const (
	TargetTrack TargetKind = iota
	TargetBody
	TargetStartHandle
	TargetEndHandle
)

var targetNames = map[TargetKind]string{
	TargetTrack:       "track",
	TargetBody:        "body",
	TargetStartHandle: "start",
	TargetEndHandle:   "end",
}

func (k TargetKind) String() string {
	if name, ok := targetNames[k]; ok {
		return name
	}
	return fmt.Sprintf("target(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k TargetKind) MarshalText() ([]byte, error) {
	name, ok := targetNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown target kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (k *TargetKind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, name := range targetNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown target kind %q", s)
}

// Target identifies what a press landed on. SegmentID is unset for the track.
type Target struct {
	Kind      TargetKind       `json:"kind"`
	SegmentID models.SegmentID `json:"segment_id,omitempty"`
}

// Track is the target for a press on empty timeline space.
func Track() Target {
	return Target{Kind: TargetTrack}
}

// PointerEvent is a pointer sample relative to the left edge of the track.
type PointerEvent struct {
	PointerID int     `json:"pointer_id"`
	OffsetX   float64 `json:"offset_x"`
}

// Interval is a closed time range in seconds.
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Length returns End - Start.
func (i Interval) Length() float64 {
	return i.End - i.Start
}

const (
	DefaultHandlePx           = 6.0
	DefaultMinSegmentPx       = 10.0
	DefaultSelectionThreshold = 0.1
)

// Options configures an Interpreter.
type Options struct {
	// SelectionMode turns presses on the empty track into range selection
	// instead of seeking.
	SelectionMode bool
	// HandlePx is the width of the resize hit zone at each segment edge.
	HandlePx float64
	// MinSegmentPx is the narrowest a resize may make a segment.
	MinSegmentPx float64
	// SelectionThreshold is the shortest range selection, in seconds, that
	// is reported on release.
	SelectionThreshold float64
	Logger             *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.HandlePx <= 0 {
		o.HandlePx = DefaultHandlePx
	}
	if o.MinSegmentPx <= 0 {
		o.MinSegmentPx = DefaultMinSegmentPx
	}
	if o.SelectionThreshold <= 0 {
		o.SelectionThreshold = DefaultSelectionThreshold
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
