// Package interaction turns pointer and keyboard input on a timeline into
// timeline events. The Interpreter is a state machine over one active
// gesture at a time; it is not safe for concurrent use.
package interaction

import (
	"math"

	"go.uber.org/zap"

	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/pkg/timescale"
)

// thresholdEpsilon keeps selections that land exactly on the threshold from
// being lost to float rounding.
const thresholdEpsilon = 1e-9

// Interpreter classifies gestures at press time and emits live and final
// events to its Sink as the pointer moves and is released.
type Interpreter struct {
	opts     Options
	log      *zap.Logger
	sink     Sink
	snapshot models.Snapshot
	widthPx  float64

	state     State
	mode      Mode
	pointerID int
	anchorPx  float64
	lastPx    float64
	moved     bool

	anchorTime float64
	liveTime   float64

	// origin is the segment as it was when the gesture started.
	origin    models.Segment
	preview   Interval
	selection Interval

	activeID models.SegmentID
}

// NewInterpreter creates an idle interpreter emitting to sink.
func NewInterpreter(sink Sink, opts Options) *Interpreter {
	opts = opts.withDefaults()
	if sink == nil {
		sink = SinkFunc(func(models.Event) {})
	}
	return &Interpreter{
		opts: opts,
		log:  opts.Logger.Named("interaction"),
		sink: sink,
	}
}

// SetSnapshot replaces the segments and duration the interpreter works on.
// A gesture in progress keeps its origin segment.
func (in *Interpreter) SetSnapshot(s models.Snapshot) {
	in.snapshot = s
	if !in.activeID.IsZero() {
		if _, ok := s.Find(in.activeID); !ok {
			in.activeID = models.SegmentID{}
		}
	}
}

// Snapshot returns the current snapshot.
func (in *Interpreter) Snapshot() models.Snapshot {
	return in.snapshot
}

// SetWidth sets the rendered track width in pixels.
func (in *Interpreter) SetWidth(px float64) {
	in.widthPx = px
}

// Width returns the rendered track width in pixels.
func (in *Interpreter) Width() float64 {
	return in.widthPx
}

// SetSelectionMode toggles range selection for presses on the empty track.
// It takes effect on the next press.
func (in *Interpreter) SetSelectionMode(on bool) {
	in.opts.SelectionMode = on
}

// Options returns the effective options.
func (in *Interpreter) Options() Options {
	return in.opts
}

// State returns the phase of the current gesture.
func (in *Interpreter) State() State {
	return in.state
}

// Mode returns the mode of the current gesture, ModeNone when idle.
func (in *Interpreter) Mode() Mode {
	return in.mode
}

// Active returns the id of the last selected segment.
func (in *Interpreter) Active() (models.SegmentID, bool) {
	return in.activeID, !in.activeID.IsZero()
}

// Preview returns the live interval of a move or resize in progress.
func (in *Interpreter) Preview() (Interval, bool) {
	if in.state == StateIdle || !in.editing() {
		return Interval{}, false
	}
	return in.preview, true
}

// Selection returns the buffered range of a range selection in progress.
func (in *Interpreter) Selection() (Interval, bool) {
	if in.state == StateIdle || in.mode != ModeRangeSelect {
		return Interval{}, false
	}
	return in.selection, true
}

func (in *Interpreter) editing() bool {
	return in.mode == ModeMove || in.mode == ModeResizeStart || in.mode == ModeResizeEnd
}

func (in *Interpreter) valid() bool {
	return timescale.Valid(in.widthPx, in.snapshot.Duration)
}

func (in *Interpreter) timeAt(px float64) float64 {
	return timescale.TimeFromOffset(px, in.widthPx, in.snapshot.Duration)
}

// PointerDown starts a gesture on target. It reports whether a gesture was
// started; presses while another gesture is active, presses on an unusable
// timeline and presses on unknown segments are ignored.
func (in *Interpreter) PointerDown(ev PointerEvent, target Target) bool {
	if in.state != StateIdle {
		in.log.Debug("ignoring pointer down during active gesture",
			zap.Int("pointer_id", ev.PointerID),
			zap.Int("active_pointer_id", in.pointerID),
			zap.Stringer("mode", in.mode))
		return false
	}
	if !in.valid() {
		in.log.Debug("ignoring pointer down on unusable timeline",
			zap.Float64("width_px", in.widthPx),
			zap.Float64("duration", in.snapshot.Duration))
		return false
	}

	t := in.timeAt(ev.OffsetX)
	var mode Mode

	switch target.Kind {
	case TargetTrack:
		if in.opts.SelectionMode {
			mode = ModeRangeSelect
			in.selection = Interval{Start: t, End: t}
		} else {
			mode = ModeSeek
			in.sink.Emit(models.Seek{Time: t})
		}
	case TargetBody, TargetStartHandle, TargetEndHandle:
		seg, ok := in.snapshot.Find(target.SegmentID)
		if !ok {
			in.log.Debug("ignoring press on unknown segment",
				zap.String("segment_id", target.SegmentID.String()))
			return false
		}
		in.activeID = seg.ID
		in.sink.Emit(models.SegmentSelect{Segment: seg})
		if !seg.Complete() {
			// a segment still being recorded can be selected but not edited
			return false
		}
		in.origin = seg
		in.preview = Interval{Start: seg.StartTime, End: *seg.EndTime}
		switch target.Kind {
		case TargetBody:
			mode = ModeMove
		case TargetStartHandle:
			mode = ModeResizeStart
		default:
			mode = ModeResizeEnd
		}
	default:
		return false
	}

	in.state = StatePressed
	in.mode = mode
	in.pointerID = ev.PointerID
	in.anchorPx = ev.OffsetX
	in.lastPx = ev.OffsetX
	in.anchorTime = t
	in.liveTime = t
	in.moved = false
	return true
}

// PointerMove advances the active gesture. Moves from a pointer that does
// not own the gesture are ignored.
func (in *Interpreter) PointerMove(ev PointerEvent) {
	if !in.owns(ev.PointerID) {
		return
	}
	if in.dropIfUnusable() {
		return
	}
	in.track(ev.OffsetX)
	in.state = StateDragging

	switch in.mode {
	case ModeRangeSelect:
		in.selection = in.rangeAt()
	case ModeMove:
		in.preview = in.moveAt()
		in.sink.Emit(models.SegmentMove{ID: in.origin.ID, Start: in.preview.Start, End: in.preview.End})
	case ModeResizeStart, ModeResizeEnd:
		in.preview = in.resizeAt()
		in.sink.Emit(models.SegmentResize{ID: in.origin.ID, Start: in.preview.Start, End: in.preview.End, Edge: in.edge()})
	}
}

// PointerUp ends the active gesture at ev and emits its final event.
func (in *Interpreter) PointerUp(ev PointerEvent) {
	if !in.owns(ev.PointerID) {
		return
	}
	in.track(ev.OffsetX)
	in.finish(true)
}

// PointerCancel ends the active gesture at the last known position. The
// final event is emitted only if the pointer moved.
func (in *Interpreter) PointerCancel(pointerID int) {
	if !in.owns(pointerID) {
		return
	}
	in.finish(in.moved)
}

// Abort drops the active gesture without emitting anything.
func (in *Interpreter) Abort() {
	in.reset()
}

func (in *Interpreter) owns(pointerID int) bool {
	if in.state == StateIdle {
		return false
	}
	if pointerID != in.pointerID {
		in.log.Debug("ignoring foreign pointer",
			zap.Int("pointer_id", pointerID),
			zap.Int("active_pointer_id", in.pointerID))
		return false
	}
	return true
}

func (in *Interpreter) track(px float64) {
	if px != in.lastPx {
		in.moved = true
	}
	in.lastPx = px
	in.liveTime = in.timeAt(px)
}

// dropIfUnusable ends the gesture silently when the timeline lost its width
// or duration since the press.
func (in *Interpreter) dropIfUnusable() bool {
	if in.valid() {
		return false
	}
	in.log.Debug("dropping gesture on unusable timeline",
		zap.Int("pointer_id", in.pointerID),
		zap.Stringer("mode", in.mode),
		zap.Float64("width_px", in.widthPx),
		zap.Float64("duration", in.snapshot.Duration))
	in.reset()
	return true
}

func (in *Interpreter) finish(emit bool) {
	if in.dropIfUnusable() {
		return
	}
	if emit {
		switch in.mode {
		case ModeRangeSelect:
			sel := in.rangeAt()
			if sel.Length()+thresholdEpsilon >= in.opts.SelectionThreshold {
				in.sink.Emit(models.TimeSelection{Start: sel.Start, End: sel.End})
			} else {
				in.log.Debug("discarding short selection",
					zap.Float64("start", sel.Start),
					zap.Float64("end", sel.End))
			}
		case ModeMove:
			iv := in.moveAt()
			in.sink.Emit(models.SegmentMove{ID: in.origin.ID, Start: iv.Start, End: iv.End, Final: true})
		case ModeResizeStart, ModeResizeEnd:
			iv := in.resizeAt()
			in.sink.Emit(models.SegmentResize{ID: in.origin.ID, Start: iv.Start, End: iv.End, Edge: in.edge(), Final: true})
		}
	}
	in.reset()
}

func (in *Interpreter) reset() {
	in.state = StateIdle
	in.mode = ModeNone
	in.pointerID = 0
	in.moved = false
	in.origin = models.Segment{}
	in.preview = Interval{}
	in.selection = Interval{}
}

func (in *Interpreter) edge() models.ResizeEdge {
	if in.mode == ModeResizeStart {
		return models.EdgeStart
	}
	return models.EdgeEnd
}

func (in *Interpreter) rangeAt() Interval {
	return Interval{
		Start: math.Min(in.anchorTime, in.liveTime),
		End:   math.Max(in.anchorTime, in.liveTime),
	}
}

// moveAt shifts the origin interval by the pointer delta, keeping its length
// and keeping it inside [0, duration].
func (in *Interpreter) moveAt() Interval {
	duration := in.snapshot.Duration
	start, end := in.origin.StartTime, *in.origin.EndTime
	length := math.Min(end-start, duration)

	delta := timescale.DeltaFromPixels(in.lastPx-in.anchorPx, in.widthPx, duration)
	newStart := timescale.Clamp(start+delta, 0, duration-length)
	return Interval{Start: newStart, End: newStart + length}
}

// resizeAt moves one edge of the origin interval by the pointer delta. The
// moving edge stays at least MinSegmentPx away from the fixed edge and
// inside [0, duration].
func (in *Interpreter) resizeAt() Interval {
	duration := in.snapshot.Duration
	start, end := in.origin.StartTime, *in.origin.EndTime
	delta := timescale.DeltaFromPixels(in.lastPx-in.anchorPx, in.widthPx, duration)
	minWidth := timescale.DeltaFromPixels(in.opts.MinSegmentPx, in.widthPx, duration)

	// the floor never pushes an edge past where it started
	if in.mode == ModeResizeStart {
		hi := math.Max(end-minWidth, math.Min(start, end))
		return Interval{Start: timescale.Clamp(start+delta, 0, math.Min(hi, end)), End: end}
	}
	lo := math.Min(start+minWidth, math.Max(start, end))
	return Interval{Start: start, End: timescale.Clamp(end+delta, math.Max(lo, start), math.Max(duration, lo))}
}
