package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/killallgit/segment-editor/internal/models"
)

func testSnapshot(duration float64) models.Snapshot {
	return models.Snapshot{
		MediaID:  "v1",
		Duration: duration,
		Segments: []models.Segment{
			{ID: models.PersistedID(1), MediaID: "v1", Label: "polyp", StartTime: 10, EndTime: models.Float(20)},
			{ID: models.TempID("draft-a"), MediaID: "v1", Label: "blood", StartTime: 90, EndTime: models.Float(95)},
			{ID: models.PersistedID(3), MediaID: "v1", Label: "polyp", StartTime: 40},
		},
	}
}

func newTestInterpreter(t *testing.T, duration, width float64, opts Options) (*Interpreter, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	in := NewInterpreter(rec, opts)
	in.SetSnapshot(testSnapshot(duration))
	in.SetWidth(width)
	return in, rec
}

func body(id models.SegmentID) Target      { return Target{Kind: TargetBody, SegmentID: id} }
func endHandle(id models.SegmentID) Target { return Target{Kind: TargetEndHandle, SegmentID: id} }
func startHandle(id models.SegmentID) Target {
	return Target{Kind: TargetStartHandle, SegmentID: id}
}

func TestInterpreter_Seek(t *testing.T) {
	t.Run("press on track seeks once", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		require.True(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 250}, Track()))
		assert.Equal(t, StatePressed, in.State())
		assert.Equal(t, ModeSeek, in.Mode())

		in.PointerMove(PointerEvent{PointerID: 1, OffsetX: 300})
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 300})

		require.Len(t, rec.Events(), 1)
		assert.Equal(t, models.Seek{Time: 25}, rec.Events()[0])
		assert.Equal(t, StateIdle, in.State())
		assert.Equal(t, ModeNone, in.Mode())
	})

	t.Run("zero duration suppresses seek", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 0, 1000, Options{})

		assert.False(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 250}, Track()))
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 250})

		assert.Empty(t, rec.Events())
		assert.Equal(t, StateIdle, in.State())
	})

	t.Run("zero width suppresses seek", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 0, Options{})

		assert.False(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 250}, Track()))
		assert.Empty(t, rec.Events())
	})
}

func TestInterpreter_RangeSelect(t *testing.T) {
	t.Run("drag emits one selection on release", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 120, 1000, Options{SelectionMode: true})

		require.True(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 100}, Track()))
		assert.Equal(t, ModeRangeSelect, in.Mode())

		in.PointerMove(PointerEvent{PointerID: 1, OffsetX: 250})
		sel, ok := in.Selection()
		require.True(t, ok)
		assert.InDelta(t, 12.0, sel.Start, 1e-9)
		assert.InDelta(t, 30.0, sel.End, 1e-9)
		assert.Empty(t, rec.Events(), "selection is buffered until release")

		in.PointerMove(PointerEvent{PointerID: 1, OffsetX: 400})
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 400})

		require.Len(t, rec.Events(), 1)
		got, ok := rec.Events()[0].(models.TimeSelection)
		require.True(t, ok)
		assert.InDelta(t, 12.0, got.Start, 1e-9)
		assert.InDelta(t, 48.0, got.End, 1e-9)

		_, ok = in.Selection()
		assert.False(t, ok)
	})

	t.Run("dragging backwards orders the interval", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{SelectionMode: true})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 500}, Track())
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 200})

		require.Len(t, rec.Events(), 1)
		sel := rec.Events()[0].(models.TimeSelection)
		assert.InDelta(t, 20.0, sel.Start, 1e-9)
		assert.InDelta(t, 50.0, sel.End, 1e-9)
	})

	t.Run("short drag is discarded", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{SelectionMode: true})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 300}, Track())
		in.PointerMove(PointerEvent{PointerID: 1, OffsetX: 300.5})
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 300.5})

		assert.Empty(t, rec.Events())
		assert.Equal(t, StateIdle, in.State())
	})

	t.Run("selection exactly at the threshold is kept", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{SelectionMode: true})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 300}, Track())
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 301})

		assert.Len(t, rec.Events(), 1)
	})

	t.Run("release outside the track clamps to duration", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{SelectionMode: true})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 900}, Track())
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 5000})

		require.Len(t, rec.Events(), 1)
		sel := rec.Events()[0].(models.TimeSelection)
		assert.InDelta(t, 90.0, sel.Start, 1e-9)
		assert.Equal(t, 100.0, sel.End)
	})

	t.Run("selection mode applies from the next press", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})
		in.SetSelectionMode(true)

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 100}, Track())
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 300})

		require.Len(t, rec.Events(), 1)
		assert.IsType(t, models.TimeSelection{}, rec.Events()[0])
	})
}

func TestInterpreter_Move(t *testing.T) {
	t.Run("body drag moves both edges and ends with a final event", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})
		id := models.PersistedID(1)

		require.True(t, in.PointerDown(PointerEvent{PointerID: 7, OffsetX: 150}, body(id)))
		assert.Equal(t, ModeMove, in.Mode())

		in.PointerMove(PointerEvent{PointerID: 7, OffsetX: 200})
		assert.Equal(t, StateDragging, in.State())
		preview, ok := in.Preview()
		require.True(t, ok)
		assert.InDelta(t, 15.0, preview.Start, 1e-9)

		in.PointerMove(PointerEvent{PointerID: 7, OffsetX: 250})
		in.PointerUp(PointerEvent{PointerID: 7, OffsetX: 250})

		events := rec.Events()
		require.Len(t, events, 4)
		assert.IsType(t, models.SegmentSelect{}, events[0])

		var finals int
		for _, ev := range events[1:] {
			mv, ok := ev.(models.SegmentMove)
			require.True(t, ok)
			assert.Equal(t, id, mv.ID)
			if mv.Final {
				finals++
			}
		}
		assert.Equal(t, 1, finals)

		last := events[len(events)-1].(models.SegmentMove)
		assert.True(t, last.Final)
		assert.InDelta(t, 20.0, last.Start, 1e-9)
		assert.InDelta(t, 30.0, last.End, 1e-9)
	})

	t.Run("move keeps the segment inside the media", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 920}, body(models.TempID("draft-a")))
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 1200})

		last := rec.Events()[len(rec.Events())-1].(models.SegmentMove)
		assert.InDelta(t, 95.0, last.Start, 1e-9)
		assert.InDelta(t, 100.0, last.End, 1e-9)

		rec.Reset()
		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.PersistedID(1)))
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: -400})

		last = rec.Events()[len(rec.Events())-1].(models.SegmentMove)
		assert.InDelta(t, 0.0, last.Start, 1e-9)
		assert.InDelta(t, 10.0, last.End, 1e-9)
	})

	t.Run("release without movement still emits a final event", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.PersistedID(1)))
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 150})

		require.Len(t, rec.Events(), 2)
		assert.Equal(t, models.SegmentMove{ID: models.PersistedID(1), Start: 10, End: 20, Final: true}, rec.Events()[1])
	})
}

func TestInterpreter_Resize(t *testing.T) {
	t.Run("end handle", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})
		id := models.PersistedID(1)

		require.True(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 200}, endHandle(id)))
		assert.Equal(t, ModeResizeEnd, in.Mode())
		in.PointerMove(PointerEvent{PointerID: 1, OffsetX: 225})
		in.PointerMove(PointerEvent{PointerID: 1, OffsetX: 250})
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 250})

		events := rec.Events()
		require.Len(t, events, 4)
		for _, ev := range events[1 : len(events)-1] {
			rs := ev.(models.SegmentResize)
			assert.False(t, rs.Final)
			assert.Equal(t, models.EdgeEnd, rs.Edge)
		}
		last := events[len(events)-1].(models.SegmentResize)
		assert.True(t, last.Final)
		assert.InDelta(t, 10.0, last.Start, 1e-9)
		assert.InDelta(t, 25.0, last.End, 1e-9)
	})

	t.Run("start handle cannot cross the end", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 100}, startHandle(models.PersistedID(1)))
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 600})

		last := rec.Events()[len(rec.Events())-1].(models.SegmentResize)
		assert.Equal(t, models.EdgeStart, last.Edge)
		assert.InDelta(t, 19.0, last.Start, 1e-9, "stops min_segment_px before the end")
		assert.InDelta(t, 20.0, last.End, 1e-9)
	})

	t.Run("start handle stops at zero", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 100}, startHandle(models.PersistedID(1)))
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: -300})

		last := rec.Events()[len(rec.Events())-1].(models.SegmentResize)
		assert.InDelta(t, 0.0, last.Start, 1e-9)
	})

	t.Run("end handle cannot cross the start or the duration", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{MinSegmentPx: 20})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 200}, endHandle(models.PersistedID(1)))
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: -500})
		last := rec.Events()[len(rec.Events())-1].(models.SegmentResize)
		assert.InDelta(t, 12.0, last.End, 1e-9)

		rec.Reset()
		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 200}, endHandle(models.PersistedID(1)))
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 3000})
		last = rec.Events()[len(rec.Events())-1].(models.SegmentResize)
		assert.InDelta(t, 100.0, last.End, 1e-9)
		assert.LessOrEqual(t, last.Start, last.End)
	})
}

func TestInterpreter_ResizeNarrowSegment(t *testing.T) {
	// 1000px over an hour: the 10px minimum width is 36s, wider than the segment
	narrow := models.Snapshot{
		MediaID:  "v1",
		Duration: 3600,
		Segments: []models.Segment{
			{ID: models.PersistedID(1), MediaID: "v1", Label: "polyp", StartTime: 100, EndTime: models.Float(110)},
		},
	}

	tests := []struct {
		name   string
		target Target
		offset float64
	}{
		{name: "start handle", target: startHandle(models.PersistedID(1)), offset: 100.0 / 3.6},
		{name: "end handle", target: endHandle(models.PersistedID(1)), offset: 110.0 / 3.6},
	}

	for _, tt := range tests {
		t.Run(tt.name+" click keeps the interval", func(t *testing.T) {
			rec := &Recorder{}
			in := NewInterpreter(rec, Options{})
			in.SetSnapshot(narrow)
			in.SetWidth(1000)

			require.True(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: tt.offset}, tt.target))
			in.PointerUp(PointerEvent{PointerID: 1, OffsetX: tt.offset})

			events := rec.Events()
			require.Len(t, events, 2, "select then one final resize")
			last := events[1].(models.SegmentResize)
			assert.True(t, last.Final)
			assert.InDelta(t, 100.0, last.Start, 1e-9)
			assert.InDelta(t, 110.0, last.End, 1e-9)
		})

		t.Run(tt.name+" drag inward stays within the original edges", func(t *testing.T) {
			rec := &Recorder{}
			in := NewInterpreter(rec, Options{})
			in.SetSnapshot(narrow)
			in.SetWidth(1000)

			in.PointerDown(PointerEvent{PointerID: 1, OffsetX: tt.offset}, tt.target)
			in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 105.0 / 3.6})

			events := rec.Events()
			last := events[len(events)-1].(models.SegmentResize)
			assert.True(t, last.Final)
			assert.GreaterOrEqual(t, last.Start, 100.0-1e-9)
			assert.LessOrEqual(t, last.End, 110.0+1e-9)
			assert.LessOrEqual(t, last.Start, last.End)
		})
	}
}

func TestInterpreter_DurationLostMidGesture(t *testing.T) {
	lose := func(in *Interpreter) {
		snap := in.Snapshot()
		snap.Duration = 0
		in.SetSnapshot(snap)
	}

	tests := []struct {
		name   string
		target Target
		opts   Options
		down   float64
	}{
		{name: "move", target: body(models.PersistedID(1)), down: 150},
		{name: "resize", target: endHandle(models.PersistedID(1)), down: 200},
		{name: "range select", target: Track(), opts: Options{SelectionMode: true}, down: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name+" before moving", func(t *testing.T) {
			in, rec := newTestInterpreter(t, 100, 1000, tt.opts)
			require.True(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: tt.down}, tt.target))
			pressed := len(rec.Events())

			lose(in)
			in.PointerMove(PointerEvent{PointerID: 1, OffsetX: tt.down + 100})
			in.PointerUp(PointerEvent{PointerID: 1, OffsetX: tt.down + 100})

			assert.Len(t, rec.Events(), pressed, "no events after the duration is lost")
			assert.Equal(t, StateIdle, in.State())
		})

		t.Run(tt.name+" while dragging", func(t *testing.T) {
			in, rec := newTestInterpreter(t, 100, 1000, tt.opts)
			in.PointerDown(PointerEvent{PointerID: 1, OffsetX: tt.down}, tt.target)
			in.PointerMove(PointerEvent{PointerID: 1, OffsetX: tt.down + 50})
			before := len(rec.Events())

			lose(in)
			in.PointerUp(PointerEvent{PointerID: 1, OffsetX: tt.down + 100})

			assert.Len(t, rec.Events(), before, "no final event after the duration is lost")
			assert.Equal(t, StateIdle, in.State())
		})
	}

	t.Run("dropped gesture is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		in, _ := newTestInterpreter(t, 100, 1000, Options{Logger: zap.New(core)})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.PersistedID(1)))
		lose(in)
		in.PointerCancel(1)

		entries := logs.FilterMessage("dropping gesture on unusable timeline").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "move", entries[0].ContextMap()["mode"])
	})
}

func TestInterpreter_PointerBinding(t *testing.T) {
	t.Run("second pointer down is ignored", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		require.True(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.PersistedID(1))))
		assert.False(t, in.PointerDown(PointerEvent{PointerID: 2, OffsetX: 500}, Track()))

		in.PointerMove(PointerEvent{PointerID: 2, OffsetX: 900})
		in.PointerUp(PointerEvent{PointerID: 2, OffsetX: 900})
		assert.Equal(t, ModeMove, in.Mode(), "foreign pointer does not end the gesture")

		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 150})
		for _, ev := range rec.Events() {
			assert.NotEqual(t, models.EventSeek, ev.Kind())
		}
		assert.Equal(t, StateIdle, in.State())
	})

	t.Run("move and release without a press are no-ops", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		in.PointerMove(PointerEvent{PointerID: 1, OffsetX: 10})
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 10})
		in.PointerCancel(1)

		assert.Empty(t, rec.Events())
		assert.Equal(t, StateIdle, in.State())
	})

	t.Run("ignored presses are logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		in, _ := newTestInterpreter(t, 100, 1000, Options{Logger: zap.New(core)})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.PersistedID(1)))
		in.PointerDown(PointerEvent{PointerID: 2, OffsetX: 150}, Track())

		entries := logs.FilterMessage("ignoring pointer down during active gesture").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(2), entries[0].ContextMap()["pointer_id"])
	})
}

func TestInterpreter_Cancel(t *testing.T) {
	t.Run("cancel without movement emits no final event", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.PersistedID(1)))
		in.PointerCancel(1)

		require.Len(t, rec.Events(), 1)
		assert.IsType(t, models.SegmentSelect{}, rec.Events()[0])
		assert.Equal(t, StateIdle, in.State())
	})

	t.Run("cancel after movement finalizes at the last position", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.PersistedID(1)))
		in.PointerMove(PointerEvent{PointerID: 1, OffsetX: 200})
		in.PointerCancel(1)

		last := rec.Events()[len(rec.Events())-1].(models.SegmentMove)
		assert.True(t, last.Final)
		assert.InDelta(t, 15.0, last.Start, 1e-9)
	})

	t.Run("abort drops the gesture silently", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{SelectionMode: true})

		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 100}, Track())
		in.PointerMove(PointerEvent{PointerID: 1, OffsetX: 500})
		in.Abort()

		assert.Empty(t, rec.Events())
		assert.Equal(t, StateIdle, in.State())
	})
}

func TestInterpreter_SegmentPress(t *testing.T) {
	t.Run("unknown segment is ignored", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		assert.False(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.PersistedID(99))))
		assert.Empty(t, rec.Events())
	})

	t.Run("temp id does not match persisted id with same digits", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		assert.False(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.TempID("1"))))
		assert.Empty(t, rec.Events())
	})

	t.Run("incomplete segment can be selected but not dragged", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		assert.False(t, in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 450}, body(models.PersistedID(3))))
		require.Len(t, rec.Events(), 1)
		assert.IsType(t, models.SegmentSelect{}, rec.Events()[0])
		assert.Equal(t, StateIdle, in.State())

		id, ok := in.Active()
		assert.True(t, ok)
		assert.Equal(t, models.PersistedID(3), id)
	})
}

func TestInterpreter_Commands(t *testing.T) {
	t.Run("delete key removes the active segment", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})
		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.PersistedID(1)))
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 150})
		rec.Reset()

		assert.False(t, in.KeyDown(KeyDelete, true), "editable targets keep the key")
		assert.False(t, in.KeyDown("Enter", false))
		assert.True(t, in.KeyDown(KeyBackspace, false))

		require.Len(t, rec.Events(), 1)
		del := rec.Events()[0].(models.SegmentDelete)
		assert.Equal(t, models.PersistedID(1), del.Segment.ID)

		_, ok := in.Active()
		assert.False(t, ok)
		assert.False(t, in.DeleteSelected())
	})

	t.Run("snapshot without the active segment clears it", func(t *testing.T) {
		in, _ := newTestInterpreter(t, 100, 1000, Options{})
		in.PointerDown(PointerEvent{PointerID: 1, OffsetX: 150}, body(models.PersistedID(1)))
		in.PointerUp(PointerEvent{PointerID: 1, OffsetX: 150})

		in.SetSnapshot(models.Snapshot{MediaID: "v1", Duration: 100})
		_, ok := in.Active()
		assert.False(t, ok)
	})

	t.Run("play segment seeks then toggles playback", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		assert.True(t, in.PlaySegment(models.PersistedID(1)))
		assert.Equal(t, []models.Event{models.Seek{Time: 10}, models.PlayPause{}}, rec.Events())
	})

	t.Run("edit segment", func(t *testing.T) {
		in, rec := newTestInterpreter(t, 100, 1000, Options{})

		assert.True(t, in.EditSegment(models.TempID("draft-a")))
		assert.False(t, in.EditSegment(models.PersistedID(42)))
		require.Len(t, rec.Events(), 1)
		assert.Equal(t, models.EventSegmentEdit, rec.Events()[0].Kind())
	})

	t.Run("play-pause is suppressed without media", func(t *testing.T) {
		rec := &Recorder{}
		in := NewInterpreter(rec, Options{})

		assert.False(t, in.PlayPause())
		assert.Empty(t, rec.Events())

		in.SetSnapshot(testSnapshot(100))
		assert.True(t, in.PlayPause())
		assert.Len(t, rec.Events(), 1)
	})
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "dragging", StateDragging.String())
	assert.Equal(t, "resize-start", ModeResizeStart.String())
	assert.Equal(t, "end", TargetEndHandle.String())
	assert.Equal(t, "mode(42)", Mode(42).String())
}
