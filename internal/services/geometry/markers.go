package geometry

import (
	"math"

	"github.com/killallgit/segment-editor/pkg/timescale"
)

const (
	MinZoom  = 1.0
	MaxZoom  = 5.0
	ZoomStep = 0.5

	// baseMarkerInterval is the marker spacing in seconds at zoom 1.
	baseMarkerInterval = 10.0
)

// Zoom is the timeline magnification, kept within [MinZoom, MaxZoom].
type Zoom float64

// NewZoom clamps a level into range. Non-finite values become MinZoom.
func NewZoom(level float64) Zoom {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return MinZoom
	}
	return Zoom(timescale.Clamp(level, MinZoom, MaxZoom))
}

// In returns the next zoom level up, saturating at MaxZoom.
func (z Zoom) In() Zoom {
	return NewZoom(float64(z) + ZoomStep)
}

// Out returns the next zoom level down, saturating at MinZoom.
func (z Zoom) Out() Zoom {
	return NewZoom(float64(z) - ZoomStep)
}

// Marker is a labeled tick on the time ruler.
type Marker struct {
	Time     float64 `json:"time"`
	Position float64 `json:"position"` // percent
	Label    string  `json:"label"`
}

// Markers returns ticks every 10/zoom seconds from 0 to duration inclusive.
func Markers(duration float64, zoom Zoom) []Marker {
	if !timescale.Valid(1, duration) {
		return nil
	}
	interval := baseMarkerInterval / float64(NewZoom(float64(zoom)))
	count := int(math.Floor(duration / interval))

	markers := make([]Marker, 0, count+1)
	for i := 0; i <= count; i++ {
		t := float64(i) * interval
		if t > duration {
			break
		}
		markers = append(markers, Marker{
			Time:     t,
			Position: t / duration * 100,
			Label:    timescale.FormatTime(t),
		})
	}
	return markers
}

// PlayheadPercent places the playhead in percent of the track, 0 when either
// input is unusable.
func PlayheadPercent(current, duration float64) float64 {
	if !timescale.Valid(1, duration) {
		return 0
	}
	if math.IsNaN(current) || math.IsInf(current, 0) || current < 0 {
		return 0
	}
	return timescale.Clamp(current/duration*100, 0, 100)
}
