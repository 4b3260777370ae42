// Package timescale converts between horizontal pixel offsets on a timeline
// track and media time in seconds.
package timescale

import "math"

// Valid reports whether a track of the given width can map time for media of
// the given duration. When it returns false every conversion yields 0 and no
// time-based event may be derived from the result.
func Valid(widthPx, durationSec float64) bool {
	if !finite(durationSec) || durationSec <= 0 {
		return false
	}
	if !finite(widthPx) || widthPx <= 0 {
		return false
	}
	return true
}

// TimeFromOffset converts a pointer offset within the container into a time
// clamped to [0, duration]. Offsets outside the container are clamped.
func TimeFromOffset(offsetPx, widthPx, durationSec float64) float64 {
	if !Valid(widthPx, durationSec) || !finite(offsetPx) {
		return 0
	}
	return Clamp(offsetPx/widthPx*durationSec, 0, durationSec)
}

// PixelFromTime is the inverse of TimeFromOffset, clamped to [0, width].
func PixelFromTime(timeSec, widthPx, durationSec float64) float64 {
	if !Valid(widthPx, durationSec) || !finite(timeSec) {
		return 0
	}
	return Clamp(timeSec/durationSec*widthPx, 0, widthPx)
}

// DeltaFromPixels converts a signed pixel distance into a signed time
// distance without clamping. Used for move gestures where the caller clamps
// the resulting interval as a whole.
func DeltaFromPixels(dxPx, widthPx, durationSec float64) float64 {
	if !Valid(widthPx, durationSec) || !finite(dxPx) {
		return 0
	}
	return dxPx / widthPx * durationSec
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
