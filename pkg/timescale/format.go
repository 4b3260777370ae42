package timescale

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as MM:SS. Invalid or negative input renders as 00:00.
func FormatTime(seconds float64) string {
	if !finite(seconds) || seconds < 0 {
		return "00:00"
	}
	mins := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FramesToSeconds converts a frame number to seconds
func FramesToSeconds(frames, fps float64) float64 {
	if !finite(frames) || !finite(fps) || fps <= 0 {
		return 0
	}
	return frames / fps
}

// SecondsToFrames converts seconds to the nearest frame number
func SecondsToFrames(seconds, fps float64) int64 {
	if !finite(seconds) || !finite(fps) || fps <= 0 {
		return 0
	}
	return int64(math.Round(seconds * fps))
}

// SafeTime coerces a time value (seconds, or frames when isFrames is set) into
// non-negative seconds. Invalid input becomes 0.
func SafeTime(value float64, isFrames bool, fps float64) float64 {
	if !finite(value) || value < 0 {
		return 0
	}
	if isFrames {
		return math.Max(0, FramesToSeconds(value, fps))
	}
	return value
}

// PositionPercent returns the left offset of a time on the track in percent.
func PositionPercent(start, durationSec float64) float64 {
	if !finite(start) || !finite(durationSec) || durationSec <= 0 {
		return 0
	}
	return start / durationSec * 100
}

// WidthPercent returns the width of an interval in percent of the duration.
// Empty or inverted intervals have zero width.
func WidthPercent(start, end, durationSec float64) float64 {
	if !finite(start) || !finite(end) || !finite(durationSec) || durationSec <= 0 || end <= start {
		return 0
	}
	return (end - start) / durationSec * 100
}
