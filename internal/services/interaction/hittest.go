package interaction

import (
	"github.com/killallgit/segment-editor/internal/services/geometry"
)

// HitTest classifies a press at offsetPx within one row of a layout. Presses
// within handlePx of a complete segment's edge hit that edge's handle; the
// rest of the segment is its body. Later segments in a row are drawn on top
// and win ties.
func HitTest(layout geometry.Layout, row int, offsetPx, widthPx, handlePx float64) Target {
	if row < 0 || row >= len(layout.Rows) || widthPx <= 0 {
		return Track()
	}
	items := layout.Rows[row].Items
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		left := item.Box.LeftPct / 100 * widthPx
		right := left + item.Box.WidthPct/100*widthPx
		if offsetPx < left || offsetPx > right {
			continue
		}

		target := Target{Kind: TargetBody, SegmentID: item.Segment.ID}
		if !item.Segment.Complete() {
			return target
		}
		if right-left <= 2*handlePx {
			// too narrow for a body: split between the two handles
			if offsetPx-left <= right-offsetPx {
				target.Kind = TargetStartHandle
			} else {
				target.Kind = TargetEndHandle
			}
			return target
		}
		switch {
		case offsetPx-left <= handlePx:
			target.Kind = TargetStartHandle
		case right-offsetPx <= handlePx:
			target.Kind = TargetEndHandle
		}
		return target
	}
	return Track()
}
