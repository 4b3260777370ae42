// Package geometry lays segments out on the timeline: horizontal boxes in
// percent of the track, label rows, time markers and the playhead.
package geometry

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/pkg/timescale"
)

// overlapEpsilon tolerates float noise when two segments merely touch.
const overlapEpsilon = 1e-4

// UnlabeledKey prefixes the row keys of segments without a label. Those rows
// come after every labeled row.
const UnlabeledKey = "unlabeled"

// Box is the horizontal placement of a segment in percent of the track.
type Box struct {
	LeftPct  float64 `json:"left_pct"`
	WidthPct float64 `json:"width_pct"`
}

// Placement is a segment together with its box.
type Placement struct {
	Segment models.Segment `json:"segment"`
	Box     Box            `json:"box"`
}

// Row is one visual lane. All segments in a row share a label and do not
// overlap each other.
type Row struct {
	Key       string      `json:"key"`
	Label     string      `json:"label"`
	RowNumber int         `json:"row_number"`
	MaxEnd    float64     `json:"max_end"`
	Items     []Placement `json:"items"`
}

// Layout is the rendered state of a timeline.
type Layout struct {
	Duration float64 `json:"duration"`
	Labels   []string `json:"labels"`
	Rows     []Row    `json:"rows"`
}

// Options controls how a layout is built.
type Options struct {
	// SelectedLabel puts the rows of this label first.
	SelectedLabel string
	// Now is the current playback time, used as the end of incomplete segments.
	Now float64
	// Logger receives diagnostics about degenerate segments.
	Logger *zap.Logger
}

// Position computes the box of a segment. Incomplete segments extend to now.
func Position(seg models.Segment, duration, now float64) Box {
	return Box{
		LeftPct:  timescale.PositionPercent(seg.StartTime, duration),
		WidthPct: timescale.WidthPercent(seg.StartTime, seg.End(now), duration),
	}
}

// LabelOrder returns the distinct labels sorted A-Z. Unlabeled segments are skipped.
func LabelOrder(segments []models.Segment) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, s := range segments {
		if s.Label == "" {
			continue
		}
		if _, ok := seen[s.Label]; ok {
			continue
		}
		seen[s.Label] = struct{}{}
		labels = append(labels, s.Label)
	}
	sort.Strings(labels)
	return labels
}

// Build groups segments by label into rows. Within a label, segments are
// ordered by start time; a segment that starts before the current row ends
// opens a new row below it.
func Build(snapshot models.Snapshot, opts Options) Layout {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	buckets := make(map[string][]models.Segment)
	for _, s := range snapshot.Segments {
		buckets[s.Label] = append(buckets[s.Label], s)
	}

	labels := LabelOrder(snapshot.Segments)
	ordered := labels
	if _, ok := buckets[opts.SelectedLabel]; ok && opts.SelectedLabel != "" {
		ordered = make([]string, 0, len(labels))
		ordered = append(ordered, opts.SelectedLabel)
		for _, l := range labels {
			if l != opts.SelectedLabel {
				ordered = append(ordered, l)
			}
		}
	}

	layout := Layout{Duration: snapshot.Duration, Labels: ordered}
	rowLabels := ordered
	if unlabeled := len(buckets[""]); unlabeled > 0 {
		log.Debug("laying out unlabeled segments", zap.Int("count", unlabeled))
		rowLabels = append(append([]string(nil), ordered...), "")
	}
	for _, label := range rowLabels {
		segs := append([]models.Segment(nil), buckets[label]...)
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].StartTime < segs[j].StartTime })

		physical := 0
		row := newRow(label, physical, len(layout.Rows))
		for _, seg := range segs {
			if len(row.Items) > 0 && seg.StartTime < row.MaxEnd-overlapEpsilon {
				layout.Rows = append(layout.Rows, row)
				physical++
				row = newRow(label, physical, len(layout.Rows))
			}

			box := Position(seg, snapshot.Duration, opts.Now)
			if box.WidthPct == 0 {
				log.Debug("segment has zero width",
					zap.String("segment_id", seg.ID.String()),
					zap.Float64("start", seg.StartTime),
					zap.Float64("duration", snapshot.Duration))
			}
			row.Items = append(row.Items, Placement{Segment: seg, Box: box})
			if end := seg.End(opts.Now); end > row.MaxEnd {
				row.MaxEnd = end
			}
		}
		layout.Rows = append(layout.Rows, row)
	}

	return layout
}

func newRow(label string, physical, number int) Row {
	prefix := label
	if prefix == "" {
		prefix = UnlabeledKey
	}
	return Row{
		Key:       fmt.Sprintf("%s-%d", prefix, physical),
		Label:     label,
		RowNumber: number,
	}
}
