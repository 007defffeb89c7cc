// Package export resolves an editing session into the final, gap-free
// list of time ranges to render. It merges the timeline's active
// segments with the silence cuts the user accepted, which are kept in
// separate ledgers right up until this point.
package export

import (
	"errors"
	"sort"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/silence"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/timeline"
)

// ErrNothingToExport is returned when every active span is consumed by
// cuts (or no active segment exists). The encoder must never be invoked
// in this case.
var ErrNothingToExport = errors.New("nothing to export")

// Range is one final interval included in the rendered output. Ranges
// in a resolved list are strictly increasing and disjoint, and each is
// at least timeline.MinSegmentSeconds long.
type Range struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// Duration returns the length of the range in seconds.
func (r Range) Duration() float64 {
	return r.EndTime - r.StartTime
}

// TotalDuration sums the lengths of all ranges.
func TotalDuration(ranges []Range) float64 {
	var total float64
	for _, r := range ranges {
		total += r.Duration()
	}
	return total
}

// Resolve subtracts the deleted silence segments from the active
// timeline segments and returns the ranges to render, in chronological
// order. Segments still carrying a deleted flag are ignored, so the
// full segment list of a state can be passed directly.
//
// Cut order is not guaranteed by the ledger's consumers, so cuts are
// re-sorted here defensively; shuffled input produces identical output.
func Resolve(segments []timeline.Segment, cuts []silence.Segment) ([]Range, error) {
	var active []timeline.Segment
	for _, seg := range segments {
		if !seg.Deleted {
			active = append(active, seg)
		}
	}

	if len(cuts) == 0 {
		// Fast path: the active segments are the export verbatim.
		ranges := make([]Range, 0, len(active))
		for _, seg := range active {
			if seg.EndTime-seg.StartTime >= timeline.MinSegmentSeconds {
				ranges = append(ranges, Range{StartTime: seg.StartTime, EndTime: seg.EndTime})
			}
		}
		if len(ranges) == 0 {
			return nil, ErrNothingToExport
		}
		return ranges, nil
	}

	sorted := make([]silence.Segment, len(cuts))
	copy(sorted, cuts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartTime != sorted[j].StartTime {
			return sorted[i].StartTime < sorted[j].StartTime
		}
		return sorted[i].EndTime < sorted[j].EndTime
	})

	var ranges []Range
	for _, seg := range active {
		ranges = append(ranges, subtract(seg, sorted)...)
	}

	if len(ranges) == 0 {
		return nil, ErrNothingToExport
	}
	return ranges, nil
}

// subtract removes every overlapping cut from one segment, clipping
// retained sub-ranges to the segment's own bounds. Sub-ranges shorter
// than the minimum are dropped to avoid sub-frame exports that break
// encoding.
func subtract(seg timeline.Segment, cuts []silence.Segment) []Range {
	var kept []Range
	cursor := seg.StartTime

	for _, cut := range cuts {
		// Half-open overlap test.
		if cut.EndTime <= seg.StartTime || cut.StartTime >= seg.EndTime {
			continue
		}
		if cut.StartTime > cursor {
			kept = appendRange(kept, cursor, min(cut.StartTime, seg.EndTime))
		}
		if cut.EndTime > cursor {
			cursor = min(cut.EndTime, seg.EndTime)
		}
	}

	if cursor < seg.EndTime {
		kept = appendRange(kept, cursor, seg.EndTime)
	}
	return kept
}

func appendRange(ranges []Range, start, end float64) []Range {
	if end-start < timeline.MinSegmentSeconds {
		return ranges
	}
	return append(ranges, Range{StartTime: start, EndTime: end})
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
