// Package silence is the ledger of detected silence intervals and the
// user's accept/reject decisions over them. Detection runs in the
// background and may finish while the user is already editing, so the
// ledger is kept independent of the timeline and the two are only
// merged at export-resolution time.
package silence

import "sort"

// Segment is one detected silence interval. A segment marked deleted is
// a "cut": its span is excised from the export. Reviewed records that
// the user made an explicit decision either way.
type Segment struct {
	ID              string  `json:"id"`
	RecordingID     string  `json:"recording_id"`
	StartTime       float64 `json:"start_time"`
	EndTime         float64 `json:"end_time"`
	Duration        float64 `json:"duration"`
	AverageDecibels float64 `json:"average_decibels"`
	Deleted         bool    `json:"deleted"`
	Reviewed        bool    `json:"reviewed"`
}

// Ingest normalizes segments arriving from the analysis collaborator:
// it fills in durations and sorts by start time. Sort order is enforced
// here, once, at the ledger boundary; every lookup below relies on it.
func Ingest(segments []Segment) []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)
	for i := range out {
		if out[i].Duration == 0 {
			out[i].Duration = out[i].EndTime - out[i].StartTime
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].EndTime < out[j].EndTime
	})
	return out
}

// MarkForDeletion sets the deleted flag on one segment. Both accepting
// and rejecting a silence count as a review, so Reviewed is set
// regardless of direction. Unknown IDs are a no-op.
func MarkForDeletion(segments []Segment, id string, deleted bool) []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)
	for i := range out {
		if out[i].ID == id {
			out[i].Deleted = deleted
			out[i].Reviewed = true
			break
		}
	}
	return out
}

// BatchSetDeleted applies one decision to every segment, marking all of
// them reviewed.
func BatchSetDeleted(segments []Segment, deleted bool) []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)
	for i := range out {
		out[i].Deleted = deleted
		out[i].Reviewed = true
	}
	return out
}

// NextAfter returns the first segment starting strictly after t, or nil.
func NextAfter(segments []Segment, t float64) *Segment {
	for i := range segments {
		if segments[i].StartTime > t {
			seg := segments[i]
			return &seg
		}
	}
	return nil
}

// PreviousBefore returns the last segment starting strictly before t,
// or nil.
func PreviousBefore(segments []Segment, t float64) *Segment {
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i].StartTime < t {
			seg := segments[i]
			return &seg
		}
	}
	return nil
}

// At returns the first segment containing t, or nil.
func At(segments []Segment, t float64) *Segment {
	for i := range segments {
		if segments[i].StartTime <= t && t <= segments[i].EndTime {
			seg := segments[i]
			return &seg
		}
	}
	return nil
}

// Cuts returns the deleted subset: the intervals excised from export.
func Cuts(segments []Segment) []Segment {
	var cuts []Segment
	for _, seg := range segments {
		if seg.Deleted {
			cuts = append(cuts, seg)
		}
	}
	return cuts
}

// TotalDuration is the combined length of all detected silences.
// Recomputed on demand; ledgers are small enough that caching would be
// pure overhead.
func TotalDuration(segments []Segment) float64 {
	var total float64
	for _, seg := range segments {
		total += seg.Duration
	}
	return total
}

// TimeSaved is the combined length of the silences marked for deletion.
func TimeSaved(segments []Segment) float64 {
	var total float64
	for _, seg := range segments {
		if seg.Deleted {
			total += seg.Duration
		}
	}
	return total
}
