// Package timeline holds the edit model for a loaded recording: an
// ordered sequence of segments that always tiles [0, duration], and the
// pure transition functions that edit it. Every operation is total --
// out-of-range or otherwise invalid input returns the previous state
// unchanged, so callers can wire these directly to UI input without
// per-call guards.
package timeline

import (
	"crypto/rand"
	"fmt"
)

// MinSegmentSeconds is the shortest span a trim or export range may
// produce. Anything shorter breaks downstream encoding.
const MinSegmentSeconds = 0.1

// Segment is one contiguous span of the recording on the edit timeline.
// Deleted segments are retained so they can be restored later.
type Segment struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Deleted   bool    `json:"deleted"`
}

// State is an immutable snapshot of an editing session. Duration is
// fixed when the recording is loaded and never changes afterwards.
// Transition functions return a fresh State and never mutate their input.
type State struct {
	Segments    []Segment `json:"segments"`
	Duration    float64   `json:"duration"`
	CurrentTime float64   `json:"current_time"`
	Playing     bool      `json:"playing"`
}

// NewState creates the initial state for a recording: a single active
// segment covering the whole duration.
func NewState(duration float64) State {
	return State{
		Segments: []Segment{{
			ID:        NewID(),
			StartTime: 0,
			EndTime:   duration,
		}},
		Duration: duration,
	}
}

// ActiveSegments returns the non-deleted segments in timeline order.
func (s State) ActiveSegments() []Segment {
	var active []Segment
	for _, seg := range s.Segments {
		if !seg.Deleted {
			active = append(active, seg)
		}
	}
	return active
}

// TrimStart moves the start of the earliest active segment to t,
// clamped so the segment keeps at least MinSegmentSeconds. No-op when
// no active segment exists.
func TrimStart(s State, t float64) State {
	idx := firstActive(s)
	if idx < 0 {
		return s
	}
	seg := s.Segments[idx]
	t = clamp(t, 0, seg.EndTime-MinSegmentSeconds)

	next := cloneState(s)
	next.Segments[idx].StartTime = t
	return next
}

// TrimEnd moves the end of the latest active segment to t, clamped to
// [segment start + MinSegmentSeconds, duration].
func TrimEnd(s State, t float64) State {
	idx := lastActive(s)
	if idx < 0 {
		return s
	}
	seg := s.Segments[idx]
	t = clamp(t, seg.StartTime+MinSegmentSeconds, s.Duration)

	next := cloneState(s)
	next.Segments[idx].EndTime = t
	return next
}

// Split replaces the identified segment with two contiguous segments
// sharing the boundary t. The left half keeps the original ID, the
// right half gets a fresh one, and both are active. No-op unless the
// target is active and t is strictly interior to it.
func Split(s State, id string, t float64) State {
	idx := indexOf(s, id)
	if idx < 0 {
		return s
	}
	seg := s.Segments[idx]
	if seg.Deleted || t <= seg.StartTime || t >= seg.EndTime {
		return s
	}

	left := Segment{ID: seg.ID, StartTime: seg.StartTime, EndTime: t}
	right := Segment{ID: NewID(), StartTime: t, EndTime: seg.EndTime}

	next := cloneState(s)
	next.Segments = append(next.Segments[:idx], append([]Segment{left, right}, next.Segments[idx+1:]...)...)
	return next
}

// Delete marks the identified segment as deleted. The segment is kept
// so it can be restored. No-op if the segment is already deleted, does
// not exist, or is the last remaining active segment.
func Delete(s State, id string) State {
	idx := indexOf(s, id)
	if idx < 0 || s.Segments[idx].Deleted {
		return s
	}
	if len(s.ActiveSegments()) <= 1 {
		return s
	}

	next := cloneState(s)
	next.Segments[idx].Deleted = true
	return next
}

// Restore clears the deleted flag. Always safe: segments never overlap
// regardless of their deleted state, so restoring cannot collide.
func Restore(s State, id string) State {
	idx := indexOf(s, id)
	if idx < 0 || !s.Segments[idx].Deleted {
		return s
	}

	next := cloneState(s)
	next.Segments[idx].Deleted = false
	return next
}

// Seek updates the playhead, clamped to [0, duration].
func Seek(s State, t float64) State {
	next := cloneState(s)
	next.CurrentTime = clamp(t, 0, s.Duration)
	return next
}

func cloneState(s State) State {
	next := s
	next.Segments = make([]Segment, len(s.Segments))
	copy(next.Segments, s.Segments)
	return next
}

func firstActive(s State) int {
	for i, seg := range s.Segments {
		if !seg.Deleted {
			return i
		}
	}
	return -1
}

func lastActive(s State) int {
	for i := len(s.Segments) - 1; i >= 0; i-- {
		if !s.Segments[i].Deleted {
			return i
		}
	}
	return -1
}

func indexOf(s State, id string) int {
	for i, seg := range s.Segments {
		if seg.ID == id {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NewID returns a random identifier in the same format used across the
// agent's catalog.
func NewID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
