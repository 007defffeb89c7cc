package timeline

import (
	"math"
	"sort"
	"testing"
)

const epsilon = 1e-9

// checkTiling verifies that the full segment sequence (active and
// deleted together) exactly covers [0, duration] with no gaps or
// overlaps.
func checkTiling(t *testing.T, s State) {
	t.Helper()

	segs := make([]Segment, len(s.Segments))
	copy(segs, s.Segments)
	sort.Slice(segs, func(i, j int) bool { return segs[i].StartTime < segs[j].StartTime })

	if len(segs) == 0 {
		t.Fatalf("state has no segments")
	}
	if math.Abs(segs[0].StartTime) > epsilon {
		t.Errorf("first segment starts at %v, want 0", segs[0].StartTime)
	}
	if math.Abs(segs[len(segs)-1].EndTime-s.Duration) > epsilon {
		t.Errorf("last segment ends at %v, want %v", segs[len(segs)-1].EndTime, s.Duration)
	}
	for i := 1; i < len(segs); i++ {
		if math.Abs(segs[i].StartTime-segs[i-1].EndTime) > epsilon {
			t.Errorf("gap or overlap between segment %d (end %v) and %d (start %v)",
				i-1, segs[i-1].EndTime, i, segs[i].StartTime)
		}
	}
}

func TestNewState(t *testing.T) {
	s := NewState(30)

	if len(s.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(s.Segments))
	}
	seg := s.Segments[0]
	if seg.StartTime != 0 || seg.EndTime != 30 || seg.Deleted {
		t.Fatalf("unexpected initial segment: %+v", seg)
	}
	if s.Duration != 30 {
		t.Fatalf("duration = %v, want 30", s.Duration)
	}
	checkTiling(t, s)
}

func TestTrimStart(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"interior", 5, 5},
		{"negative clamps to zero", -3, 0},
		{"beyond end clamps to end minus minimum", 40, 30 - MinSegmentSeconds},
		{"exactly at end clamps", 30, 30 - MinSegmentSeconds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(30)
			got := TrimStart(s, tc.t)
			if got.Segments[0].StartTime != tc.want {
				t.Errorf("TrimStart(%v) start = %v, want %v", tc.t, got.Segments[0].StartTime, tc.want)
			}
			// Input state untouched.
			if s.Segments[0].StartTime != 0 {
				t.Errorf("input state mutated: start = %v", s.Segments[0].StartTime)
			}
		})
	}
}

func TestTrimEnd(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"interior", 20, 20},
		{"beyond duration clamps", 50, 30},
		{"before start clamps to start plus minimum", -1, MinSegmentSeconds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(30)
			got := TrimEnd(s, tc.t)
			if got.Segments[0].EndTime != tc.want {
				t.Errorf("TrimEnd(%v) end = %v, want %v", tc.t, got.Segments[0].EndTime, tc.want)
			}
		})
	}
}

func TestTrimOperatesOnActiveBoundaries(t *testing.T) {
	s := NewState(30)
	s = Split(s, s.Segments[0].ID, 10)
	s = Split(s, s.Segments[1].ID, 20)
	s = Delete(s, s.Segments[0].ID)

	// First active segment is now [10, 20].
	s = TrimStart(s, 12)
	if s.Segments[1].StartTime != 12 {
		t.Errorf("trim start hit the wrong segment: %+v", s.Segments)
	}

	s = Delete(s, s.Segments[2].ID)
	// Last active segment is now [12, 20].
	s = TrimEnd(s, 18)
	if s.Segments[1].EndTime != 18 {
		t.Errorf("trim end hit the wrong segment: %+v", s.Segments)
	}
}

func TestTrimNoActiveSegments(t *testing.T) {
	s := NewState(30)
	// Force an unreachable-by-API state to exercise the guard.
	s.Segments[0].Deleted = true

	if got := TrimStart(s, 5); len(got.Segments) != 1 || got.Segments[0].StartTime != 0 {
		t.Errorf("TrimStart on empty active set should no-op")
	}
	if got := TrimEnd(s, 5); got.Segments[0].EndTime != 30 {
		t.Errorf("TrimEnd on empty active set should no-op")
	}
}

func TestSplit(t *testing.T) {
	s := NewState(30)
	id := s.Segments[0].ID

	got := Split(s, id, 10)

	if len(got.Segments) != 2 {
		t.Fatalf("expected 2 segments after split, got %d", len(got.Segments))
	}
	left, right := got.Segments[0], got.Segments[1]
	if left.ID != id {
		t.Errorf("left half should keep the original id")
	}
	if right.ID == id || right.ID == "" {
		t.Errorf("right half should get a fresh id, got %q", right.ID)
	}
	if left.StartTime != 0 || left.EndTime != 10 || right.StartTime != 10 || right.EndTime != 30 {
		t.Errorf("unexpected boundaries: left=%+v right=%+v", left, right)
	}
	if left.Deleted || right.Deleted {
		t.Errorf("split halves must be active")
	}
	checkTiling(t, got)

	// Rejoining the two halves reconstructs the original interval.
	if left.StartTime != s.Segments[0].StartTime || right.EndTime != s.Segments[0].EndTime {
		t.Errorf("split halves do not rejoin to the original interval")
	}
}

func TestSplitNoOps(t *testing.T) {
	s := NewState(30)
	id := s.Segments[0].ID

	tests := []struct {
		name string
		id   string
		t    float64
	}{
		{"at start boundary", id, 0},
		{"at end boundary", id, 30},
		{"before start", id, -5},
		{"after end", id, 35},
		{"unknown id", "nope", 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(s, tc.id, tc.t)
			if len(got.Segments) != 1 {
				t.Errorf("expected no-op, got %d segments", len(got.Segments))
			}
		})
	}

	t.Run("deleted segment", func(t *testing.T) {
		s2 := Split(s, id, 10)
		s2 = Delete(s2, id)
		got := Split(s2, id, 5)
		if len(got.Segments) != 2 {
			t.Errorf("split of a deleted segment should no-op")
		}
	})
}

func TestDeleteAndRestore(t *testing.T) {
	s := NewState(30)
	id := s.Segments[0].ID
	s = Split(s, id, 10)
	rightID := s.Segments[1].ID

	s = Delete(s, rightID)
	if !s.Segments[1].Deleted {
		t.Fatalf("segment not deleted")
	}
	if len(s.ActiveSegments()) != 1 {
		t.Fatalf("expected 1 active segment")
	}
	checkTiling(t, s)

	// Idempotent: deleting again changes nothing.
	again := Delete(s, rightID)
	if !again.Segments[1].Deleted || len(again.Segments) != 2 {
		t.Errorf("repeat delete should no-op")
	}

	s = Restore(s, rightID)
	if s.Segments[1].Deleted {
		t.Fatalf("segment not restored")
	}

	// Idempotent: restoring an active segment changes nothing.
	again = Restore(s, rightID)
	if again.Segments[1].Deleted {
		t.Errorf("repeat restore should no-op")
	}
}

func TestDeleteKeepsOneActiveSegment(t *testing.T) {
	s := NewState(30)
	id := s.Segments[0].ID

	got := Delete(s, id)
	if got.Segments[0].Deleted {
		t.Errorf("deleting the only active segment must no-op")
	}

	s = Split(s, id, 10)
	s = Delete(s, s.Segments[1].ID)
	got = Delete(s, id)
	if got.Segments[0].Deleted {
		t.Errorf("deleting the last remaining active segment must no-op")
	}
}

func TestTilingUnderEditSequence(t *testing.T) {
	s := NewState(60)
	checkTiling(t, s)

	s = Split(s, s.Segments[0].ID, 15)
	checkTiling(t, s)
	s = Split(s, s.Segments[1].ID, 40)
	checkTiling(t, s)
	s = Delete(s, s.Segments[1].ID)
	checkTiling(t, s)
	s = Restore(s, s.Segments[1].ID)
	checkTiling(t, s)
	s = Split(s, s.Segments[2].ID, 50)
	checkTiling(t, s)

	if len(s.Segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(s.Segments))
	}
}

func TestSeek(t *testing.T) {
	s := NewState(30)
	if got := Seek(s, 12.5); got.CurrentTime != 12.5 {
		t.Errorf("Seek = %v, want 12.5", got.CurrentTime)
	}
	if got := Seek(s, -1); got.CurrentTime != 0 {
		t.Errorf("Seek below zero should clamp to 0, got %v", got.CurrentTime)
	}
	if got := Seek(s, 99); got.CurrentTime != 30 {
		t.Errorf("Seek beyond duration should clamp, got %v", got.CurrentTime)
	}
}
