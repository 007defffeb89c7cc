package analysis

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/silence"
)

// parseSilenceDetect extracts intervals from silencedetect's stderr
// chatter. The filter logs pairs of lines:
//
//	[silencedetect @ 0x...] silence_start: 3.02397
//	[silencedetect @ 0x...] silence_end: 5.83507 | silence_duration: 2.8111
//
// An unmatched trailing silence_start (silence running to end of file)
// is dropped; the trim-end control covers that case in the editor.
func parseSilenceDetect(output string, noiseDB float64) []silence.Segment {
	var segments []silence.Segment
	pendingStart := -1.0

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		if v, ok := fieldAfter(line, "silence_start:"); ok {
			pendingStart = v
			continue
		}

		if v, ok := fieldAfter(line, "silence_end:"); ok && pendingStart >= 0 {
			segments = append(segments, silence.Segment{
				StartTime:       pendingStart,
				EndTime:         v,
				Duration:        v - pendingStart,
				AverageDecibels: noiseDB,
			})
			pendingStart = -1
		}
	}

	return segments
}

// fieldAfter parses the float immediately following the marker.
func fieldAfter(line, marker string) (float64, bool) {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return 0, false
	}
	rest := strings.TrimSpace(line[idx+len(marker):])
	if cut := strings.IndexByte(rest, ' '); cut >= 0 {
		rest = rest[:cut]
	}
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
