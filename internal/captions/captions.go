// Package captions turns transcript cues into subtitle artifacts: an
// SRT track for burn-in, a WebVTT sidecar, and the libass style
// overrides used when the track is composited into the video.
package captions

import (
	"fmt"
	"math"
	"strings"
)

// Caption is one transcript cue with optional per-caption styling.
type Caption struct {
	ID        string    `json:"id"`
	StartTime float64   `json:"start_time"`
	EndTime   float64   `json:"end_time"`
	Text      string    `json:"text"`
	Style     *Style    `json:"style,omitempty"`
	Position  *Position `json:"position,omitempty"`
}

// FormatSRT renders captions as an SRT document: sequential numeric
// index, comma millisecond separator, blank-line-delimited cues.
func FormatSRT(captions []Caption) string {
	var b strings.Builder
	for i, c := range captions {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", Timecode(c.StartTime, ','), Timecode(c.EndTime, ','))
		b.WriteString(c.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// FormatWebVTT renders captions as a WebVTT sidecar: header line and
// period millisecond separator, otherwise the same cue layout.
func FormatWebVTT(captions []Caption) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, c := range captions {
		fmt.Fprintf(&b, "%s --> %s\n", Timecode(c.StartTime, '.'), Timecode(c.EndTime, '.'))
		b.WriteString(c.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Timecode formats seconds as HH:MM:SS<sep>mmm, where sep is ',' for
// SRT and '.' for WebVTT.
func Timecode(seconds float64, sep byte) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMs := int(math.Round(seconds * 1000))
	ms := totalMs % 1000
	totalSec := totalMs / 1000
	secs := totalSec % 60
	totalMin := totalSec / 60
	mins := totalMin % 60
	hours := totalMin / 60
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, mins, secs, sep, ms)
}

// BurnInFilter builds the ffmpeg subtitles filter that composites the
// SRT track into the video using the given style overrides.
func BurnInFilter(srtPath string, o Overrides) string {
	return fmt.Sprintf("subtitles=%s:force_style='%s'", escapeFilterPath(srtPath), o.ForceStyle())
}

// escapeFilterPath escapes the characters ffmpeg's filter graph parser
// treats specially inside a filename argument.
func escapeFilterPath(p string) string {
	r := strings.NewReplacer(`\`, `\\`, `:`, `\:`, `'`, `\'`, `[`, `\[`, `]`, `\]`)
	return r.Replace(p)
}
