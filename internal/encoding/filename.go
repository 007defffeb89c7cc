package encoding

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const maxBaseNameLen = 120

// OutputName builds the deterministic, timestamp-derived output
// filename. The same name (with a different extension) is reused for
// the sidecar subtitle file, so the stem must be stable for a given
// request.
func OutputName(base string, at time.Time, container Container) string {
	stem := SanitizeName(base, maxBaseNameLen)
	if stem == "" {
		stem = "recording"
	}
	if at.IsZero() {
		at = time.Now()
	}
	return fmt.Sprintf("%s-%s.%s", stem, at.Format("20060102-150405"), container)
}

// SidecarName swaps the container extension for the subtitle one.
func SidecarName(outputName, ext string) string {
	if idx := strings.LastIndexByte(outputName, '.'); idx >= 0 {
		return outputName[:idx] + "." + ext
	}
	return outputName + "." + ext
}

// SanitizeName strips control characters, replaces characters unsafe in
// filenames with underscores, collapses whitespace to single spaces,
// and truncates to maxLen runes.
func SanitizeName(s string, maxLen int) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		if isAllowedNameRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	cleaned := strings.TrimSpace(b.String())
	if maxLen > 0 {
		runes := []rune(cleaned)
		if len(runes) > maxLen {
			cleaned = strings.TrimSpace(string(runes[:maxLen]))
		}
	}
	return cleaned
}

func isAllowedNameRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '-', '_', '.', ',', '(', ')':
		return true
	default:
		return false
	}
}
