package export

import (
	"fmt"
	"math"
	"strings"
)

// GenerateEDL renders resolved ranges as a CMX3600 edit decision list so
// the edit can be handed off to an NLE instead of encoded here. All
// events reference the single source recording; record times pack the
// ranges back to back, which is exactly the layout the encoder's concat
// phase produces.
func GenerateEDL(ranges []Range, title, mediaPath string, frameRate float64) string {
	fps := int(math.Round(frameRate))
	if fps <= 0 {
		fps = 30
	}

	isDropFrame := math.Abs(frameRate-29.97) < 0.01 || math.Abs(frameRate-59.94) < 0.01

	lines := []string{fmt.Sprintf("TITLE: %s", title)}
	if isDropFrame {
		lines = append(lines, "FCM: DROP FRAME")
	} else {
		lines = append(lines, "FCM: NON-DROP FRAME")
	}
	lines = append(lines, "")

	var recordOffset float64
	for i, r := range ranges {
		srcIn := secondsToTimecode(r.StartTime, fps)
		srcOut := secondsToTimecode(r.EndTime, fps)
		recIn := secondsToTimecode(recordOffset, fps)
		recOut := secondsToTimecode(recordOffset+r.Duration(), fps)

		lines = append(lines,
			fmt.Sprintf("%03d  %-8s %-5s C        %s %s %s %s", i+1, "AX", "V", srcIn, srcOut, recIn, recOut),
			fmt.Sprintf("* FROM CLIP NAME:  %s", title),
			fmt.Sprintf("* MEDIA PATH:  %s", mediaPath),
		)

		recordOffset += r.Duration()
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func secondsToTimecode(seconds float64, fps int) string {
	totalFrames := int(math.Round(seconds * float64(fps)))
	frames := totalFrames % fps
	totalSeconds := totalFrames / fps
	secs := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	minutes := totalMinutes % 60
	hours := totalMinutes / 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, secs, frames)
}
