package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/encoding"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/export"
)

// preamble is shared by every invocation: never prompt, never read
// stdin, overwrite outputs, keep stderr to errors only.
var preamble = []string{"-hide_banner", "-nostdin", "-y", "-loglevel", "error"}

// singlePassArgs builds the one-command plan: seek to the range start,
// cut at its end, apply quality and the optional subtitle filter in a
// single encode.
func singlePassArgs(input string, plan encoding.Plan, output string) []string {
	r := plan.Ranges[0]

	args := append([]string{}, preamble...)
	args = append(args,
		"-ss", formatSeconds(r.StartTime),
		"-i", input,
		"-t", formatSeconds(r.Duration()),
	)
	if plan.SubtitleFilter != "" {
		args = append(args, "-vf", plan.SubtitleFilter)
	}
	args = append(args, codecArgs(plan)...)
	args = append(args, plan.ContainerFlags...)
	return append(args, output)
}

// extractArgs builds one phase-A command: lossless stream copy of a
// single range into an intermediate artifact.
func extractArgs(input string, r export.Range, partPath string) []string {
	args := append([]string{}, preamble...)
	return append(args,
		"-ss", formatSeconds(r.StartTime),
		"-i", input,
		"-t", formatSeconds(r.Duration()),
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		partPath,
	)
}

// concatArgs builds the phase-B command: concat-demuxer over the
// intermediates and the single re-encode with quality parameters and
// the optional subtitle filter.
func concatArgs(listPath string, plan encoding.Plan, output string) []string {
	args := append([]string{}, preamble...)
	args = append(args,
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
	)
	if plan.SubtitleFilter != "" {
		args = append(args, "-vf", plan.SubtitleFilter)
	}
	args = append(args, codecArgs(plan)...)
	args = append(args, plan.ContainerFlags...)
	return append(args, output)
}

func codecArgs(plan encoding.Plan) []string {
	args := []string{"-c:v", plan.VideoCodec}
	switch plan.VideoCodec {
	case "libvpx-vp9":
		// VP9 rate control: constrained quality needs an explicit
		// zero bitrate, and deadline replaces the x264 preset.
		args = append(args, "-crf", strconv.Itoa(plan.CRF), "-b:v", "0", "-deadline", "good")
	default:
		args = append(args, "-preset", plan.Preset, "-crf", strconv.Itoa(plan.CRF))
	}
	return append(args, "-c:a", plan.AudioCodec, "-b:a", "128k")
}

// concatList renders the concat-demuxer input file referencing the
// intermediate artifacts in order.
func concatList(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		fmt.Fprintf(&b, "file '%s'\n", strings.ReplaceAll(p, "'", `'\''`))
	}
	return b.String()
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
