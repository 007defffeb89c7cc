package encoding

import (
	"fmt"
	"time"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/export"
)

// Options are the user's export choices. Zero values fall back to MP4
// at medium quality.
type Options struct {
	Container Container   `json:"container" validate:"omitempty,oneof=mp4 webm"`
	Quality   QualityTier `json:"quality" validate:"omitempty,oneof=low medium high"`
	// SubtitleFilter carries the burn-in filter from the caption
	// stylist; empty means no captions are burned.
	SubtitleFilter string `json:"-"`
	// BaseName seeds the output filename; empty means "recording".
	BaseName string `json:"base_name,omitempty"`
	// Timestamp pins the output filename; the zero value means now.
	Timestamp time.Time `json:"-"`
}

// BuildPlan selects the encoding strategy and parameters for the given
// ranges. Exactly one range yields a single-pass plan; more than one
// yields the two-phase extract/concat/re-encode plan. The resolver owns
// the empty case, so an empty range list here is a caller bug and is
// reported as an error rather than a plan.
func BuildPlan(ranges []export.Range, opts Options) (Plan, error) {
	if len(ranges) == 0 {
		return Plan{}, export.ErrNothingToExport
	}

	container := opts.Container
	if container == "" {
		container = ContainerMP4
	}
	cp, ok := containerTable[container]
	if !ok {
		return Plan{}, fmt.Errorf("unsupported container %q", container)
	}

	tier := opts.Quality
	if tier == "" {
		tier = QualityMedium
	}
	qp, ok := qualityTable[tier]
	if !ok {
		return Plan{}, fmt.Errorf("unsupported quality tier %q", tier)
	}

	strategy := StrategySinglePass
	if len(ranges) > 1 {
		strategy = StrategyTwoPhase
	}

	flags := make([]string, len(cp.Flags))
	copy(flags, cp.Flags)

	return Plan{
		Strategy:       strategy,
		Ranges:         ranges,
		Container:      container,
		VideoCodec:     cp.VideoCodec,
		AudioCodec:     cp.AudioCodec,
		Preset:         qp.Preset,
		CRF:            qp.CRF,
		ContainerFlags: flags,
		SubtitleFilter: opts.SubtitleFilter,
		OutputName:     OutputName(opts.BaseName, opts.Timestamp, container),
	}, nil
}
