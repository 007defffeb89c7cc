// Package encoding turns resolved export ranges plus the user's format
// and quality choices into a concrete encoding plan: which strategy to
// run, which codecs and container flags to use, and what the output
// file is called. The plan is a pure value; executing it is the
// encoder's job.
package encoding

import "github.com/Enriquefft/poor-mans-loom-agent/internal/export"

// Strategy selects how the ranges are rendered.
type Strategy int

const (
	// StrategySinglePass seeks and cuts one range in a single encode.
	StrategySinglePass Strategy = iota
	// StrategyTwoPhase stream-copies each range losslessly, then
	// concatenates the intermediates and re-encodes exactly once. The
	// re-encode is the expensive step; doing it once bounds total work
	// by exported duration rather than by range count.
	StrategyTwoPhase
)

func (s Strategy) String() string {
	if s == StrategyTwoPhase {
		return "two_phase"
	}
	return "single_pass"
}

// Container is the output file format.
type Container string

const (
	ContainerMP4  Container = "mp4"
	ContainerWebM Container = "webm"
)

// QualityTier is the user-facing quality choice. Each tier is a fixed
// speed-preset and quality-factor pair, looked up, never computed.
type QualityTier string

const (
	QualityLow    QualityTier = "low"
	QualityMedium QualityTier = "medium"
	QualityHigh   QualityTier = "high"
)

type qualityParams struct {
	Preset string
	CRF    int
}

var qualityTable = map[QualityTier]qualityParams{
	QualityLow:    {Preset: "ultrafast", CRF: 32},
	QualityMedium: {Preset: "veryfast", CRF: 28},
	QualityHigh:   {Preset: "medium", CRF: 23},
}

type containerParams struct {
	VideoCodec string
	AudioCodec string
	// Extra output flags, e.g. progressive-playback metadata placement
	// for MP4.
	Flags []string
}

var containerTable = map[Container]containerParams{
	ContainerMP4:  {VideoCodec: "libx264", AudioCodec: "aac", Flags: []string{"-movflags", "+faststart"}},
	ContainerWebM: {VideoCodec: "libvpx-vp9", AudioCodec: "libopus", Flags: []string{"-row-mt", "1"}},
}

// Plan is the one-shot contract handed to the encoder. It is computed
// fresh for every export request; there is no incremental replanning.
type Plan struct {
	Strategy       Strategy       `json:"strategy"`
	Ranges         []export.Range `json:"ranges"`
	Container      Container      `json:"container"`
	VideoCodec     string         `json:"video_codec"`
	AudioCodec     string         `json:"audio_codec"`
	Preset         string         `json:"preset"`
	CRF            int            `json:"crf"`
	ContainerFlags []string       `json:"container_flags,omitempty"`
	// SubtitleFilter is the ffmpeg filter string burning captions in,
	// applied exactly once during the (final) encode. Empty means no
	// burn-in.
	SubtitleFilter string `json:"subtitle_filter,omitempty"`
	OutputName     string `json:"output_name"`
}
