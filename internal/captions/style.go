package captions

import (
	"fmt"
	"strconv"
	"strings"
)

// Style describes how a caption is drawn. Colors use the web
// convention #RRGGBBAA where alpha 255 is opaque; #RRGGBB is accepted
// and treated as fully opaque.
type Style struct {
	FontFamily   string `json:"font_family" validate:"required"`
	FontSize     int    `json:"font_size" validate:"gt=0,lte=200"`
	Color        string `json:"color" validate:"required"`
	Bold         bool   `json:"bold"`
	Italic       bool   `json:"italic"`
	Outline      bool   `json:"outline"`
	OutlineColor string `json:"outline_color,omitempty"`
}

// Position places a caption on a 3x3 alignment grid.
type Position struct {
	Vertical   string `json:"vertical" validate:"oneof=top middle bottom"`
	Horizontal string `json:"horizontal" validate:"oneof=left center right"`
}

// Overrides are the renderer-side parameters for one subtitle track,
// serialized into libass force_style syntax.
type Overrides struct {
	FontName      string
	FontSize      int
	PrimaryColour string
	Bold          bool
	Italic        bool
	Outline       bool
	OutlineColour string
	OutlineWidth  float64
	Alignment     int
}

// outlineWidth is fixed when outlining is enabled; the product exposes
// outline as an on/off toggle, not a slider.
const outlineWidth = 2.0

// DefaultStyle is used when an export carries captions but the first
// caption has no style of its own.
var DefaultStyle = Style{
	FontFamily: "Arial",
	FontSize:   24,
	Color:      "#FFFFFFFF",
}

// DefaultPosition is bottom-center, the conventional subtitle slot.
var DefaultPosition = Position{Vertical: "bottom", Horizontal: "center"}

// BuildOverrides converts one style/position pair into renderer
// override parameters.
//
// The export path applies the first caption's style and position to the
// entire burned-in track even when individual captions differ. That is
// observed product behavior, preserved deliberately; see DESIGN.md.
func BuildOverrides(style Style, pos Position) (Overrides, error) {
	primary, err := assColor(style.Color)
	if err != nil {
		return Overrides{}, fmt.Errorf("caption color: %w", err)
	}

	o := Overrides{
		FontName:      style.FontFamily,
		FontSize:      style.FontSize,
		PrimaryColour: primary,
		Bold:          style.Bold,
		Italic:        style.Italic,
		Alignment:     alignmentCode(pos),
	}

	if style.Outline {
		outlineColor := style.OutlineColor
		if outlineColor == "" {
			outlineColor = "#000000FF"
		}
		oc, err := assColor(outlineColor)
		if err != nil {
			return Overrides{}, fmt.Errorf("outline color: %w", err)
		}
		o.Outline = true
		o.OutlineColour = oc
		o.OutlineWidth = outlineWidth
	}

	return o, nil
}

// TrackOverrides picks the representative style for a caption list:
// the first caption's style/position, with defaults filling any gaps.
func TrackOverrides(captions []Caption) (Overrides, error) {
	style := DefaultStyle
	pos := DefaultPosition
	if len(captions) > 0 {
		if captions[0].Style != nil {
			style = *captions[0].Style
		}
		if captions[0].Position != nil {
			pos = *captions[0].Position
		}
	}
	return BuildOverrides(style, pos)
}

// ForceStyle serializes the overrides as a libass force_style value.
func (o Overrides) ForceStyle() string {
	parts := []string{
		"Fontname=" + o.FontName,
		"Fontsize=" + strconv.Itoa(o.FontSize),
		"PrimaryColour=" + o.PrimaryColour,
		"Bold=" + assBool(o.Bold),
		"Italic=" + assBool(o.Italic),
		"Alignment=" + strconv.Itoa(o.Alignment),
	}
	if o.Outline {
		parts = append(parts,
			"Outline="+strconv.FormatFloat(o.OutlineWidth, 'f', -1, 64),
			"OutlineColour="+o.OutlineColour,
		)
	}
	return strings.Join(parts, ",")
}

// assColor converts #RRGGBB or #RRGGBBAA into libass &HAABBGGRR&
// order. libass alpha runs the opposite way to the web convention:
// 0 is opaque and 255 is fully transparent, so the alpha channel is
// inverted here.
func assColor(hex string) (string, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 && len(s) != 8 {
		return "", fmt.Errorf("invalid hex color %q", hex)
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q", hex)
	}

	var r, g, b, a uint64
	if len(s) == 6 {
		r, g, b, a = v>>16&0xFF, v>>8&0xFF, v&0xFF, 0xFF
	} else {
		r, g, b, a = v>>24&0xFF, v>>16&0xFF, v>>8&0xFF, v&0xFF
	}

	return fmt.Sprintf("&H%02X%02X%02X%02X", 0xFF-a, b, g, r), nil
}

// alignmentCode maps the 3x3 grid to libass numpad alignment (1-9).
// Unknown values fall back to bottom-center.
func alignmentCode(pos Position) int {
	base := 1 // bottom row
	switch pos.Vertical {
	case "middle":
		base = 4
	case "top":
		base = 7
	}

	offset := 1 // center column
	switch pos.Horizontal {
	case "left":
		offset = 0
	case "right":
		offset = 2
	}

	return base + offset
}

func assBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
