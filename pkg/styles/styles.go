// Package styles defines prism's color and font attribute model and its
// serialization to ANSI escape sequences.
//
// A Style is an optional foreground color combined with independent bold,
// italic and underline flags. Styles are parsed from comma-separated token
// lists, the same grammar used inside markup tags and alias registrations:
//
//	red,bold
//	yellow, italic
//	u,cyan
//
// Color names fold spelling synonyms: orange/yellow and purple/magenta
// resolve to the same color. Token names are lower-case only.
package styles

import (
	"strings"

	"github.com/arthur-debert/prism/pkg/errors"
)

// Color is a terminal foreground color. The zero value means "no color".
type Color uint8

const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// Reset clears all active attributes, restoring the terminal default.
const Reset = "\x1b[0m"

// fgCodes maps colors to their ANSI foreground codes. Gray uses the
// bright-black code so it stays readable on dark backgrounds.
var fgCodes = [...]string{
	ColorNone:    "",
	ColorBlack:   "30",
	ColorRed:     "31",
	ColorGreen:   "32",
	ColorYellow:  "33",
	ColorBlue:    "34",
	ColorMagenta: "35",
	ColorCyan:    "36",
	ColorWhite:   "37",
	ColorGray:    "90",
}

var colorNames = map[string]Color{
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"orange":  ColorYellow,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"purple":  ColorMagenta,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"gray":    ColorGray,
}

// ParseColor resolves a color name to its Color value. Synonym spellings
// (orange/yellow, purple/magenta) fold to the same value. Names are
// case-sensitive and lower-case only.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// Name returns the canonical lower-case name of the color, preferring
// "yellow" and "magenta" for the synonym pairs.
func (c Color) Name() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	}
	return "none"
}

// Names returns all nine colors in display order, for palette listings.
func Names() []Color {
	return []Color{
		ColorBlack, ColorRed, ColorGreen, ColorYellow, ColorBlue,
		ColorMagenta, ColorCyan, ColorWhite, ColorGray,
	}
}

// Style combines an optional foreground color with font attribute flags.
type Style struct {
	Color     Color
	Bold      bool
	Italic    bool
	Underline bool
}

// IsZero reports whether the style sets no color and no flags.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Sequence returns the escape sequence that activates the style, or the
// empty string for the zero style. Attributes are emitted in a fixed
// order: bold, italic, underline, color.
func (s Style) Sequence() string {
	var attrs []string
	if s.Bold {
		attrs = append(attrs, "1")
	}
	if s.Italic {
		attrs = append(attrs, "3")
	}
	if s.Underline {
		attrs = append(attrs, "4")
	}
	if s.Color != ColorNone && int(s.Color) < len(fgCodes) {
		attrs = append(attrs, fgCodes[s.Color])
	}
	if len(attrs) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(attrs, ";") + "m"
}

// BadgeSequence returns the escape sequence for a level badge: the given
// background code with the foreground forced to black so the badge text
// stays legible on any color.
func BadgeSequence(bg string) string {
	return "\x1b[0;" + bg + ";38;2;0;0;0m"
}

// ParseSpec parses a comma-separated style token list into a Style.
// Whitespace around tokens is trimmed and empty items are skipped.
// It fails with UNKNOWN_TOKEN for an unrecognized name, MULTIPLE_COLORS
// when the list names more than one color, and INVALID_TOKEN when no
// token survives at all.
func ParseSpec(spec string) (Style, error) {
	var s Style
	colorSet := false
	tokens := 0

	for _, raw := range strings.Split(spec, ",") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		switch tok {
		case "bold", "b":
			s.Bold = true
		case "italic", "i":
			s.Italic = true
		case "underline", "u":
			s.Underline = true
		default:
			c, ok := ParseColor(tok)
			if !ok {
				return Style{}, errors.Newf(errors.ErrUnknownToken,
					"unknown style token %q", tok)
			}
			if colorSet {
				return Style{}, errors.Newf(errors.ErrMultipleColors,
					"style spec %q names more than one color", spec)
			}
			s.Color = c
			colorSet = true
		}
		tokens++
	}

	if tokens == 0 {
		return Style{}, errors.Newf(errors.ErrInvalidToken,
			"empty style spec %q", spec)
	}
	return s, nil
}
