package console

import (
	"strings"

	"github.com/arthur-debert/prism/pkg/errors"
	"github.com/arthur-debert/prism/pkg/styles"
)

// Level is a message severity. It doubles as the verbosity threshold:
// a message is emitted iff its level is at or above the threshold, and a
// threshold of LevelNone suppresses everything.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelNone:  "none",
}

func (l Level) String() string {
	if l < LevelDebug || l > LevelNone {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel resolves one of the five level literals, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "none":
		return LevelNone, nil
	}
	return LevelNone, errors.Newf(errors.ErrInvalidLevel,
		"invalid log level %q (want debug, info, warn, error or none)", s)
}

// Enabled reports whether a message at level l passes threshold.
// Levels outside the debug..error range never pass, so a hand-made
// Level value cannot reach the renderer.
func (l Level) Enabled(threshold Level) bool {
	if threshold == LevelNone || l < LevelDebug || l >= LevelNone {
		return false
	}
	return l >= threshold
}

// levelStyle fixes the visual identity of a level: the badge text, the
// badge background code, and the timestamp and message body colors.
// Info is the one dual-tone level: blue timestamp, white body.
type levelStyle struct {
	badge   string
	badgeBG string
	stamp   styles.Color
	body    styles.Color
}

var levelStyles = [...]levelStyle{
	LevelDebug: {"DBG", "100", styles.ColorGray, styles.ColorGray},
	LevelInfo:  {"LOG", "44", styles.ColorBlue, styles.ColorWhite},
	LevelWarn:  {"WRN", "43", styles.ColorYellow, styles.ColorYellow},
	LevelError: {"ERR", "41", styles.ColorRed, styles.ColorRed},
}

// Badge returns the level's fixed 3-letter badge text.
func (l Level) Badge() string {
	if l < LevelDebug || l > LevelError {
		return ""
	}
	return levelStyles[l].badge
}
