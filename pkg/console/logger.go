// Package console implements prism's leveled, colorized console logger:
// a badge, a timestamp and an inline-markup message body, written
// synchronously to standard output or standard error.
//
//	logger := console.New(console.WithThreshold(console.LevelInfo))
//	logger.Info("User <bold>{}</> logged in", name)
//
// Messages below the threshold cost a single comparison; no formatting,
// timestamp or markup work happens for them.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/prism/pkg/aliases"
	"github.com/arthur-debert/prism/pkg/format"
	"github.com/arthur-debert/prism/pkg/logging"
	"github.com/arthur-debert/prism/pkg/markup"
	"github.com/arthur-debert/prism/pkg/styles"
)

// timestampLayout renders 2006.01.02 15:04:05.000, zero-padded,
// 24-hour clock, milliseconds to three digits.
const timestampLayout = "2006.01.02 15:04:05.000"

// Logger renders leveled messages. The threshold and writers are fixed
// at construction; only the alias registry it consults is mutable, and
// that carries its own lock. Render calls from multiple goroutines are
// serialized around the final write so lines never interleave.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	errOut    io.Writer
	threshold Level
	registry  *aliases.Registry
	color     bool
	now       func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithThreshold sets the minimum level that produces output.
func WithThreshold(threshold Level) Option {
	return func(l *Logger) { l.threshold = threshold }
}

// WithWriters replaces the standard output and error writers.
func WithWriters(out, errOut io.Writer) Option {
	return func(l *Logger) {
		l.out = out
		l.errOut = errOut
	}
}

// WithRegistry sets the alias registry consulted during markup parsing.
func WithRegistry(r *aliases.Registry) Option {
	return func(l *Logger) { l.registry = r }
}

// WithColor forces escape sequences on or off, overriding detection.
func WithColor(enabled bool) Option {
	return func(l *Logger) { l.color = enabled }
}

// WithClock replaces the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// New returns a Logger writing to stdout and stderr with a debug
// threshold, the process-wide alias registry and auto-detected color.
func New(opts ...Option) *Logger {
	l := &Logger{
		out:       os.Stdout,
		errOut:    os.Stderr,
		threshold: LevelDebug,
		registry:  aliases.Default(),
		color:     DetectColor(os.Stdout),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DetectColor reports whether escape sequences should be emitted on w.
// It honors NO_COLOR, requires a terminal, and rejects terminals whose
// profile cannot render color at all.
func DetectColor(w io.Writer) bool {
	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// Threshold returns the logger's verbosity threshold.
func (l *Logger) Threshold() Level { return l.threshold }

// Log renders a single message at level, interpolating {} placeholders
// from args. Below-threshold calls return before any work is done.
func (l *Logger) Log(level Level, template string, args ...interface{}) {
	if !level.Enabled(l.threshold) {
		return
	}
	l.emit(level, format.Interpolate(template, args...))
}

// Logf is Log with fmt-style formatting instead of {} placeholders.
func (l *Logger) Logf(level Level, formatStr string, args ...interface{}) {
	if !level.Enabled(l.threshold) {
		return
	}
	l.emit(level, fmt.Sprintf(formatStr, args...))
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(template string, args ...interface{}) {
	l.Log(LevelDebug, template, args...)
}

// Info logs at LevelInfo.
func (l *Logger) Info(template string, args ...interface{}) {
	l.Log(LevelInfo, template, args...)
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(template string, args ...interface{}) {
	l.Log(LevelWarn, template, args...)
}

// Error logs at LevelError.
func (l *Logger) Error(template string, args ...interface{}) {
	l.Log(LevelError, template, args...)
}

// Debugf logs at LevelDebug with fmt-style formatting.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(LevelDebug, format, args...)
}

// Infof logs at LevelInfo with fmt-style formatting.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(LevelInfo, format, args...)
}

// Warnf logs at LevelWarn with fmt-style formatting.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Logf(LevelWarn, format, args...)
}

// Errorf logs at LevelError with fmt-style formatting.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(LevelError, format, args...)
}

// NewLine writes a bare newline with no badge, timestamp or styling,
// still subject to the threshold gate at the given level.
func (l *Logger) NewLine(level Level) {
	if !level.Enabled(l.threshold) {
		return
	}
	l.write(level, "\n")
}

// emit renders an already-interpolated message and writes it out.
func (l *Logger) emit(level Level, msg string) {
	ls := levelStyles[level]
	ts := l.now().Format(timestampLayout)

	if !l.color {
		line := ls.badge + " [" + ts + "] " + markup.StripTags(msg, l.registry) + "\n"
		l.write(level, line)
		return
	}

	bodySeq := styles.Style{Color: ls.body}.Sequence()
	expanded, err := markup.Expand(msg, bodySeq, l.registry)
	if err != nil {
		// degraded markup is a content problem, not a render failure:
		// report it on the diagnostics channel and keep going
		log := logging.GetLogger("console")
		log.Debug().Err(err).Str("template", msg).Msg("markup degraded to literal text")
	}

	var b strings.Builder
	b.Grow(len(expanded) + 48)
	b.WriteString(styles.BadgeSequence(ls.badgeBG))
	b.WriteString(" ")
	b.WriteString(ls.badge)
	b.WriteString(" ")
	b.WriteString(styles.Reset)
	b.WriteString(" ")
	b.WriteString(styles.Style{Color: ls.stamp}.Sequence())
	b.WriteString("[")
	b.WriteString(ts)
	b.WriteString("] ")
	b.WriteString(bodySeq)
	b.WriteString(expanded)
	b.WriteString(" ")
	b.WriteString(styles.Reset)
	b.WriteString("\n")

	l.write(level, b.String())
}

// write routes the line to stdout, or stderr for errors, under the
// logger's lock. A failed write is reported to diagnostics only; logging
// must never take the host application down.
func (l *Logger) write(level Level, line string) {
	w := l.out
	if level == LevelError {
		w = l.errOut
	}

	l.mu.Lock()
	_, err := io.WriteString(w, line)
	l.mu.Unlock()

	if err != nil {
		log := logging.GetLogger("console")
		log.Debug().Err(err).Msg("console write failed")
	}
}
