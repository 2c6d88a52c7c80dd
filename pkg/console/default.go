package console

// The package-level logger gives prism the drop-in ergonomics of a
// log-style API. Init must run before any logging starts, the same
// single-writer-before-any-reader discipline as the threshold itself.

var std = New()

// Init replaces the package-level logger. Call once at process start,
// before any logging.
func Init(opts ...Option) {
	std = New(opts...)
}

// Default returns the package-level logger.
func Default() *Logger { return std }

// Debug logs at LevelDebug on the package-level logger.
func Debug(template string, args ...interface{}) {
	std.Log(LevelDebug, template, args...)
}

// Info logs at LevelInfo on the package-level logger.
func Info(template string, args ...interface{}) {
	std.Log(LevelInfo, template, args...)
}

// Warn logs at LevelWarn on the package-level logger.
func Warn(template string, args ...interface{}) {
	std.Log(LevelWarn, template, args...)
}

// Error logs at LevelError on the package-level logger.
func Error(template string, args ...interface{}) {
	std.Log(LevelError, template, args...)
}

// NewLine writes a bare newline on the package-level logger.
func NewLine(level Level) {
	std.NewLine(level)
}
