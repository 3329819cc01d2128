package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Config controls where a Logger writes and how console lines are
// decorated.
type Config struct {
	// Console receives debug console lines. Defaults to os.Stdout.
	Console io.Writer
	// Sink receives platform log entries. Defaults to NopSink.
	Sink OSSink
	// Colorize dims the console timestamp with ANSI colors. Off by
	// default so console output is byte-stable.
	Colorize bool
}

// Logger renders timestamped, emoji-prefixed lines and hands them to the
// console writer and the platform sink. A Logger holds no mutable state
// after construction; concurrent use is as safe as its sinks.
type Logger struct {
	console  io.Writer
	sink     OSSink
	colorize bool

	// consoleEnabled is seeded from the debug build tag. Tests flip it to
	// exercise the console path in release builds.
	consoleEnabled bool
}

// New creates a Logger from cfg, applying defaults for unset fields.
func New(cfg Config) *Logger {
	if cfg.Console == nil {
		cfg.Console = os.Stdout
	}
	if cfg.Sink == nil {
		cfg.Sink = NopSink{}
	}
	return &Logger{
		console:        cfg.Console,
		sink:           cfg.Sink,
		colorize:       cfg.Colorize,
		consoleEnabled: debugConsoleEnabled,
	}
}

// lineOptions holds the per-call formatting overrides.
type lineOptions struct {
	prefix     string
	terminator string
}

// Option adjusts the formatting of a single emitted line.
type Option func(*lineOptions)

// WithPrefix overrides the category emoji with a custom prefix in both
// sinks. No other formatting changes.
func WithPrefix(prefix string) Option {
	return func(o *lineOptions) { o.prefix = prefix }
}

// WithTerminator replaces the default "\n" terminator. An empty string
// removes the trailing line break.
func WithTerminator(terminator string) Option {
	return func(o *lineOptions) { o.terminator = terminator }
}

func buildOptions(opts []Option) lineOptions {
	o := lineOptions{terminator: "\n"}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// DebugConsole writes "{prefix} {timestamp} – {messages}{terminator}" to
// the console writer. It is debug-only instrumentation: without the
// "debug" build tag the call returns immediately. Zero messages still
// produce the prefix and timestamp with the single space before the
// empty join.
func (l *Logger) DebugConsole(category Category, messages []string, opts ...Option) {
	if !l.consoleEnabled {
		return
	}
	o := buildOptions(opts)
	fmt.Fprint(l.console, l.consoleLine(category, messages, o))
}

// OSLog formats "{prefix} - {messages}{terminator}" and submits it to the
// platform sink tagged with the category's severity. The payload is
// always flagged Private; the sink owns timestamping, buffering and
// retention.
func (l *Logger) OSLog(category Category, messages []string, opts ...Option) {
	o := buildOptions(opts)
	l.sink.Submit(category.Severity(), osLine(category, messages, o), Private)
}

func (l *Logger) consoleLine(category Category, messages []string, o lineOptions) string {
	ts := Timestamp()
	if l.colorize {
		ts = color.New(color.Faint).Sprint(ts)
	}
	return glyph(category, o) + " " + ts + " – " + strings.Join(messages, " ") + o.terminator
}

func osLine(category Category, messages []string, o lineOptions) string {
	return glyph(category, o) + " - " + strings.Join(messages, " ") + o.terminator
}

// glyph returns the custom prefix when supplied, the category emoji
// otherwise.
func glyph(category Category, o lineOptions) string {
	if o.prefix != "" {
		return o.prefix
	}
	return category.Emoji()
}

// Timestamp returns the current local time as HH:mm:ss.SSS with
// zero-padded 24-hour fields and millisecond precision.
func Timestamp() string {
	return time.Now().Format("15:04:05.000")
}
