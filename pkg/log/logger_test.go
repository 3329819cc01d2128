package log

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timestampPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3}$`)

// debugLogger returns a Logger with the console path forced on so the
// format can be asserted without the debug build tag.
func debugLogger(console *bytes.Buffer, sink OSSink) *Logger {
	l := New(Config{Console: console, Sink: sink})
	l.consoleEnabled = true
	return l
}

func TestTimestampFormat(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Regexp(t, timestampPattern, Timestamp())
	}
}

func TestDebugConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := debugLogger(&buf, NopSink{})

	logger.DebugConsole(CategoryInfo, []string{"a", "b"})

	assert.Regexp(t, `^ℹ️ \d{2}:\d{2}:\d{2}\.\d{3} – a b\n$`, buf.String())
}

func TestDebugConsoleZeroMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := debugLogger(&buf, NopSink{})

	logger.DebugConsole(CategoryInfo, nil)

	// Only prefix and timestamp, with the space before the empty join.
	assert.Regexp(t, `^ℹ️ \d{2}:\d{2}:\d{2}\.\d{3} – \n$`, buf.String())
}

func TestDebugConsoleDisabledInReleaseBuilds(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Console: &buf, Sink: NopSink{}})
	logger.consoleEnabled = false

	logger.DebugConsole(CategoryFailure, []string{"never", "shown"})

	assert.Empty(t, buf.String())
}

func TestOSLogFormatAndSeverity(t *testing.T) {
	sink := &captureSink{}
	logger := New(Config{Console: &bytes.Buffer{}, Sink: sink})

	logger.OSLog(CategoryFailure, []string{"hello"})

	require.Len(t, sink.entries, 1)
	e := sink.entries[0]
	assert.Equal(t, "❌ - hello\n", e.payload)
	assert.Equal(t, SeverityError, e.severity)
	assert.Equal(t, Private, e.privacy)
}

func TestOSLogZeroMessages(t *testing.T) {
	sink := &captureSink{}
	logger := New(Config{Sink: sink})

	logger.OSLog(CategoryDefault, nil)

	require.Len(t, sink.entries, 1)
	assert.Equal(t, "🔹 - \n", sink.entries[0].payload)
}

func TestPrefixOverridesEmojiInBothSinks(t *testing.T) {
	var buf bytes.Buffer
	sink := &captureSink{}
	logger := debugLogger(&buf, sink)

	logger.DebugConsole(CategoryInfo, []string{"x"}, WithPrefix("→"))
	logger.OSLog(CategoryInfo, []string{"x"}, WithPrefix("→"))

	assert.Regexp(t, `^→ \d{2}:\d{2}:\d{2}\.\d{3} – x\n$`, buf.String())
	require.Len(t, sink.entries, 1)
	assert.Equal(t, "→ - x\n", sink.entries[0].payload)
	// Severity still derives from the category, not the prefix.
	assert.Equal(t, SeverityDefault, sink.entries[0].severity)
}

func TestEmptyTerminator(t *testing.T) {
	var buf bytes.Buffer
	sink := &captureSink{}
	logger := debugLogger(&buf, sink)

	logger.DebugConsole(CategoryDebug, []string{"no", "newline"}, WithTerminator(""))
	logger.OSLog(CategoryDebug, []string{"no", "newline"}, WithTerminator(""))

	assert.Regexp(t, `^🐞 \d{2}:\d{2}:\d{2}\.\d{3} – no newline$`, buf.String())
	require.Len(t, sink.entries, 1)
	assert.Equal(t, "🐞 - no newline", sink.entries[0].payload)
}

func TestCustomTerminator(t *testing.T) {
	sink := &captureSink{}
	logger := New(Config{Sink: sink})

	logger.OSLog(CategoryFault, []string{"boom"}, WithTerminator("\r\n"))

	require.Len(t, sink.entries, 1)
	assert.Equal(t, "💥 - boom\r\n", sink.entries[0].payload)
	assert.Equal(t, SeverityFault, sink.entries[0].severity)
}

func TestNewDefaults(t *testing.T) {
	logger := New(Config{})

	// Defaults must be usable without panicking; console is gated off in
	// release builds and the sink defaults to NopSink.
	logger.OSLog(CategoryInfo, []string{"defaults"})
	logger.DebugConsole(CategoryInfo, []string{"defaults"})
}
