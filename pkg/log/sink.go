package log

// Privacy marks whether a payload may appear in plaintext in exported
// system logs.
type Privacy int

const (
	// Private payloads must be redacted on any export path.
	Private Privacy = iota
	// Public payloads may be exported as-is.
	Public
)

func (p Privacy) String() string {
	if p == Public {
		return "public"
	}
	return "private"
}

// OSSink receives fully formatted entries destined for the host
// platform's log store. Implementations must be safe for concurrent use;
// Submit is expected to return quickly and never fail from the caller's
// perspective.
type OSSink interface {
	Submit(severity Severity, payload string, privacy Privacy)
}

// NopSink discards every entry. Use when platform logging is disabled.
// NopSink is safe for concurrent use and usable as a zero value.
type NopSink struct{}

// Submit discards the entry.
func (NopSink) Submit(Severity, string, Privacy) {}

// TeeSink submits each entry to multiple sinks in order. Useful when the
// live console stream and the system log store should both receive
// platform entries.
type TeeSink struct {
	sinks []OSSink
}

// NewTeeSink creates a TeeSink that forwards entries to all provided sinks.
func NewTeeSink(sinks ...OSSink) *TeeSink {
	return &TeeSink{sinks: sinks}
}

// Submit forwards the entry to every configured sink.
func (t *TeeSink) Submit(severity Severity, payload string, privacy Privacy) {
	for _, s := range t.sinks {
		s.Submit(severity, payload, privacy)
	}
}

// Compile-time interface satisfaction checks.
var (
	_ OSSink = NopSink{}
	_ OSSink = (*TeeSink)(nil)
)
