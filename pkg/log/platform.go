package log

import (
	"bytes"
	"fmt"
	"io"
	"log/syslog"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	lsyslog "github.com/sirupsen/logrus/hooks/syslog"
)

const (
	// privacyField carries the per-entry Privacy flag through logrus.
	privacyField = "privacy"
	// redactedPlaceholder replaces private payloads on export paths.
	redactedPlaceholder = "<private>"

	defaultSyslogTag = "emolog"
)

// PlatformConfig controls how entries reach the host log store.
type PlatformConfig struct {
	// Output receives the live entry stream. Defaults to os.Stderr.
	Output io.Writer
	// SyslogEnabled attaches a syslog hook so entries reach the host
	// log store. Export lines for private payloads are redacted.
	SyslogEnabled bool
	// SyslogNetwork and SyslogAddress select the syslog transport.
	// Empty values connect to the local daemon.
	SyslogNetwork string
	SyslogAddress string
	// Tag labels entries in the system log. Defaults to "emolog".
	Tag string
}

// PlatformSink submits entries to the host platform's log store through
// logrus. The platform owns buffering, retention and export; Submit
// never reports errors to the caller.
type PlatformSink struct {
	logger *logrus.Logger
}

// NewPlatformSink creates and configures a platform sink.
func NewPlatformSink(cfg PlatformConfig) (*PlatformSink, error) {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&entryFormatter{})

	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	} else {
		l.SetOutput(os.Stderr)
	}

	if cfg.SyslogEnabled {
		tag := cfg.Tag
		if tag == "" {
			tag = defaultSyslogTag
		}
		hook, err := lsyslog.NewSyslogHook(cfg.SyslogNetwork, cfg.SyslogAddress, syslog.LOG_NOTICE|syslog.LOG_USER, tag)
		if err != nil {
			return nil, fmt.Errorf("error connecting to syslog: %w", err)
		}
		l.AddHook(newRedactingHook(hook))
	}

	return &PlatformSink{logger: l}, nil
}

// Submit hands the entry to logrus at the level derived from severity.
func (s *PlatformSink) Submit(severity Severity, payload string, privacy Privacy) {
	s.logger.WithField(privacyField, privacy).Log(severity.logrusLevel(), payload)
}

// logrusLevel maps the platform severity onto logrus levels. Log() does
// not exit at FatalLevel, only the Fatal helpers do.
func (s Severity) logrusLevel() logrus.Level {
	switch s {
	case SeverityFault:
		return logrus.FatalLevel
	case SeverityError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// entryFormatter renders entries as "[LVL] payload". Payloads carry their
// own terminator, so no newline is appended.
type entryFormatter struct{}

// Format implements the logrus.Formatter interface.
func (f *entryFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	level := strings.ToUpper(entry.Level.String())
	if len(level) > 3 {
		level = level[:3] // Truncate (e.g., ERROR -> ERR)
	}
	fmt.Fprintf(b, "[%s] ", level)

	b.WriteString(entry.Message)
	return b.Bytes(), nil
}

// redactingHook wraps an export hook so private payloads never reach the
// exported log store in plaintext.
type redactingHook struct {
	inner logrus.Hook
}

func newRedactingHook(inner logrus.Hook) logrus.Hook {
	return &redactingHook{inner: inner}
}

// Levels reports the wrapped hook's levels.
func (h *redactingHook) Levels() []logrus.Level {
	return h.inner.Levels()
}

// Fire forwards the entry, substituting the redaction placeholder for
// private payloads.
func (h *redactingHook) Fire(entry *logrus.Entry) error {
	if p, ok := entry.Data[privacyField].(Privacy); ok && p == Private {
		clone := *entry
		clone.Message = redactedPlaceholder
		return h.inner.Fire(&clone)
	}
	return h.inner.Fire(entry)
}

// Compile-time interface satisfaction check.
var _ OSSink = (*PlatformSink)(nil)
