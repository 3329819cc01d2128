// Package log formats messages with a category-derived emoji and emits
// them to a console writer and to the host platform's log store.
//
// Each line is classified by a Category which fixes its emoji prefix and
// the severity submitted to the platform sink. The package keeps no state
// between calls; thread safety is delegated to the sinks.
//
// # Basic Usage
//
//	sink, err := log.NewPlatformSink(log.PlatformConfig{SyslogEnabled: true})
//	if err != nil {
//		// syslog daemon unreachable
//	}
//	logger := log.New(log.Config{Sink: sink})
//
//	logger.OSLog(log.CategoryInfo, []string{"service", "started"})
//	logger.DebugConsole(log.CategoryDebug, []string{"loaded", "config"})
//
// Multiple sinks compose with NewTeeSink; NopSink disables platform
// output entirely.
//
// # Debug Console
//
// DebugConsole is instrumentation for debug builds only. It compiles to
// an immediate return unless the binary is built with the "debug" tag:
//
//	go build -tags debug ./...
//
// # Privacy
//
// Every payload is submitted to the platform sink with the Private flag.
// PlatformSink replaces private payloads with "<private>" on the syslog
// export path so message content never reaches exported system logs in
// plaintext.
package log
