//go:build !debug

package log

// debugConsoleEnabled is false in release builds, reducing DebugConsole
// to an immediate return.
const debugConsoleEnabled = false
