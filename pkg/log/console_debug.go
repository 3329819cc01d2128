//go:build debug

package log

// debugConsoleEnabled compiles the console emission path in. Built only
// with the "debug" tag.
const debugConsoleEnabled = true
