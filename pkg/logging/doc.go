// Package logging provides structured logging utilities shared by the
// catalog generator components.
//
// It wraps the standard library slog package with project defaults:
// JSON output to stderr, environment-based level configuration (LOG_LEVEL),
// module/version context on every record, and source location tracking for
// debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("aslo", version)
//
//	    slog.Info("processing bundle", "path", path)
//	    slog.Error("extraction failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("aslo", version, "debug")
//
// Supported levels (case-insensitive): DEBUG, INFO (default), WARN/WARNING,
// ERROR.
package logging
