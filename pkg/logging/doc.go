// Package logging provides structured logging utilities for wellscan components.
//
// This package wraps the standard library slog package with wellscan-specific
// defaults: JSON output to stderr, module/version context on every record,
// environment-based level configuration (LOG_LEVEL), and source location
// tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("wellscan", version)
//
//	    slog.Info("scan starting", "cluster", clusterName)
//	    slog.Debug("resolved property", "path", path, "value", actual)
//	    slog.Error("scan failed", "error", err)
//	}
//
// The LOG_LEVEL environment variable controls verbosity:
//
//	LOG_LEVEL=debug wellscan scan -s snapshot.yaml
//
// Supported levels (case-insensitive): DEBUG, INFO (default), WARN/WARNING, ERROR.
package logging
