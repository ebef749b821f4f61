// Package logging provides structured logging for cfgedit.
//
// This package wraps the zap logger with a package-level instance and a few
// helpers for the events an editing session produces. Logging is silent by
// default: the edited document is written to stdout and the terminal is owned
// by the editor, so nothing may be printed unless explicitly requested.
//
// # Log Levels
//
//   - Debug: Session state transitions
//   - Info: Input loaded, edits committed
//   - Warn: Edits rejected by validation
//   - Error: Failures that end the session
//
// # Configuration
//
// Set CFGEDIT_LOG_LEVEL (or pass --log-level) to enable output and
// CFGEDIT_LOG_FILE (or --log-file) to redirect it from stderr to a file:
//
//	CFGEDIT_LOG_LEVEL=debug CFGEDIT_LOG_FILE=/tmp/cfgedit.log cfgedit --file items.json
//
// Initialize once at startup:
//
//	if err := logging.Initialize(logging.Options{Level: level}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Info("Input loaded",
//	    zap.String("source", "file"),
//	    zap.Int("items", 5),
//	)
package logging
