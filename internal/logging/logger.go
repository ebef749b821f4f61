package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "CFGEDIT_LOG_LEVEL"

// LogFileEnvVar names the file log output is appended to. Standard output
// carries the edited document and the terminal belongs to the editor, so the
// default destination is stderr.
const LogFileEnvVar = "CFGEDIT_LOG_FILE"

// Options controls logger construction. Empty fields fall back to the
// environment variables.
type Options struct {
	Level string
	File  string
}

// Initialize creates the global logger.
// If no level is given and CFGEDIT_LOG_LEVEL is unset, logging is disabled.
func Initialize(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	file := opts.File
	if file == "" {
		file = os.Getenv(LogFileEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	if file != "" {
		output = file
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	// Colour codes only make sense on a terminal
	if file == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		logger = zap.NewNop()
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so nothing leaks onto stdout
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogInput logs where the item set was read from and how big it is
func LogInput(source string, bytes int, items int) {
	Info("Input loaded",
		zap.String("source", source),
		zap.Int("bytes", bytes),
		zap.Int("items", items),
	)
}

// LogTransition logs a session state change
func LogTransition(from, to string, position int) {
	Debug("Session transition",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("position", position),
	)
}

// LogCommit logs an accepted edit
func LogCommit(name string, kind string, oldValue, newValue string) {
	Info("Item committed",
		zap.String("name", name),
		zap.String("kind", kind),
		zap.String("old", oldValue),
		zap.String("new", newValue),
		zap.Bool("changed", oldValue != newValue),
	)
}

// LogRejected logs an edit that failed validation
func LogRejected(name string, kind string, err error) {
	Warn("Edit rejected",
		zap.String("name", name),
		zap.String("kind", kind),
		zap.Error(err),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
