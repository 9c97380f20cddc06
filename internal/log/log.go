// Package log provides the process-wide zap logger. The TUI owns the
// terminal, so output goes to a file rather than stderr.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	baseLogger *zap.Logger
	sugared    *zap.SugaredLogger
)

// Init configures the package-level logger to write to the given file.
func Init(path string, debug bool) error {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	baseLogger = logger
	sugared = logger.Sugar()
	return nil
}

// GetSugaredLogger returns the sugared logger, initializing a no-op logger
// if Init was never called (keeps tests and library use safe).
func GetSugaredLogger() *zap.SugaredLogger {
	if sugared == nil {
		baseLogger = zap.NewNop()
		sugared = baseLogger.Sugar()
	}
	return sugared
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	if baseLogger != nil {
		_ = baseLogger.Sync()
	}
}
