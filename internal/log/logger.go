// Package log provides dg's file logger. The package-level helpers write
// through a process-wide zap logger; before Init (or when logging is
// disabled) they are no-ops, so library code can log unconditionally.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel converts a string to a zap level. Valid values: "debug",
// "info", "warn", "error" (case insensitive). Unrecognized strings map to
// warn.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
)

// Init initializes the global logger writing to the given file. The log
// directory is created with restrictive permissions.
func Init(logPath string, level zapcore.Level) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(file),
		level,
	)

	mu.Lock()
	logger = zap.New(core).Sugar()
	mu.Unlock()
	return nil
}

// Set installs an already-built logger; used by tests.
func Set(l *zap.SugaredLogger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Sync flushes buffered entries. Safe to call on a nil logger.
func Sync() {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		_ = l.Sync()
	}
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a formatted debug message.
func Debug(format string, args ...any) {
	if l := get(); l != nil {
		l.Debugf(format, args...)
	}
}

// Info logs a formatted info message.
func Info(format string, args ...any) {
	if l := get(); l != nil {
		l.Infof(format, args...)
	}
}

// Warn logs a formatted warning.
func Warn(format string, args ...any) {
	if l := get(); l != nil {
		l.Warnf(format, args...)
	}
}

// Error logs a formatted error.
func Error(format string, args ...any) {
	if l := get(); l != nil {
		l.Errorf(format, args...)
	}
}
