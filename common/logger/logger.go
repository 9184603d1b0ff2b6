// Package logger provides a leveled logging facade for the careline core.
// It wraps a zap sugared logger so packages can log without threading a
// logger through every constructor.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
)

func init() {
	l, _ := zap.NewProduction(zap.AddCallerSkip(2))
	sugar = l.Sugar()
}

// Init replaces the process logger with one at the given level.
// Level is one of: debug, info, warn, error. Unknown values keep info.
func Init(level string) error {
	cfg := zap.NewProductionConfig()
	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	l, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return err
	}
	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
	return nil
}

// Replace installs a custom logger, returning the previous one.
// Tests use this to capture or silence output.
func Replace(l *zap.Logger) *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	prev := sugar
	sugar = l.Sugar()
	return prev
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Debugf logs a debug message.
func Debugf(format string, args ...interface{}) { get().Debugf(format, args...) }

// Infof logs an info message.
func Infof(format string, args ...interface{}) { get().Infof(format, args...) }

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) { get().Warnf(format, args...) }

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) { get().Errorf(format, args...) }

// Sync flushes buffered log entries.
func Sync() { _ = get().Sync() }
