package docx

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	globalLogger     *slog.Logger
	globalLoggerMu   sync.RWMutex
	globalLoggerOnce sync.Once
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		config := GetGlobalConfig()
		globalLoggerMu.Lock()
		globalLogger = NewLogger(os.Stderr, config.LogLevel, config.LogFormat)
		globalLoggerMu.Unlock()
	})
}

// parseLogLevel maps a level name to a slog level. "off" maps to a level
// above every record the package emits.
func parseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	case "off":
		return slog.LevelError + 4, true
	default:
		return slog.LevelInfo, false
	}
}

// NewLogger creates a structured logger writing to w. Unknown levels fall
// back to info; any format other than "json" produces text output.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	lvl, _ := parseLogLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("component", "docx"))
}

// SetLogger replaces the package logger.
func SetLogger(logger *slog.Logger) {
	initGlobalLogger()
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	globalLogger = logger
}

// GetLogger returns the package logger.
func GetLogger() *slog.Logger {
	initGlobalLogger()
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// UpdateLoggerFromConfig rebuilds the global logger from the current global
// configuration.
func UpdateLoggerFromConfig() {
	config := GetGlobalConfig()
	SetLogger(NewLogger(os.Stderr, config.LogLevel, config.LogFormat))
}
