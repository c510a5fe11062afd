package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu        sync.Mutex
	logger    *slog.Logger
	logLevel  slog.Level
	logFormat string
	logFile   string
)

// Initialize configures the package logger from the environment.
// LOG_LEVEL (or STINT_DEBUG=1 for DEBUG) selects the level, LOG_FORMAT
// "json" or "text" the handler. Output goes to stderr.
func Initialize() {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return
	}
	logger = build(os.Stderr)
}

// InitializeTUI configures the package logger to write to a log file
// under dataDir instead of stderr, which a full-screen TUI owns.
func InitializeTUI(dataDir string) error {
	logsDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(logsDir, "stint.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	logFile = path
	logger = build(f)
	return nil
}

func build(w io.Writer) *slog.Logger {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		if v := os.Getenv("STINT_DEBUG"); v == "1" || v == "true" {
			levelStr = "DEBUG"
		} else {
			levelStr = "INFO"
		}
	}

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		logLevel = slog.LevelDebug
	case "WARN", "WARNING":
		logLevel = slog.LevelWarn
	case "ERROR":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logFormat = strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "" {
		logFormat = "text"
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// GetLogger returns the package logger, initializing it if needed.
func GetLogger() *slog.Logger {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		Initialize()
		mu.Lock()
		l = logger
		mu.Unlock()
	}
	return l
}

// GetLevel returns the configured log level.
func GetLevel() slog.Level {
	GetLogger()
	return logLevel
}

// GetFormat returns the configured log format.
func GetFormat() string {
	GetLogger()
	return logFormat
}

// GetLogFile returns the log file path, empty when logging to stderr.
func GetLogFile() string {
	mu.Lock()
	defer mu.Unlock()
	return logFile
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
