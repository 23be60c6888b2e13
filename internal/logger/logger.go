// Package logger configures the process-wide slog logger used by the CLI.
// The galaxy core never logs through this package; it receives the
// *slog.Logger returned by GetLogger through its options.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

// OutputFormat selects the log handler.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatColor OutputFormat = "color"
)

// Fields is a set of structured attributes attached to a message.
type Fields map[string]interface{}

var (
	mu         sync.Mutex
	logger     *slog.Logger
	level      = new(slog.LevelVar)
	format     = FormatText
	testOutput io.Writer
	noColor    bool
)

// SetTestOutput redirects log output for tests.
func SetTestOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	testOutput = w
}

// UnsetTestOutput restores the default output.
func UnsetTestOutput() {
	mu.Lock()
	defer mu.Unlock()
	testOutput = nil
}

// DisableColor forces the color format to fall back to plain text.
func DisableColor(disabled bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disabled
}

// ParseLevel maps a level name to a slog level. ok is false for unknown names.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ValidFormat reports whether f names a known format.
func ValidFormat(f string) bool {
	switch OutputFormat(strings.ToLower(f)) {
	case FormatText, FormatJSON, FormatColor:
		return true
	}
	return false
}

// InitLogger (re)initializes the global logger. Unknown levels fall back to info.
func InitLogger(logLevel string, outputFormat OutputFormat) {
	lvl, _ := ParseLevel(logLevel)
	level.Set(lvl)

	mu.Lock()
	defer mu.Unlock()
	if outputFormat != "" {
		format = OutputFormat(strings.ToLower(string(outputFormat)))
	}
	logger = slog.New(newHandler())
}

// SetOutputFormat swaps the handler while keeping the current level.
func SetOutputFormat(outputFormat OutputFormat) {
	mu.Lock()
	defer mu.Unlock()
	format = outputFormat
	logger = slog.New(newHandler())
}

// newHandler must be called with mu held.
func newHandler() slog.Handler {
	out := io.Writer(os.Stderr)
	if testOutput != nil {
		out = testOutput
	}
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(out, opts)
	case FormatColor:
		return tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		})
	default:
		return slog.NewTextHandler(out, opts)
	}
}

// GetLogger returns the configured logger, initializing it on first use.
func GetLogger() *slog.Logger {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		InitLogger("info", FormatText)
		mu.Lock()
		l = logger
		mu.Unlock()
	}
	return l
}

// Info logs an info message.
func Info(msg string, fields ...Fields) {
	GetLogger().Info(msg, mergeFields(fields...)...)
}

// Infof logs a formatted info message.
func Infof(format string, args ...interface{}) {
	GetLogger().Info(fmt.Sprintf(format, args...))
}

// Debug logs a debug message.
func Debug(msg string, fields ...Fields) {
	GetLogger().Debug(msg, mergeFields(fields...)...)
}

// DebugfWithFields logs a formatted debug message with fields.
func DebugfWithFields(fields Fields, format string, args ...interface{}) {
	GetLogger().Debug(fmt.Sprintf(format, args...), mergeFields(fields)...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...Fields) {
	GetLogger().Warn(msg, mergeFields(fields...)...)
}

// Error logs an error message.
func Error(msg string, fields ...Fields) {
	GetLogger().Error(msg, mergeFields(fields...)...)
}

// Success logs an info message tagged with status=success.
func Success(msg string, fields ...Fields) {
	attrs := append(mergeFields(fields...), "status", "success")
	GetLogger().Info(msg, attrs...)
}

func mergeFields(fields ...Fields) []interface{} {
	merged := make(map[string]interface{})
	var order []string
	for _, f := range fields {
		for k, v := range f {
			if _, seen := merged[k]; !seen {
				order = append(order, k)
			}
			merged[k] = v
		}
	}
	result := make([]interface{}, 0, len(order)*2)
	for _, k := range order {
		result = append(result, k, merged[k])
	}
	return result
}
