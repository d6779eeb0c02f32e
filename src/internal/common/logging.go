package common

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// DebugEnvVar enables debug logging for every logger created after it is set
const DebugEnvVar = "LSPWIRE_DEBUG"

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

var logLevelNames = map[LogLevel]string{
	LogDebug: "DEBUG",
	LogInfo:  "INFO",
	LogWarn:  "WARN",
	LogError: "ERROR",
}

// SafeLogger writes to stderr only. Stdout carries framed messages and must
// never see log lines.
type SafeLogger struct {
	mu     sync.Mutex
	prefix string
	level  LogLevel
	out    io.Writer
}

// NewSafeLogger creates a new safe logger with the given prefix
func NewSafeLogger(prefix string) *SafeLogger {
	level := LogInfo
	if debugEnabled() {
		level = LogDebug
	}
	return &SafeLogger{
		prefix: prefix,
		level:  level,
		out:    os.Stderr,
	}
}

func debugEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(DebugEnvVar)))
	return v == "1" || v == "true" || v == "yes"
}

// SetLevel sets the minimum log level
func (l *SafeLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// SetOutput redirects the logger, mostly for tests
func (l *SafeLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

// Enabled reports whether messages at level would be written
func (l *SafeLogger) Enabled(level LogLevel) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

func (l *SafeLogger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006/01/02 15:04:05")
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "%s [%s] %s: %s\n", timestamp, logLevelNames[level], l.prefix, message)
}

// Debug logs a debug message
func (l *SafeLogger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, format, args...)
}

// Info logs an info message
func (l *SafeLogger) Info(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

// Warn logs a warning message
func (l *SafeLogger) Warn(format string, args ...interface{}) {
	l.log(LogWarn, format, args...)
}

// Error logs an error message
func (l *SafeLogger) Error(format string, args ...interface{}) {
	l.log(LogError, format, args...)
}

// Global logger instances for convenience
var (
	WireLogger = NewSafeLogger("Wire")
	CLILogger  = NewSafeLogger("CLI")
)

// SetGlobalLevel adjusts every global logger at once
func SetGlobalLevel(level LogLevel) {
	WireLogger.SetLevel(level)
	CLILogger.SetLevel(level)
}
