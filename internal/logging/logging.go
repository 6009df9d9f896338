// Package logging provides a small leveled logger. Interactive sessions own
// the terminal, so output is usually routed to a file or discarded.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	levelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name. Unknown names map to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped lines tagged with a component name.
type Logger struct {
	mu        *sync.Mutex
	level     Level
	output    io.Writer
	component string
}

// New creates a logger writing to stderr.
func New(level Level) *Logger {
	return &Logger{mu: &sync.Mutex{}, level: level, output: os.Stderr}
}

// Open creates a logger appending to path. The returned closer releases the file.
func Open(path string, level Level) (*Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(level)
	l.output = f
	return l, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{mu: &sync.Mutex{}, level: levelOff, output: io.Discard}
}

// With returns a logger sharing this one's output, tagged with component.
func (l *Logger) With(component string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{mu: l.mu, level: l.level, output: l.output, component: component}
}

// SetOutput sets the log output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	if l.component != "" {
		b.WriteString(l.component)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')

	_, _ = io.WriteString(l.output, b.String())
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}
