// Package applog is a small leveled, component-tagged logger writing to
// an io.Writer (stdout by default), used by internal/cli for its error and
// debug lines; the engine packages do not import it.
//
// Adapted from terminal-velocity's internal/logger package: same
// Level/Config/WithComponent shape, trimmed to this module's needs
// (no file rotation — a CLI tool run over one file has no log-rotation
// story of its own) and tagged with engine names instead of
// trading/notification components.
package applog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is a logging severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
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

// ParseLevel converts a string to a Level, defaulting to LevelInfo on an
// unrecognized value.
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

// Config configures a new Logger.
type Config struct {
	Level  string
	Writer io.Writer // defaults to os.Stdout if nil
}

// Logger is a structured, component-tagged logger.
type Logger struct {
	level     Level
	writer    io.Writer
	mu        *sync.Mutex
	component string
}

// New creates a Logger per cfg.
func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	return &Logger{
		level:  ParseLevel(cfg.Level),
		writer: w,
		mu:     &sync.Mutex{},
	}
}

// WithComponent returns a copy of l tagging every line with component,
// e.g. applog.WithComponent("blossomfull").
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		level:     l.level,
		writer:    l.writer,
		mu:        l.mu,
		component: component,
	}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	if l.component != "" {
		fmt.Fprintf(l.writer, "[%s] %s [%s] %s\n", timestamp, level, l.component, msg)
	} else {
		fmt.Fprintf(l.writer, "[%s] %s %s\n", timestamp, level, msg)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(LevelError, format, args...) }
