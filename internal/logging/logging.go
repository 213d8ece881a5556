package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

const (
	appName         = "tmux-dashboard"
	defaultLogFile  = appName + ".log"
	traceTimeFormat = time.RFC3339Nano
)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	level        = log.InfoLevel
)

// DefaultPath returns the log file under the XDG state directory, creating
// the parent directory. It falls back to the working directory.
func DefaultPath() string {
	path, err := xdg.StateFile(filepath.Join(appName, defaultLogFile))
	if err != nil {
		return defaultLogFile
	}
	return path
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = DefaultPath()
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path reports the active log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// SetDebug lowers the level so Debug lines are written.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	if enabled {
		level = log.DebugLevel
	} else {
		level = log.InfoLevel
	}
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Error writes err to the shared log file.
func Error(err error, keyvals ...interface{}) {
	if err == nil {
		return
	}
	write(log.TextFormatter, func(l *log.Logger) { l.Error(err.Error(), keyvals...) })
}

func Warn(msg string, keyvals ...interface{}) {
	write(log.TextFormatter, func(l *log.Logger) { l.Warn(msg, keyvals...) })
}

func Info(msg string, keyvals ...interface{}) {
	write(log.TextFormatter, func(l *log.Logger) { l.Info(msg, keyvals...) })
}

func Debug(msg string, keyvals ...interface{}) {
	write(log.TextFormatter, func(l *log.Logger) { l.Debug(msg, keyvals...) })
}

// Trace appends a structured JSON entry to the shared log when tracing is
// enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	write(log.JSONFormatter, func(l *log.Logger) {
		if payload == nil {
			l.Info(event)
			return
		}
		l.Info(event, "payload", payload)
	})
}

func write(formatter log.Formatter, emit func(*log.Logger)) {
	mu.Lock()
	defer mu.Unlock()
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	emit(newLogger(f, formatter))
}

func newLogger(w io.Writer, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      traceTimeFormat,
		Prefix:          appName,
		Level:           level,
		Formatter:       formatter,
	})
}
