// Package vitalog implements Vita's logging facility: four severity
// levels plus OUTPUT and OFF (spec.md §6), a level filter, and a
// pluggable io.Writer sink. Grounded on the teacher's stdlib `log`
// package usage gated by a Verbose bool (evolution/engine.go,
// cmd/evolve/main.go); no third-party logging library appears anywhere
// in the retrieval pack, so this stays on the standard library (see
// DESIGN.md/SPEC_FULL.md §10.1).
package vitalog

import (
	"io"
	"log"
	"os"
)

// Level is a logging severity. Levels are ordered; a Logger only emits
// records at or above its configured level, except OUTPUT which always
// prints (it's the user-facing results channel, not diagnostics) and OFF
// which suppresses everything.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	OUTPUT
	OFF
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case OUTPUT:
		return "OUTPUT"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Logger wraps a standard *log.Logger with a level filter. A nil
// *Logger is valid: every logging method on it is a silent no-op.
type Logger struct {
	level Level
	std   *log.Logger
}

// New creates a Logger writing to w at the given minimum level. A nil w
// defaults to os.Stderr.
func New(w io.Writer, level Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{level: level, std: log.New(w, "", log.LstdFlags)}
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || level < l.level || l.level == OFF {
		return
	}
	l.std.Printf("["+level.String()+"] "+format, args...)
}

// Debugf logs at DEBUG.
func (l *Logger) Debugf(format string, args ...any) { l.log(DEBUG, format, args...) }

// Infof logs at INFO.
func (l *Logger) Infof(format string, args ...any) { l.log(INFO, format, args...) }

// Warningf logs at WARNING.
func (l *Logger) Warningf(format string, args ...any) { l.log(WARNING, format, args...) }

// Errorf logs at ERROR.
func (l *Logger) Errorf(format string, args ...any) { l.log(ERROR, format, args...) }

// Outputf always prints (unless the logger's level is OFF): the
// user-facing results channel, distinct from the diagnostic levels.
func (l *Logger) Outputf(format string, args ...any) {
	if l == nil || l.level == OFF {
		return
	}
	l.std.Printf(format, args...)
}
