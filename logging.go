package ccircle

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger is what the display and its windows log through.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// DefaultLogger writes debug and info lines to one writer and warnings and
// errors to another, each as "[prefix] LEVEL: message".
type DefaultLogger struct {
	debug  atomic.Bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return newLoggerTo(os.Stdout, os.Stderr, prefix, debug)
}

func newLoggerTo(out, errOut io.Writer, prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	l := &DefaultLogger{
		prefix: prefix,
		out:    log.New(out, "", flags),
		err:    log.New(errOut, "", flags),
	}
	l.debug.Store(debug)
	return l
}

func (l *DefaultLogger) DebugEnabled() bool {
	return l.debug.Load()
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.debug.Store(enabled)
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	l.logf(levelDebug, format, args...)
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.logf(levelInfo, format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.logf(levelWarn, format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.logf(levelError, format, args...)
}

func (l *DefaultLogger) logf(lv level, format string, args ...any) {
	if lv == levelDebug && !l.DebugEnabled() {
		return
	}
	line := levelNames[lv] + ": " + fmt.Sprintf(format, args...)
	if l.prefix != "" {
		line = "[" + l.prefix + "] " + line
	}
	dst := l.out
	if lv >= levelWarn {
		dst = l.err
	}
	dst.Print(line)
}

type nopLogger struct{}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) DebugEnabled() bool    { return false }
func (nopLogger) SetDebug(bool)         {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
