// Package logging adds an opt-in debug level on top of the standard logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is a *log.Logger that also knows whether debug output is wanted.
type Logger struct {
	*log.Logger
	debug bool
}

// New writes to out, or os.Stderr when out is nil.
func New(out io.Writer, debug bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{Logger: log.New(out, "", log.LstdFlags), debug: debug}
}

// Std wraps the process-wide standard logger, so redirections made with
// log.SetOutput (for example by tea.LogToFile) are honoured.
func Std(debug bool) *Logger {
	return &Logger{Logger: log.Default(), debug: debug}
}

// Discard drops everything.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard, "", 0)}
}

// Debugf logs only when debug output is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.debug {
		return
	}
	_ = l.Output(2, "debug: "+fmt.Sprintf(format, args...))
}

// DebugEnabled reports whether Debugf writes anything.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.debug
}

// Or returns l, or the standard logger when l is nil.
func (l *Logger) Or() *Logger {
	if l == nil {
		return Std(false)
	}
	return l
}
