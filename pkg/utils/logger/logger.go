// The package logger defines a simple logger with DEBUG, INFO, WARN and ERROR prints.
package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync/atomic"
)

type Aggregate struct {
	DebugLogger *log.Logger
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger

	debug atomic.Bool
}

// New() returns an initialized Logger. Debug prints are disabled until SetDebug(true).
func New(out io.Writer) *Aggregate {
	return &Aggregate{
		DebugLogger: log.New(out, "DEBUG: ", log.LstdFlags),
		InfoLogger:  log.New(out, "INFO: ", log.LstdFlags),
		WarnLogger:  log.New(out, "WARN: ", log.LstdFlags),
		ErrorLogger: log.New(out, "ERROR: ", log.LstdFlags),
	}
}

// SetDebug() enables or disables the DEBUG prints.
func (l *Aggregate) SetDebug(enabled bool) {
	l.debug.Store(enabled)
}

// Debug() prints a DEBUG log, if enabled
func (l *Aggregate) Debug(s string, v ...interface{}) {
	if !l.debug.Load() {
		return
	}
	l.DebugLogger.Printf(s, v...)
}

// Info() prints an INFO log
func (l *Aggregate) Info(s string, v ...interface{}) {
	l.InfoLogger.Printf(s, v...)
}

// Warn() prints an WARN log
func (l *Aggregate) Warn(s string, v ...interface{}) {
	l.WarnLogger.Printf(s, v...)
}

// Error() prints an ERROR log
func (l *Aggregate) Error(s string, v ...interface{}) {
	l.ErrorLogger.Printf(s, v...)
}

// Leveled wraps an Aggregate to print messages followed by key-value pairs,
// the format used by leveled loggers of third-party libraries (e.g. retryablehttp).
type Leveled struct {
	*Aggregate
}

func (l Leveled) Debug(msg string, keysAndValues ...interface{}) {
	l.Aggregate.Debug("%s", formatPairs(msg, keysAndValues))
}

func (l Leveled) Info(msg string, keysAndValues ...interface{}) {
	l.Aggregate.Info("%s", formatPairs(msg, keysAndValues))
}

func (l Leveled) Warn(msg string, keysAndValues ...interface{}) {
	l.Aggregate.Warn("%s", formatPairs(msg, keysAndValues))
}

func (l Leveled) Error(msg string, keysAndValues ...interface{}) {
	l.Aggregate.Error("%s", formatPairs(msg, keysAndValues))
}

// formatPairs() returns "msg key1=val1 key2=val2". A trailing key without value is printed as is.
func formatPairs(msg string, keysAndValues []interface{}) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 == len(keysAndValues) {
			fmt.Fprintf(&b, " %v", keysAndValues[i])
			break
		}
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	return b.String()
}
