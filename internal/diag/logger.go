// Package diag provides verbose tracing for the parse/compact/compile
// pipeline, in the same shape as the teacher's per-stage compiler logger:
// silent by default, opt-in via a single enabled flag, one prefix tag per
// line.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Logger traces builder transitions and sequence-engine decisions when
// enabled; the compactor does not log. A disabled Logger costs one branch
// per call.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a new logger instance. When enabled is false every
// method is a no-op.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[regenum] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n[regenum] === %s ===\n", name)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
