// Package logger provides conditional debug output.
package logger

import (
	"fmt"
	"io"
)

// Logger writes "[debug]: " prefixed lines when enabled.
// The zero value is a disabled logger.
type Logger struct {
	enabled bool
	w       io.Writer
}

// New returns a Logger writing to w when enabled is true.
func New(w io.Writer, enabled bool) Logger {
	return Logger{enabled: enabled && w != nil, w: w}
}

// Enabled reports whether output is written.
func (l Logger) Enabled() bool {
	return l.enabled
}

// Printf prints a debug line if logging is enabled. A trailing newline is added.
func (l Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}

	fmt.Fprintf(l.w, "[debug]: "+format+"\n", args...)
}
