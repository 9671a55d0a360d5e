// Package log provides context-aware diagnostic logging for husky.
// All output goes to stderr; stdout is reserved for primary data
// (see the output package).
package log

import (
	"context"
	"fmt"
	"io"
)

type ctxKey struct{}

// Logger writes diagnostics with verbose/quiet gating.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a logger. With quiet set, everything except nothing is
// suppressed; with verbose set, Debugf output is included.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted diagnostic output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Warnf writes a warning line.
func (l *Logger) Warnf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "Warning: "+format+"\n", args...)
}

// Debugf writes a line only when verbose mode is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose || l.quiet {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Verbose reports whether verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
