// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Warnf is the one-off form of Logger.Warnf for callers without a Logger.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = warnTag.Fprint(dst, "WARN:")
	_, _ = fmt.Fprintf(dst, " "+format+"\n", a...)
}

var (
	warnTag  = color.New(color.FgYellow, color.Bold)
	debugTag = color.New(color.FgCyan)
	errorTag = color.New(color.FgRed, color.Bold)
)

// DefaultWarnCap is how many warnings of one kind are printed before the
// rest are suppressed.
const DefaultWarnCap = 10

// Logger carries the diagnostics switches of one run. Diagnostics are
// advisory and go to stderr; nothing here affects results.
type Logger struct {
	dst     io.Writer
	quiet   bool
	verbose bool
	cap     int
	counts  map[string]int
}

// NewLogger returns a Logger writing to dst. quiet silences warnings and
// info; verbose enables Debugf.
func NewLogger(dst io.Writer, quiet, verbose bool) *Logger {
	return &Logger{dst: dst, quiet: quiet, verbose: verbose, cap: DefaultWarnCap, counts: map[string]int{}}
}

// SetWarnCap changes the per-kind limit (<= 0 means unlimited).
func (l *Logger) SetWarnCap(n int) { l.cap = n }

func (l *Logger) Verbose() bool { return l.verbose }

// Infof prints a plain progress line.
func (l *Logger) Infof(format string, a ...any) {
	if l.quiet {
		return
	}
	_, _ = fmt.Fprintf(l.dst, format+"\n", a...)
}

// Warnf prints a warning. Warnings sharing kind are capped; the first one
// past the cap prints a suppression notice instead.
func (l *Logger) Warnf(kind, format string, a ...any) {
	n := l.counts[kind]
	l.counts[kind] = n + 1
	if l.quiet {
		return
	}
	switch {
	case l.cap <= 0 || n < l.cap:
		Warnf(l.dst, false, format, a...)
	case n == l.cap:
		Warnf(l.dst, false, "too many %s warnings; suppressing further ones", kind)
	}
}

// Warnings reports how many warnings of kind were raised, printed or not.
func (l *Logger) Warnings(kind string) int { return l.counts[kind] }

// Debugf prints only in verbose mode.
func (l *Logger) Debugf(format string, a ...any) {
	if !l.verbose {
		return
	}
	_, _ = debugTag.Fprint(l.dst, "DEBUG:")
	_, _ = fmt.Fprintf(l.dst, " "+format+"\n", a...)
}

// Errorf prints an error line regardless of quiet.
func (l *Logger) Errorf(format string, a ...any) {
	_, _ = errorTag.Fprint(l.dst, "error:")
	_, _ = fmt.Fprintf(l.dst, " "+format+"\n", a...)
}
