// internal/pipeline/pipeline.go
package pipeline

// Logger receives run diagnostics. *cmdutil.Logger satisfies it.
type Logger interface {
	Debugf(format string, a ...any)
	Warnf(kind, format string, a ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Warnf(string, string, ...any) {}

func orNop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}

// Warning kinds; each kind is capped separately by the logger.
const (
	WarnNoKey   = "no-key"
	WarnOrphan  = "orphan"
	WarnRagged  = "ragged"
	WarnNoMatch = "no-match"
)

// debugSamples is how many per-row examples verbose runs print.
const debugSamples = 5

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
