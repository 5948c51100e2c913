// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Stats report registry (format → handler). Handlers register in init().
var StatsWriters = map[string]func(w io.Writer, r StatsReport) error{}

// RegisterStats adds or replaces a handler (last wins).
func RegisterStats(format string, fn func(io.Writer, StatsReport) error) { StatsWriters[format] = fn }

// StatsFormats lists the registered formats, sorted.
func StatsFormats() []string {
	out := make([]string, 0, len(StatsWriters))
	for f := range StatsWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteStats dispatches to the handler registered for format.
func WriteStats(format string, w io.Writer, r StatsReport) error {
	fn, ok := StatsWriters[format]
	if !ok {
		return fmt.Errorf("unknown stats format %q (no writer registered)", format)
	}
	return fn(w, r)
}
