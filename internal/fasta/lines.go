// internal/fasta/lines.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DebugContext is how many lines PrintLines shows on each side of the center.
const DebugContext = 10

// PrintLines writes the physical lines center-context through center+context
// of r, numbered from 1 and quoted so stray control bytes are visible. The
// center line is marked with ">>>". It returns how many lines were written.
func PrintLines(r io.Reader, w io.Writer, center, context int) (int, error) {
	first, last := center-context, center+context
	if first < 1 {
		first = 1
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	n, shown := 0, 0
	for sc.Scan() && n < last {
		n++
		if n < first {
			continue
		}
		marker := "     "
		if n == center {
			marker = " >>> "
		}
		if _, err := fmt.Fprintf(w, "%s%6d: %q\n", marker, n, strings.TrimRight(sc.Text(), "\r")); err != nil {
			return shown, err
		}
		shown++
	}
	return shown, sc.Err()
}
