// internal/table/sniff.go
package table

import (
	"bytes"
	"errors"
)

// ErrNoDelimiter is returned when no candidate delimiter occurs in the sample.
var ErrNoDelimiter = errors.New("could not determine delimiter")

// sniffCandidates in order of preference.
var sniffCandidates = []byte{'\t', ',', ';', '|', ':', ' '}

// Sniff guesses the delimiter of a sample. A candidate that occurs the same
// non-zero number of times on every complete line wins (earliest candidate
// first); failing that, the most frequent candidate wins.
func Sniff(sample []byte) (rune, error) {
	lines := bytes.Split(sample, []byte("\n"))
	// The last line of a truncated sample is partial.
	if len(lines) > 1 && len(sample) >= SniffSize && !bytes.HasSuffix(sample, []byte("\n")) {
		lines = lines[:len(lines)-1]
	}
	var kept [][]byte
	for _, ln := range lines {
		ln = bytes.TrimRight(ln, "\r")
		if len(bytes.TrimSpace(ln)) > 0 {
			kept = append(kept, ln)
		}
	}
	if len(kept) == 0 {
		return 0, ErrNoDelimiter
	}

	best, bestTotal := byte(0), 0
	for _, c := range sniffCandidates {
		first := bytes.Count(kept[0], []byte{c})
		consistent := first > 0
		total := 0
		for _, ln := range kept {
			n := bytes.Count(ln, []byte{c})
			total += n
			if n != first {
				consistent = false
			}
		}
		if consistent {
			return rune(c), nil
		}
		if total > bestTotal {
			best, bestTotal = c, total
		}
	}
	if bestTotal == 0 {
		return 0, ErrNoDelimiter
	}
	return rune(best), nil
}
