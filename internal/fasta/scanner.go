// internal/fasta/scanner.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"seqjoin/internal/key"
)

// Record is one FASTA entry. Header excludes the leading '>'; Seq is the
// trimmed body lines joined with no separator.
type Record struct {
	Header string
	Key    key.Key
	Seq    []byte
}

// Scanner reads Records from a FASTA stream in a single forward pass.
// Blank lines are ignored wherever they occur. Body lines seen before the
// first header belong to no record and are only counted (see Orphans).
type Scanner struct {
	sc       *bufio.Scanner
	strategy key.Strategy

	header   string
	inRecord bool
	seq      []byte

	rec     Record
	line    int
	orphans int
	err     error
	done    bool
}

// NewScanner wraps r. Keys are derived from each header with strategy.
func NewScanner(r io.Reader, strategy key.Strategy) *Scanner {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return &Scanner{sc: sc, strategy: strategy, seq: make([]byte, 0, 1<<16)}
}

// Scan advances to the next record. It returns false at end of input or on a
// read error; check Err afterwards.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for s.sc.Scan() {
		s.line++
		line := bytes.TrimSpace(s.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			hdr := string(bytes.TrimSpace(line[1:]))
			if s.inRecord {
				s.flush()
				s.header = hdr
				return true
			}
			s.header, s.inRecord = hdr, true
			continue
		}
		if !s.inRecord {
			s.orphans++
			continue
		}
		s.seq = append(s.seq, line...)
	}
	s.done = true
	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("fasta scan (line %d): %w", s.line, err)
		return false
	}
	if s.inRecord {
		s.flush()
		s.inRecord = false
		return true
	}
	return false
}

func (s *Scanner) flush() {
	s.rec = Record{
		Header: s.header,
		Key:    key.Extract(s.strategy, s.header),
		Seq:    append([]byte(nil), s.seq...),
	}
	s.seq = s.seq[:0]
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record { return s.rec }

// Err returns the first non-EOF read error.
func (s *Scanner) Err() error { return s.err }

// Line is the number of physical lines consumed so far.
func (s *Scanner) Line() int { return s.line }

// Orphans counts non-blank body lines that appeared before any header.
func (s *Scanner) Orphans() int { return s.orphans }

// Stream calls emit for every record in r. A non-nil error from emit stops
// the scan and is returned as-is.
func Stream(r io.Reader, strategy key.Strategy, emit func(Record) error) error {
	sc := NewScanner(r, strategy)
	for sc.Scan() {
		if err := emit(sc.Record()); err != nil {
			return err
		}
	}
	return sc.Err()
}
