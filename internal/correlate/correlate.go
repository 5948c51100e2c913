// internal/correlate/correlate.go
package correlate

import (
	"errors"

	"seqjoin/internal/fasta"
)

// State of a single correlation run.
type State int

const (
	Ready State = iota
	Streaming
	Done
)

func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Streaming:
		return "STREAMING"
	case Done:
		return "DONE"
	}
	return "UNKNOWN"
}

// ErrReused is returned when a run is started twice. Inputs are single-pass,
// so a finished correlator cannot be replayed.
var ErrReused = errors.New("correlate: run already started")

type stage struct{ state State }

func (s *stage) begin() error {
	if s.state != Ready {
		return ErrReused
	}
	s.state = Streaming
	return nil
}

func (s *stage) end() { s.state = Done }

// State reports where the run is.
func (s *stage) State() State { return s.state }

// Decision is the verdict for one record.
type Decision struct {
	Keep       bool
	Annotation string
	// Uncorrelated is set when the record carried no usable key.
	Uncorrelated bool
	// NoEntry is set when the key was usable but absent from the lookup
	// table of an inner join.
	NoEntry bool
}

// Header returns the header to write for a kept record.
func (d Decision) Header(header string) string {
	if d.Annotation == "" {
		return header
	}
	return header + " " + d.Annotation
}

// Filter decides about one record. Implementations are pure functions of
// lookup tables built before streaming starts.
type Filter interface {
	Decide(fasta.Record) Decision
}

// Source yields records; *fasta.Scanner satisfies it.
type Source interface {
	Scan() bool
	Record() fasta.Record
	Err() error
}

// Summary counts what a run did. NoEntry records are also counted in
// Dropped.
type Summary struct {
	Seen         int
	Kept         int
	Dropped      int
	Uncorrelated int
	NoEntry      int
}

// Joined is the number of records whose key was found in the lookup table.
func (s Summary) Joined() int { return s.Seen - s.Uncorrelated - s.NoEntry }

// Correlator applies a Filter to a record stream exactly once.
type Correlator struct {
	stage
	filter Filter

	// OnUncorrelated, if set, is called for every record without a key,
	// whether or not it is kept.
	OnUncorrelated func(fasta.Record, Decision)
}

func New(f Filter) *Correlator { return &Correlator{filter: f} }

// Run streams src, calling emit for kept records only.
func (c *Correlator) Run(src Source, emit func(fasta.Record, Decision) error) (Summary, error) {
	var sum Summary
	if err := c.begin(); err != nil {
		return sum, err
	}
	defer c.end()

	for src.Scan() {
		rec := src.Record()
		d := c.filter.Decide(rec)
		sum.Seen++
		if d.Uncorrelated {
			sum.Uncorrelated++
			if c.OnUncorrelated != nil {
				c.OnUncorrelated(rec, d)
			}
		}
		if d.NoEntry {
			sum.NoEntry++
		}
		if !d.Keep {
			sum.Dropped++
			continue
		}
		sum.Kept++
		if err := emit(rec, d); err != nil {
			return sum, err
		}
	}
	return sum, src.Err()
}
