// internal/cluster/aggregate.go
package cluster

import (
	"strconv"
	"strings"

	"seqjoin/internal/table"
)

// DefaultExclude is the record type of cluster summary rows in UC-derived
// tables; such rows describe a cluster rather than a member of it.
const DefaultExclude = "C"

// Columns locates the fields the aggregator reads.
type Columns struct {
	Type      int // record-type designator
	Cluster   int // integer cluster id
	Indicator int // integer presence indicator (> 0 counts as a match)
}

// DefaultColumns matches the record_type/cluster layout with the indicator in
// column 10.
var DefaultColumns = Columns{Type: 0, Cluster: 1, Indicator: 10}

// Stats counts member rows of one cluster. Matches never exceeds Total.
type Stats struct {
	Total   int
	Matches int
}

// Outcome is what Add did with a row.
type Outcome int

const (
	Counted    Outcome = iota // counted toward Total only
	Matched                   // counted toward Total and Matches
	Excluded                  // record type is an excluded sentinel
	Malformed                 // too few fields for a configured column
	Unparsable                // cluster id or indicator is not an integer
)

// Tally summarises the outcomes of every Add call.
type Tally struct {
	Rows       int
	Counted    int
	Matched    int
	Excluded   int
	Malformed  int
	Unparsable int
}

// Aggregator folds table rows into per-cluster Stats, left to right.
type Aggregator struct {
	cols    Columns
	exclude map[string]struct{}
	stats   map[int]*Stats
	order   []int
	tally   Tally
}

// NewAggregator returns an Aggregator. With no exclude values given,
// DefaultExclude is used.
func NewAggregator(cols Columns, exclude ...string) *Aggregator {
	if len(exclude) == 0 {
		exclude = []string{DefaultExclude}
	}
	ex := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		ex[e] = struct{}{}
	}
	return &Aggregator{cols: cols, exclude: ex, stats: map[int]*Stats{}}
}

// Add folds one row into the statistics.
func (a *Aggregator) Add(row table.Row) Outcome {
	a.tally.Rows++
	o := a.add(row)
	switch o {
	case Counted:
		a.tally.Counted++
	case Matched:
		a.tally.Matched++
	case Excluded:
		a.tally.Excluded++
	case Malformed:
		a.tally.Malformed++
	case Unparsable:
		a.tally.Unparsable++
	}
	return o
}

func (a *Aggregator) add(row table.Row) Outcome {
	typ, ok1 := row.Field(a.cols.Type)
	cid, ok2 := row.Field(a.cols.Cluster)
	ind, ok3 := row.Field(a.cols.Indicator)
	if !ok1 || !ok2 || !ok3 {
		return Malformed
	}
	if _, skip := a.exclude[strings.TrimSpace(typ)]; skip {
		return Excluded
	}
	id, err := strconv.Atoi(strings.TrimSpace(cid))
	if err != nil || id < 0 {
		return Unparsable
	}
	v, err := strconv.Atoi(strings.TrimSpace(ind))
	if err != nil {
		return Unparsable
	}

	st := a.stats[id]
	if st == nil {
		st = &Stats{}
		a.stats[id] = st
		a.order = append(a.order, id)
	}
	st.Total++
	if v > 0 {
		st.Matches++
		return Matched
	}
	return Counted
}

// Stats returns a copy of the per-cluster statistics.
func (a *Aggregator) Stats() map[int]Stats {
	out := make(map[int]Stats, len(a.stats))
	for id, st := range a.stats {
		out[id] = *st
	}
	return out
}

// Tally returns the outcome counts so far.
func (a *Aggregator) Tally() Tally { return a.tally }

// Percentages derives the percentage table. Only clusters with a non-zero
// total appear.
func (a *Aggregator) Percentages() Table {
	t := Table{entries: make(map[int]Percentage, len(a.stats))}
	for _, id := range a.order {
		st := a.stats[id]
		if st.Total == 0 {
			continue
		}
		t.entries[id] = Percentage{
			Cluster: id,
			Matches: st.Matches,
			Total:   st.Total,
			Percent: 100 * float64(st.Matches) / float64(st.Total),
		}
		t.order = append(t.order, id)
	}
	return t
}
