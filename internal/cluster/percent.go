// internal/cluster/percent.go
package cluster

import "sort"

// Percentage is one row of the percentage table.
type Percentage struct {
	Cluster int
	Matches int
	Total   int
	Percent float64
}

// Table is the read-only percentage table produced by an Aggregator.
type Table struct {
	entries map[int]Percentage
	order   []int // first-seen order
}

// Lookup returns the entry for cluster id.
func (t Table) Lookup(id int) (Percentage, bool) {
	p, ok := t.entries[id]
	return p, ok
}

func (t Table) Len() int { return len(t.entries) }

// Sorted returns the entries by ascending cluster id.
func (t Table) Sorted() []Percentage {
	out := t.InOrder()
	sort.Slice(out, func(i, j int) bool { return out[i].Cluster < out[j].Cluster })
	return out
}

// InOrder returns the entries in the order clusters were first seen.
func (t Table) InOrder() []Percentage {
	out := make([]Percentage, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.entries[id])
	}
	return out
}

// WithMatches counts clusters with at least one match.
func (t Table) WithMatches() int {
	n := 0
	for _, p := range t.entries {
		if p.Matches > 0 {
			n++
		}
	}
	return n
}
