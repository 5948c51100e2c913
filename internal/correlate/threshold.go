// internal/correlate/threshold.go
package correlate

import (
	"fmt"

	"seqjoin/internal/cluster"
	"seqjoin/internal/fasta"
	"seqjoin/internal/key"
)

// DefaultThreshold is the percentage a cluster must strictly exceed.
const DefaultThreshold = 50.0

// Threshold keeps records whose cluster has a match percentage strictly
// above Threshold. It is an inner join: clusters absent from Table drop.
type Threshold struct {
	Table     cluster.Table
	Threshold float64
	Organism  string
}

func (t Threshold) Decide(rec fasta.Record) Decision {
	id, ok := key.ClusterID(rec.Key)
	if !ok {
		return Decision{Uncorrelated: true}
	}
	p, ok := t.Table.Lookup(id)
	if !ok {
		return Decision{NoEntry: true}
	}
	if p.Percent <= t.Threshold {
		return Decision{}
	}
	return Decision{Keep: true, Annotation: Annotation(t.Organism, p)}
}

// Annotation renders "<organism>_percentage=75.0% (3/4)".
func Annotation(organism string, p cluster.Percentage) string {
	return fmt.Sprintf("%s_percentage=%.1f%% (%d/%d)", organism, p.Percent, p.Matches, p.Total)
}
