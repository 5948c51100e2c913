// internal/correlate/hits.go
package correlate

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"seqjoin/internal/fasta"
	"seqjoin/internal/key"
)

// HitSet holds cluster keys reported by a secondary detection run.
type HitSet map[string]struct{}

// Has reports membership; an absent key is never a member.
func (h HitSet) Has(k key.Key) bool {
	if !k.OK {
		return false
	}
	_, ok := h[k.Value]
	return ok
}

func (h HitSet) Add(k key.Key) {
	if k.OK {
		h[k.Value] = struct{}{}
	}
}

// Sorted returns the members in numeric order.
func (h HitSet) Sorted() []string {
	out := make([]string, 0, len(h))
	for k := range h {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i])
		b, errB := strconv.Atoi(out[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}

// LoadHits reads a tab-delimited detection table. Only lines whose first
// field starts with the cluster marker contribute; other lines (headers,
// comments, unrelated queries) are ignored.
func LoadHits(r io.Reader) (HitSet, error) {
	hits := HitSet{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, key.ClusterMarker) {
			continue
		}
		first, _, _ := strings.Cut(line, "\t")
		hits.Add(key.Extract(key.ClusterNum, first))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read hits: %w", err)
	}
	return hits, nil
}

// Exclusion keeps records whose key is not in Hits. Records without a key
// are kept (fail-open) and flagged Uncorrelated so the caller can warn.
type Exclusion struct {
	Hits HitSet
}

func (e Exclusion) Decide(rec fasta.Record) Decision {
	if !rec.Key.OK {
		return Decision{Keep: true, Uncorrelated: true}
	}
	return Decision{Keep: !e.Hits.Has(rec.Key)}
}
