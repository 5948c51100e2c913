// internal/fasta/load.go
package fasta

import (
	"fmt"
	"io"
	"strings"

	"seqjoin/internal/key"
)

// DuplicatePolicy decides which sequence a key resolves to when several
// records share it.
type DuplicatePolicy int

const (
	KeepLast DuplicatePolicy = iota
	KeepFirst
)

func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return KeepLast, nil
	case "first":
		return KeepFirst, nil
	}
	return KeepLast, fmt.Errorf("invalid duplicate policy %q (want last | first)", s)
}

func (p DuplicatePolicy) String() string {
	if p == KeepFirst {
		return "first"
	}
	return "last"
}

// SeqMap maps correlation keys to full sequences.
type SeqMap map[string]string

// LoadStats tallies what LoadMap saw.
type LoadStats struct {
	Records      int
	Stored       int
	NoKey        int
	Empty        int
	Duplicates   int
	Orphans      int
	NoKeyHeaders []string // first few headers without a key, for diagnostics
}

const maxNoKeyHeaders = 10

// LoadMap reads every record from r into memory. Records without a key or
// with an empty sequence are not stored.
func LoadMap(r io.Reader, strategy key.Strategy, policy DuplicatePolicy) (SeqMap, LoadStats, error) {
	m := SeqMap{}
	var st LoadStats
	sc := NewScanner(r, strategy)
	for sc.Scan() {
		rec := sc.Record()
		st.Records++
		if len(rec.Seq) == 0 {
			st.Empty++
			continue
		}
		if !rec.Key.OK {
			st.NoKey++
			if len(st.NoKeyHeaders) < maxNoKeyHeaders {
				st.NoKeyHeaders = append(st.NoKeyHeaders, rec.Header)
			}
			continue
		}
		if _, seen := m[rec.Key.Value]; seen {
			st.Duplicates++
			if policy == KeepFirst {
				continue
			}
		}
		m[rec.Key.Value] = string(rec.Seq)
	}
	st.Orphans = sc.Orphans()
	st.Stored = len(m)
	if err := sc.Err(); err != nil {
		return nil, st, err
	}
	return m, st, nil
}

// LoadMapPath is LoadMap over a file path (or "-").
func LoadMapPath(path string, strategy key.Strategy, policy DuplicatePolicy) (SeqMap, LoadStats, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	defer rc.Close()
	return LoadMap(rc, strategy, policy)
}
