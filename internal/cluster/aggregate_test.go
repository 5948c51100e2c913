package cluster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqjoin/internal/table"
)

func row(s string) table.Row {
	return table.Row{Fields: strings.Split(s, "\t")}
}

// cols keeps test rows short: indicator in column 3.
var cols = Columns{Type: 0, Cluster: 1, Indicator: 3}

func TestAggregator_ThreeOfFour(t *testing.T) {
	a := NewAggregator(cols)
	for _, v := range []string{"1", "1", "2", "0"} {
		a.Add(row("H\t5\tx\t" + v))
	}
	st := a.Stats()[5]
	assert.Equal(t, Stats{Total: 4, Matches: 3}, st)

	p, ok := a.Percentages().Lookup(5)
	require.True(t, ok)
	assert.InDelta(t, 75.0, p.Percent, 1e-9)
	assert.Equal(t, 3, p.Matches)
	assert.Equal(t, 4, p.Total)
}

func TestAggregator_ExcludedSentinelNeverCounts(t *testing.T) {
	a := NewAggregator(cols)
	assert.Equal(t, Excluded, a.Add(row("C\t5\tx\t1")))
	assert.Equal(t, Excluded, a.Add(row(" C \t5\tx\t1")))
	_, ok := a.Stats()[5]
	assert.False(t, ok)
	_, ok = a.Percentages().Lookup(5)
	assert.False(t, ok, "clusters without members are absent, never 0%")
	assert.Equal(t, 2, a.Tally().Excluded)
}

func TestAggregator_SkipsMalformedAndUnparsable(t *testing.T) {
	a := NewAggregator(cols)
	assert.Equal(t, Malformed, a.Add(row("H\t5\tx")))
	assert.Equal(t, Unparsable, a.Add(row("H\tfive\tx\t1")))
	assert.Equal(t, Unparsable, a.Add(row("H\t-3\tx\t1")))
	assert.Equal(t, Unparsable, a.Add(row("H\t5\tx\tyes")))
	assert.Equal(t, Matched, a.Add(row("S\t 5 \tx\t 2")))
	assert.Equal(t, Counted, a.Add(row("H\t5\tx\t-1")))

	assert.Equal(t, Stats{Total: 2, Matches: 1}, a.Stats()[5])
	assert.Equal(t, Tally{Rows: 6, Counted: 1, Matched: 1, Malformed: 1, Unparsable: 3}, a.Tally())
}

func TestAggregator_CustomExclude(t *testing.T) {
	a := NewAggregator(cols, "S", "C")
	a.Add(row("S\t1\tx\t1"))
	a.Add(row("H\t1\tx\t1"))
	assert.Equal(t, Stats{Total: 1, Matches: 1}, a.Stats()[1])
}

func TestAggregator_MatchesNeverExceedTotal(t *testing.T) {
	a := NewAggregator(cols)
	inputs := []string{
		"H\t1\tx\t1", "H\t1\tx\t0", "H\t2\tx\t3", "C\t2\tx\t9",
		"H\t3\tx\tbad", "H\t2\tx\t1", "S\t0\tx\t0", "H\t0\tx\t7",
	}
	for _, in := range inputs {
		a.Add(row(in))
	}
	for id, st := range a.Stats() {
		assert.LessOrEqual(t, st.Matches, st.Total, "cluster %d", id)
	}
}

func TestTable_Order(t *testing.T) {
	a := NewAggregator(cols)
	for _, id := range []string{"9", "2", "9", "4"} {
		a.Add(row("H\t" + id + "\tx\t1"))
	}
	tbl := a.Percentages()
	assert.Equal(t, 3, tbl.Len())
	var seen, sorted []int
	for _, p := range tbl.InOrder() {
		seen = append(seen, p.Cluster)
	}
	for _, p := range tbl.Sorted() {
		sorted = append(sorted, p.Cluster)
	}
	assert.Equal(t, []int{9, 2, 4}, seen)
	assert.Equal(t, []int{2, 4, 9}, sorted)
	assert.Equal(t, 3, tbl.WithMatches())
}
