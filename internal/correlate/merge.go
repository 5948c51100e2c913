// internal/correlate/merge.go
package correlate

import (
	"io"
	"strings"

	"seqjoin/internal/fasta"
	"seqjoin/internal/key"
	"seqjoin/internal/table"
)

// SequenceRowType marks rows that carry a sequence label.
const SequenceRowType = "S"

// MergeOutcome classifies one row of a merge.
type MergeOutcome int

const (
	NotSequenceRow MergeOutcome = iota
	NoLabelKey
	NoMatch
	Merged
)

// Merge annotates table rows with sequences looked up by label key. It never
// drops a row; rows that do not resolve get an empty value.
type Merge struct {
	stage
	Seqs     fasta.SeqMap
	TypeCol  int
	LabelCol int
	Sentinel string // defaults to SequenceRowType
}

// MergeSummary counts what a merge run did.
type MergeSummary struct {
	Rows         int
	SequenceRows int
	Merged       int
	NoLabelKey   int
}

// Annotate returns the value to append to row.
func (m *Merge) Annotate(row table.Row) (string, MergeOutcome) {
	sentinel := m.Sentinel
	if sentinel == "" {
		sentinel = SequenceRowType
	}
	typ, _ := row.Field(m.TypeCol)
	if strings.TrimSpace(typ) != sentinel {
		return "", NotSequenceRow
	}
	label, _ := row.Field(m.LabelCol)
	k := key.Extract(key.LabelPrefix, strings.TrimSpace(label))
	if !k.OK {
		return "", NoLabelKey
	}
	seq, ok := m.Seqs[k.Value]
	if !ok {
		return "", NoMatch
	}
	return seq, Merged
}

// RowSource yields rows until io.EOF; *table.Reader satisfies it.
type RowSource interface {
	Next() (table.Row, error)
}

// Run annotates every row of src and passes it to emit with its value.
func (m *Merge) Run(src RowSource, emit func(table.Row, string, MergeOutcome) error) (MergeSummary, error) {
	var sum MergeSummary
	if err := m.begin(); err != nil {
		return sum, err
	}
	defer m.end()

	for {
		row, err := src.Next()
		if err == io.EOF {
			return sum, nil
		}
		if err != nil {
			return sum, err
		}
		v, o := m.Annotate(row)
		sum.Rows++
		switch o {
		case Merged:
			sum.SequenceRows++
			sum.Merged++
		case NoMatch:
			sum.SequenceRows++
		case NoLabelKey:
			sum.SequenceRows++
			sum.NoLabelKey++
		}
		if err := emit(row, v, o); err != nil {
			return sum, err
		}
	}
}
