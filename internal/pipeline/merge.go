// internal/pipeline/merge.go
package pipeline

import (
	"fmt"
	"io"
	"strings"

	"seqjoin/internal/correlate"
	"seqjoin/internal/fasta"
	"seqjoin/internal/key"
	"seqjoin/internal/table"
	"seqjoin/internal/writers"
)

// Default column names of a merge run.
const (
	DefaultTypeColumn  = "record_type"
	DefaultLabelColumn = "query_label"
	DefaultMergeColumn = "contig"
)

// MergeConfig controls a sequence-merge run.
type MergeConfig struct {
	Delimiter   rune // 0 means tab
	AutoDetect  bool
	TypeColumn  string
	LabelColumn string
	ColumnName  string // appended column
	Duplicates  fasta.DuplicatePolicy
}

func (c *MergeConfig) defaults() {
	if c.TypeColumn == "" {
		c.TypeColumn = DefaultTypeColumn
	}
	if c.LabelColumn == "" {
		c.LabelColumn = DefaultLabelColumn
	}
	if c.ColumnName == "" {
		c.ColumnName = DefaultMergeColumn
	}
}

// MergeResult is what a merge run did.
type MergeResult struct {
	Load      fasta.LoadStats
	Summary   correlate.MergeSummary
	Delimiter rune
}

// LoadSequences reads fa into a key->sequence map keyed by header prefix.
func LoadSequences(fa io.Reader, policy fasta.DuplicatePolicy, log Logger) (fasta.SeqMap, fasta.LoadStats, error) {
	log = orNop(log)
	seqs, st, err := fasta.LoadMap(fa, key.Prefix, policy)
	if err != nil {
		return nil, st, err
	}
	for _, h := range st.NoKeyHeaders {
		log.Warnf(WarnNoKey, "could not extract key from header %q", h)
	}
	if st.Orphans > 0 {
		log.Warnf(WarnOrphan, "%d sequence lines found before the first header", st.Orphans)
	}
	if st.Duplicates > 0 {
		log.Debugf("%d duplicate keys resolved by keeping the %s record", st.Duplicates, policy)
	}
	if len(seqs) == 0 {
		log.Warnf(WarnNoMatch, "no sequences loaded from FASTA")
	}
	return seqs, st, nil
}

// Merge loads fa completely, then streams tsv, appending the matching
// sequence to every row. No row is dropped; the output keeps the input's
// header and delimiter.
func Merge(tsv, fa io.Reader, w io.Writer, cfg MergeConfig, log Logger) (MergeResult, error) {
	log = orNop(log)
	cfg.defaults()

	seqs, st, err := LoadSequences(fa, cfg.Duplicates, log)
	res := MergeResult{Load: st}
	if err != nil {
		return res, err
	}

	rd, err := table.NewReader(tsv, table.Options{
		Delimiter:  cfg.Delimiter,
		AutoDetect: cfg.AutoDetect,
		Header:     table.HeaderAlways,
		Require:    []string{cfg.TypeColumn, cfg.LabelColumn},
	})
	if err != nil {
		return res, err
	}
	res.Delimiter = rd.Delimiter()
	if cfg.AutoDetect {
		log.Debugf("auto-detected delimiter %q", string(rd.Delimiter()))
	}
	schema := rd.Schema()
	typeCol, _ := schema.Index(cfg.TypeColumn)
	labelCol, _ := schema.Index(cfg.LabelColumn)

	tw := writers.NewTableWriter(w, rd.Delimiter())
	if err := tw.WriteHeader(schema.Raw(), cfg.ColumnName); err != nil {
		return res, err
	}

	m := &correlate.Merge{Seqs: seqs, TypeCol: typeCol, LabelCol: labelCol}
	width := schema.Len()
	merged, misses := 0, 0
	res.Summary, err = m.Run(rd, func(row table.Row, v string, o correlate.MergeOutcome) error {
		switch o {
		case correlate.Merged:
			if merged < 3 {
				log.Debugf("line %d: key matched, %s", row.Line, preview(v, 50))
			}
			merged++
		case correlate.NoMatch, correlate.NoLabelKey:
			if misses < debugSamples {
				label, _ := row.Field(labelCol)
				log.Debugf("line %d: no sequence for label %q", row.Line, strings.TrimSpace(label))
			}
			misses++
		}
		fields := row.Fields
		switch {
		case len(fields) < width:
			fields = append(append([]string(nil), fields...), make([]string, width-len(fields))...)
		case len(fields) > width:
			log.Warnf(WarnRagged, "line %d: %d fields, header has %d; extra fields dropped", row.Line, len(fields), width)
			fields = fields[:width]
		}
		return tw.WriteRow(fields, v)
	})
	if ferr := tw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return res, err
	}
	if res.Summary.Merged == 0 && res.Summary.Rows > 0 {
		log.Warnf(WarnNoMatch, "no matches found; check that %s values share the FASTA header prefix", cfg.LabelColumn)
	}
	return res, nil
}

// String summarises a merge for the closing stderr line.
func (r MergeResult) String() string {
	return fmt.Sprintf("rows=%d sequence_rows=%d merged=%d sequences=%d",
		r.Summary.Rows, r.Summary.SequenceRows, r.Summary.Merged, r.Load.Stored)
}
