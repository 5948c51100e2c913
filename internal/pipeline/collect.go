// internal/pipeline/collect.go
package pipeline

import (
	"fmt"
	"io"
	"strings"

	"seqjoin/internal/cluster"
	"seqjoin/internal/correlate"
	"seqjoin/internal/fasta"
	"seqjoin/internal/key"
	"seqjoin/internal/table"
	"seqjoin/internal/writers"
)

// HeaderSentinel is the first field of a header row in UC-derived tables.
const HeaderSentinel = "record_type"

// CollectConfig controls a threshold-filter run.
type CollectConfig struct {
	Columns   cluster.Columns
	Organism  string   // indicator column by header name; overrides Columns.Indicator
	Exclude   []string // record types never counted (default "C")
	Threshold float64  // percentage a cluster must strictly exceed
	Wrap      int      // FASTA body width (<= 0: single line)
}

// Aggregation is the read-only outcome of the aggregate stage.
type Aggregation struct {
	Table    cluster.Table
	Tally    cluster.Tally
	Organism string // display name used in annotations and reports
	Column   int    // resolved indicator column
	Header   bool   // whether a header row was consumed
}

// Aggregate folds the whole table before any filtering decision is made.
// An organism name that is not in the header is a configuration error and
// is reported before any row is counted.
func Aggregate(r io.Reader, cfg CollectConfig, log Logger) (Aggregation, error) {
	log = orNop(log)
	rd, err := table.NewReader(r, table.Options{
		Header:   table.HeaderIfSentinel,
		Sentinel: HeaderSentinel,
		Raw:      true,
	})
	if err != nil {
		return Aggregation{}, err
	}

	cols := cfg.Columns
	if cfg.Organism != "" {
		idx, err := rd.Schema().Index(cfg.Organism)
		if err != nil {
			return Aggregation{}, fmt.Errorf("organism column: %w", err)
		}
		cols.Indicator = idx
	}
	name := organismName(rd.Schema(), cols.Indicator)
	if rd.HasHeader() {
		log.Debugf("header columns: %s", strings.Join(rd.Schema().Names(), ", "))
		if cols.Indicator >= rd.Schema().Len() {
			log.Warnf(WarnRagged, "indicator column %d not in header (max %d)", cols.Indicator, rd.Schema().Len()-1)
		}
	}

	agg := cluster.NewAggregator(cols, cfg.Exclude...)
	shown := 0
	for {
		row, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Aggregation{}, err
		}
		if agg.Add(row) == cluster.Matched && shown < debugSamples {
			shown++
			c, _ := row.Field(cols.Cluster)
			v, _ := row.Field(cols.Indicator)
			log.Debugf("found %s (%s) in cluster %s", name, strings.TrimSpace(v), strings.TrimSpace(c))
		}
	}

	res := Aggregation{
		Table:    agg.Percentages(),
		Tally:    agg.Tally(),
		Organism: name,
		Column:   cols.Indicator,
		Header:   rd.HasHeader(),
	}
	t := res.Tally
	log.Debugf("rows=%d counted=%d matched=%d excluded=%d malformed=%d unparsable=%d",
		t.Rows, t.Counted+t.Matched, t.Matched, t.Excluded, t.Malformed, t.Unparsable)
	log.Debugf("clusters=%d with %s=%d", res.Table.Len(), name, res.Table.WithMatches())
	return res, nil
}

// organismName is the header name of the indicator column, or column_N.
func organismName(s table.Schema, col int) string {
	if n := s.Name(col); n != "" {
		return n
	}
	return fmt.Sprintf("column_%d", col)
}

// Filter streams FASTA records through the threshold filter, writing kept
// records with their annotated header in input order.
func Filter(r io.Reader, w io.Writer, agg Aggregation, cfg CollectConfig, log Logger) (correlate.Summary, error) {
	log = orNop(log)
	c := correlate.New(correlate.Threshold{
		Table:     agg.Table,
		Threshold: cfg.Threshold,
		Organism:  agg.Organism,
	})
	c.OnUncorrelated = func(rec fasta.Record, _ correlate.Decision) {
		log.Warnf(WarnNoKey, "could not extract cluster number from: %s", rec.Header)
	}

	fw := writers.NewFASTAWriter(w, cfg.Wrap)
	sum, err := c.Run(fasta.NewScanner(r, key.ClusterNum), func(rec fasta.Record, d correlate.Decision) error {
		return fw.Write(d.Header(rec.Header), rec.Seq)
	})
	if ferr := fw.Flush(); err == nil {
		err = ferr
	}
	return sum, err
}

// CollectResult is what a full threshold-filter run did.
type CollectResult struct {
	Aggregation
	Summary correlate.Summary
}

// Collect runs Aggregate over tsv to completion, then Filter over fa.
func Collect(tsv, fa io.Reader, w io.Writer, cfg CollectConfig, log Logger) (CollectResult, error) {
	agg, err := Aggregate(tsv, cfg, log)
	if err != nil {
		return CollectResult{}, err
	}
	sum, err := Filter(fa, w, agg, cfg, log)
	return CollectResult{Aggregation: agg, Summary: sum}, err
}
