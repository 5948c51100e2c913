// internal/pipeline/exclude.go
package pipeline

import (
	"io"
	"strings"

	"seqjoin/internal/correlate"
	"seqjoin/internal/fasta"
	"seqjoin/internal/key"
	"seqjoin/internal/writers"
)

// ExcludeConfig controls a hit-set exclusion run.
type ExcludeConfig struct {
	Wrap int
}

// ExcludeResult is what an exclusion run did.
type ExcludeResult struct {
	Hits    int
	Summary correlate.Summary
}

// Exclude loads the hit set from hits, then streams fa, dropping every
// record whose cluster number is a hit. Records without a cluster number are
// kept with a warning.
func Exclude(hits, fa io.Reader, w io.Writer, cfg ExcludeConfig, log Logger) (ExcludeResult, error) {
	log = orNop(log)
	set, err := correlate.LoadHits(hits)
	if err != nil {
		return ExcludeResult{}, err
	}
	res := ExcludeResult{Hits: len(set)}
	log.Debugf("%d unique cluster numbers with hits", len(set))
	if sorted := set.Sorted(); len(sorted) > 0 {
		log.Debugf("removing cluster_num=%s", strings.Join(sorted, ","))
	}

	c := correlate.New(correlate.Exclusion{Hits: set})
	c.OnUncorrelated = func(rec fasta.Record, _ correlate.Decision) {
		log.Warnf(WarnNoKey, "no cluster number found in header, keeping: %s", rec.Header)
	}
	fw := writers.NewFASTAWriter(w, cfg.Wrap)
	res.Summary, err = c.Run(fasta.NewScanner(fa, key.ClusterNum), func(rec fasta.Record, d correlate.Decision) error {
		return fw.Write(d.Header(rec.Header), rec.Seq)
	})
	if ferr := fw.Flush(); err == nil {
		err = ferr
	}
	return res, err
}
