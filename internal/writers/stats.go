// internal/writers/stats.go
package writers

import (
	"fmt"
	"io"

	"seqjoin/internal/cluster"
	"seqjoin/internal/jsonutil"
	"seqjoin/pkg/api"
)

// StatsReport is the per-cluster summary of a threshold run.
type StatsReport struct {
	Organism  string
	Threshold float64
	Table     cluster.Table
}

func (r StatsReport) toAPI() api.StatsReportV1 {
	v := api.StatsReportV1{Organism: r.Organism, Threshold: r.Threshold}
	v.Clusters = make([]api.ClusterStatsV1, 0, r.Table.Len())
	for _, p := range r.Table.Sorted() {
		v.Clusters = append(v.Clusters, api.ClusterStatsV1{
			Cluster:    p.Cluster,
			Matches:    p.Matches,
			Total:      p.Total,
			Percentage: p.Percent,
			Passed:     p.Percent > r.Threshold,
		})
	}
	return v
}

func init() {
	RegisterStats("json", func(w io.Writer, r StatsReport) error {
		return jsonutil.EncodePretty(w, r.toAPI())
	})

	RegisterStats("jsonl", func(w io.Writer, r StatsReport) error {
		jw := jsonutil.NewLineWriter(w)
		for _, c := range r.toAPI().Clusters {
			if err := jw.Encode(c); err != nil {
				_ = jw.Close()
				return err
			}
		}
		return jw.Close()
	})

	RegisterStats("tsv", func(w io.Writer, r StatsReport) error {
		tw := NewTableWriter(w, '\t')
		if err := tw.WriteHeader([]string{"cluster", r.Organism + "_count", "total", "percentage", "passed"}); err != nil {
			return err
		}
		for _, c := range r.toAPI().Clusters {
			if err := tw.WriteRow([]string{
				fmt.Sprint(c.Cluster), fmt.Sprint(c.Matches), fmt.Sprint(c.Total),
				fmt.Sprintf("%.1f", c.Percentage), fmt.Sprint(c.Passed),
			}); err != nil {
				return err
			}
		}
		return tw.Flush()
	})
}
