package collectapp

import (
	"fmt"
	"io"

	"seqjoin/internal/appcore"
	"seqjoin/internal/clibase"
	"seqjoin/internal/cluster"
	"seqjoin/internal/collectcli"
	"seqjoin/internal/fasta"
	"seqjoin/internal/pipeline"
	"seqjoin/internal/writers"
)

const name = "seqjoin-collect"

var tool = appcore.Tool[collectcli.Options]{
	Name:       name,
	NewFlagSet: collectcli.NewFlagSet,
	Parse:      collectcli.ParseArgs,
	Common:     func(o *collectcli.Options) *clibase.Common { return &o.Common },
	Examples: func(out io.Writer) {
		_, _ = fmt.Fprintf(out, "  # keep clusters with >50%% of members positive in column 10\n")
		_, _ = fmt.Fprintf(out, "  %s clusters.fa members.tsv -o kept.fa\n\n", name)
		_, _ = fmt.Fprintf(out, "  # pick the indicator by header name, stricter cut-off, JSON report\n")
		_, _ = fmt.Fprintf(out, "  %s --organism Saccharomyces -t 75 --stats stats.json --stats-format json clusters.fa members.tsv\n", name)
	},
	Run: run,
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(tool, argv, stdout, stderr)
}

func run(env appcore.Env, o collectcli.Options) (int, error) {
	cfg := pipeline.CollectConfig{
		Columns:   cluster.Columns{Type: cluster.DefaultColumns.Type, Cluster: cluster.DefaultColumns.Cluster, Indicator: o.Column},
		Organism:  o.Organism,
		Exclude:   o.Exclude,
		Threshold: o.Threshold,
		Wrap:      o.Wrap,
	}

	tsv, err := fasta.Open(o.TSV)
	if err != nil {
		return 0, err
	}
	defer tsv.Close()
	env.Log.Debugf("aggregating %s", o.TSV)
	agg, err := pipeline.Aggregate(tsv, cfg, env.Log)
	if err != nil {
		return 0, err
	}
	env.Log.Infof("%d clusters in %s, %d with %s", agg.Table.Len(), o.TSV, agg.Table.WithMatches(), agg.Organism)

	fa, err := fasta.Open(o.FASTA)
	if err != nil {
		return 0, err
	}
	defer fa.Close()
	sum, err := pipeline.Filter(fa, env.Out, agg, cfg, env.Log)
	if err != nil {
		return sum.Kept, err
	}

	if o.Stats != "" {
		if err := writeStats(o, agg, env.Stderr); err != nil {
			return sum.Kept, err
		}
	}
	if env.Log.Verbose() {
		for _, p := range agg.Table.Sorted() {
			if p.Percent > o.Threshold {
				env.Log.Debugf("cluster %d: %.1f%% (%d/%d %s)", p.Cluster, p.Percent, p.Matches, p.Total, agg.Organism)
			}
		}
	}
	env.Log.Infof("records=%d in-table=%d not-in-table=%d uncorrelated=%d kept=%d (>%.1f%% %s)",
		sum.Seen, sum.Joined(), sum.NoEntry, sum.Uncorrelated, sum.Kept, o.Threshold, agg.Organism)
	return sum.Kept, nil
}

// writeStats writes the report to --stats; "-" sends it to stderr so it
// never mixes with the FASTA on stdout.
func writeStats(o collectcli.Options, agg pipeline.Aggregation, stderr io.Writer) error {
	out := writers.NewOutput(o.Stats, stderr)
	err := writers.WriteStats(o.StatsFormat, out, writers.StatsReport{
		Organism:  agg.Organism,
		Threshold: o.Threshold,
		Table:     agg.Table,
	})
	if err != nil {
		out.Abort()
		return err
	}
	return out.Close()
}
