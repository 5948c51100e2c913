package excludeapp

import (
	"fmt"
	"io"

	"seqjoin/internal/appcore"
	"seqjoin/internal/clibase"
	"seqjoin/internal/excludecli"
	"seqjoin/internal/fasta"
	"seqjoin/internal/pipeline"
)

const name = "seqjoin-exclude"

var tool = appcore.Tool[excludecli.Options]{
	Name:       name,
	NewFlagSet: excludecli.NewFlagSet,
	Parse:      excludecli.ParseArgs,
	Common:     func(o *excludecli.Options) *clibase.Common { return &o.Common },
	Examples: func(out io.Writer) {
		_, _ = fmt.Fprintln(out, "  # remove clusters that hit the protein database")
		_, _ = fmt.Fprintf(out, "  %s diamond_hits.tsv clusters.fa -o clean.fa\n\n", name)
		_, _ = fmt.Fprintln(out, "  # stream from a pipe, keep sequences on one line")
		_, _ = fmt.Fprintf(out, "  zcat clusters.fa.gz | %s --wrap 0 hits.tsv - > clean.fa\n", name)
	},
	Run: run,
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(tool, argv, stdout, stderr)
}

func run(env appcore.Env, o excludecli.Options) (int, error) {
	hits, err := fasta.Open(o.Hits)
	if err != nil {
		return 0, err
	}
	defer hits.Close()
	fa, err := fasta.Open(o.FASTA)
	if err != nil {
		return 0, err
	}
	defer fa.Close()

	res, err := pipeline.Exclude(hits, fa, env.Out, pipeline.ExcludeConfig{Wrap: o.Wrap}, env.Log)
	if err != nil {
		return res.Summary.Kept, err
	}
	s := res.Summary
	env.Log.Infof("hit clusters=%d kept=%d removed=%d total=%d", res.Hits, s.Kept, s.Dropped, s.Seen)
	return s.Kept, nil
}
