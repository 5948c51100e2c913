package mergeapp

import (
	"fmt"
	"io"
	"strings"

	"seqjoin/internal/appcore"
	"seqjoin/internal/clibase"
	"seqjoin/internal/fasta"
	"seqjoin/internal/mergecli"
	"seqjoin/internal/pipeline"
)

const name = "seqjoin-merge"

var tool = appcore.Tool[mergecli.Options]{
	Name:       name,
	NewFlagSet: mergecli.NewFlagSet,
	Parse:      mergecli.ParseArgs,
	Common:     func(o *mergecli.Options) *clibase.Common { return &o.Common },
	Examples: func(out io.Writer) {
		_, _ = fmt.Fprintln(out, "  # add a contig column to S rows")
		_, _ = fmt.Fprintf(out, "  %s hits.tsv contigs.fa -o merged.tsv\n\n", name)
		_, _ = fmt.Fprintln(out, "  # comma-separated input, keep the first of duplicate contigs")
		_, _ = fmt.Fprintf(out, "  %s -d , --duplicates first hits.csv contigs.fa -o merged.csv\n\n", name)
		_, _ = fmt.Fprintln(out, "  # show the FASTA lines around line 1200")
		_, _ = fmt.Fprintf(out, "  %s --debug-fasta 1200 hits.tsv contigs.fa\n", name)
	},
	Run: run,
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(tool, argv, stdout, stderr)
}

func run(env appcore.Env, o mergecli.Options) (int, error) {
	fa, err := fasta.Open(o.FASTA)
	if err != nil {
		return 0, err
	}
	defer fa.Close()
	if o.DebugFASTA > 0 {
		return debugFASTA(env, o, fa)
	}
	tsv, err := fasta.Open(o.TSV)
	if err != nil {
		return 0, err
	}
	defer tsv.Close()

	res, err := pipeline.Merge(tsv, fa, env.Out, pipeline.MergeConfig{
		Delimiter:   o.Delimiter,
		AutoDetect:  o.AutoDetect,
		TypeColumn:  o.TypeColumn,
		LabelColumn: o.LabelColumn,
		ColumnName:  o.ColumnName,
		Duplicates:  o.Duplicates,
	}, env.Log)
	if err != nil {
		return res.Summary.Rows, err
	}
	env.Log.Infof("%s", res)
	return res.Summary.Rows, nil
}

func debugFASTA(env appcore.Env, o mergecli.Options, fa io.Reader) (int, error) {
	rule := strings.Repeat("-", 80)
	_, _ = fmt.Fprintf(env.Out, "Debugging FASTA file '%s' around line %d\n", o.FASTA, o.DebugFASTA)
	_, _ = fmt.Fprintf(env.Out, "Showing %d lines before and after:\n%s\n", fasta.DebugContext, rule)
	n, err := fasta.PrintLines(fa, env.Out, o.DebugFASTA, fasta.DebugContext)
	if err != nil {
		return n, err
	}
	_, _ = fmt.Fprintln(env.Out, rule)
	if n == 0 {
		env.Log.Warnf(pipeline.WarnNoMatch, "line %d is past the end of %s", o.DebugFASTA, o.FASTA)
	}
	return n, nil
}
