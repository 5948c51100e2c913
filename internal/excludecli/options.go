package excludecli

import (
	"flag"
	"fmt"
	"io"

	"seqjoin/internal/clibase"
	"seqjoin/internal/cliutil"
	"seqjoin/internal/config"
	"seqjoin/internal/writers"
)

type Options struct {
	clibase.Common

	Hits  string
	FASTA string
	Wrap  int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "drop clusters reported by a detection run", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] hits.tsv clusters.fa\n", name)

		_, _ = fmt.Fprintln(out, "\nHit lines start with cluster_num=N in their first tab-separated field;")
		_, _ = fmt.Fprintln(out, "every FASTA record of such a cluster is removed. Records without a")
		_, _ = fmt.Fprintln(out, "cluster number are kept and reported.")

		_, _ = fmt.Fprintln(out, "\nOutput format:")
		_, _ = fmt.Fprintf(out, "      --wrap int              FASTA line width (0 = no wrapping) [%s]\n", def("wrap"))
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)
	fs.IntVar(&o.Wrap, "wrap", writers.DefaultColumns, "FASTA line width")

	pos, set, err := clibase.Parse(fs, &o.Common, argv)
	if err != nil {
		return o, err
	}
	if o.Version {
		return o, nil
	}
	cfg, err := clibase.LoadConfig(&o.Common, set)
	if err != nil {
		return o, err
	}
	if !clibase.IsSet(set, "wrap") {
		o.Wrap = config.IntOr(cfg.Wrap, o.Wrap)
	}

	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	if err := clibase.Positionals(pos, "HITS", "FASTA"); err != nil {
		return o, err
	}
	o.Hits, o.FASTA = pos[0], pos[1]
	if o.Wrap < 0 {
		return o, fmt.Errorf("--wrap must be ≥ 0")
	}
	if err := cliutil.SingleStdin(pos); err != nil {
		return o, err
	}
	return o, clibase.CheckInputs(o.Hits, o.FASTA)
}
