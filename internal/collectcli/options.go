package collectcli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"seqjoin/internal/clibase"
	"seqjoin/internal/cliutil"
	"seqjoin/internal/cluster"
	"seqjoin/internal/config"
	"seqjoin/internal/correlate"
	"seqjoin/internal/writers"
)

type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

type Options struct {
	clibase.Common

	FASTA string
	TSV   string

	Threshold float64
	Column    int
	Organism  string
	Exclude   []string

	Stats       string
	StatsFormat string
	Wrap        int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "keep clusters enriched for one organism", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] clusters.fa members.tsv\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --organism Saccharomyces clusters.fa.gz members.tsv.gz\n", name)

		_, _ = fmt.Fprintln(out, "\nA FASTA record is kept when its cluster_num=N has more than --threshold")
		_, _ = fmt.Fprintln(out, "percent of member rows with a positive organism indicator.")

		_, _ = fmt.Fprintln(out, "\nFilter:")
		_, _ = fmt.Fprintf(out, "  -t, --threshold float       Percentage a cluster must exceed [%s]\n", def("threshold"))
		_, _ = fmt.Fprintf(out, "  -c, --column int            Indicator column (0-based) [%s]\n", def("column"))
		_, _ = fmt.Fprintln(out, "      --organism string       Indicator column by header name (overrides --column)")
		_, _ = fmt.Fprintf(out, "      --exclude-type string   Record type never counted; repeatable [%s]\n", cluster.DefaultExclude)

		_, _ = fmt.Fprintln(out, "\nReports:")
		_, _ = fmt.Fprintln(out, "      --stats file            Write per-cluster percentages to file")
		_, _ = fmt.Fprintf(out, "      --stats-format string   Stats format: %s [%s]\n", strings.Join(writers.StatsFormats(), " | "), def("stats-format"))
		_, _ = fmt.Fprintf(out, "      --wrap int              FASTA line width (0 = no wrapping) [%s]\n", def("wrap"))
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)

	fs.Float64Var(&o.Threshold, "threshold", correlate.DefaultThreshold, "percentage a cluster must exceed")
	fs.Float64Var(&o.Threshold, "t", correlate.DefaultThreshold, "alias of --threshold")
	fs.IntVar(&o.Column, "column", cluster.DefaultColumns.Indicator, "indicator column (0-based)")
	fs.IntVar(&o.Column, "c", cluster.DefaultColumns.Indicator, "alias of --column")
	fs.StringVar(&o.Organism, "organism", "", "indicator column by header name")
	var exclude stringList
	fs.Var(&exclude, "exclude-type", "record type never counted (repeatable)")
	fs.StringVar(&o.Stats, "stats", "", "per-cluster stats file")
	fs.StringVar(&o.StatsFormat, "stats-format", "tsv", "stats format")
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
	applyConfig(&o, cfg, set)
	o.Exclude = append(o.Exclude, exclude...)
	if len(o.Exclude) == 0 {
		o.Exclude = []string{cluster.DefaultExclude}
	}

	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	if err := clibase.Positionals(pos, "FASTA", "TSV"); err != nil {
		return o, err
	}
	o.FASTA, o.TSV = pos[0], pos[1]
	if o.Threshold < 0 || o.Threshold > 100 {
		return o, fmt.Errorf("--threshold must be in [0,100]")
	}
	if o.Column < 0 {
		return o, fmt.Errorf("--column must be ≥ 0")
	}
	if o.Wrap < 0 {
		return o, fmt.Errorf("--wrap must be ≥ 0")
	}
	if _, ok := writers.StatsWriters[o.StatsFormat]; !ok {
		return o, fmt.Errorf("invalid --stats-format %q", o.StatsFormat)
	}
	if err := cliutil.SingleStdin(pos); err != nil {
		return o, err
	}
	return o, clibase.CheckInputs(o.FASTA, o.TSV)
}

func applyConfig(o *Options, cfg *config.Config, set map[string]bool) {
	if !clibase.IsSet(set, "threshold", "t") {
		o.Threshold = config.FloatOr(cfg.Threshold, o.Threshold)
	}
	if !clibase.IsSet(set, "column", "c") {
		o.Column = config.IntOr(cfg.Column, o.Column)
	}
	if !clibase.IsSet(set, "organism") {
		o.Organism = config.StringOr(cfg.Organism, o.Organism)
	}
	if !clibase.IsSet(set, "wrap") {
		o.Wrap = config.IntOr(cfg.Wrap, o.Wrap)
	}
	if !clibase.IsSet(set, "exclude-type") {
		o.Exclude = append(o.Exclude, cfg.Exclude...)
	}
}
