// Package convertcli parses the flags of the format converters
// seqjoin-uc2tsv and seqjoin-csv2fa.
package convertcli

import (
	"flag"
	"fmt"
	"io"

	"seqjoin/internal/clibase"
	"seqjoin/internal/cliutil"
	"seqjoin/internal/config"
	"seqjoin/internal/convert"
	"seqjoin/internal/table"
)

// UCOptions are the options of seqjoin-uc2tsv.
type UCOptions struct {
	clibase.Common
	Inputs []string
}

// CSVOptions are the options of seqjoin-csv2fa.
type CSVOptions struct {
	clibase.Common
	Inputs    []string
	IDColumn  string
	SeqColumn string
	Delimiter rune
	Wrap      int
}

func NewUCFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "convert UC cluster files to TSV", func(out io.Writer, _ func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] clusters.uc [more.uc ...]\n", name)
		_, _ = fmt.Fprintln(out, "\nEvery row is padded or truncated to the 15 UC columns under one header;")
		_, _ = fmt.Fprintln(out, "comment (#) and blank lines are dropped. Globs are expanded.")
	})
	return fs
}

func ParseUCArgs(fs *flag.FlagSet, argv []string) (UCOptions, error) {
	var o UCOptions
	clibase.Register(fs, &o.Common)
	pos, set, err := clibase.Parse(fs, &o.Common, argv)
	if err != nil {
		return o, err
	}
	if o.Version {
		return o, nil
	}
	if _, err := clibase.LoadConfig(&o.Common, set); err != nil {
		return o, err
	}
	o.Inputs, err = inputs(&o.Common, pos)
	return o, err
}

func NewCSVFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "convert contig CSV tables to FASTA", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] contigs.csv [more.csv ...]\n", name)

		_, _ = fmt.Fprintln(out, "\nColumns:")
		_, _ = fmt.Fprintf(out, "      --id-column string      Header column [%s]\n", def("id-column"))
		_, _ = fmt.Fprintf(out, "      --seq-column string     Sequence column [%s]\n", def("seq-column"))
		_, _ = fmt.Fprintf(out, "  -d, --delimiter string      Field delimiter [%s]\n", def("delimiter"))
		_, _ = fmt.Fprintf(out, "      --wrap int              FASTA line width (0 = no wrapping) [%s]\n", def("wrap"))
	})
	return fs
}

func ParseCSVArgs(fs *flag.FlagSet, argv []string) (CSVOptions, error) {
	var o CSVOptions
	clibase.Register(fs, &o.Common)
	var delim string
	fs.StringVar(&o.IDColumn, "id-column", convert.DefaultIDColumn, "header column")
	fs.StringVar(&o.SeqColumn, "seq-column", convert.DefaultSeqColumn, "sequence column")
	fs.StringVar(&delim, "delimiter", ",", "field delimiter")
	fs.StringVar(&delim, "d", ",", "alias of --delimiter")
	fs.IntVar(&o.Wrap, "wrap", 0, "FASTA line width")

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
	if !clibase.IsSet(set, "delimiter", "d") {
		delim = config.StringOr(cfg.Delimiter, delim)
	}

	var auto bool
	if o.Delimiter, auto, err = table.ParseDelimiter(delim); err != nil {
		return o, err
	}
	if auto {
		return o, fmt.Errorf("--delimiter auto is not supported here")
	}
	if o.Wrap < 0 {
		return o, fmt.Errorf("--wrap must be ≥ 0")
	}
	o.Inputs, err = inputs(&o.Common, pos)
	return o, err
}

func inputs(c *clibase.Common, pos []string) ([]string, error) {
	if err := clibase.Validate(c); err != nil {
		return nil, err
	}
	if len(pos) == 0 {
		return nil, fmt.Errorf("at least one input file is required")
	}
	exp, err := cliutil.ExpandPositionals(pos)
	if err != nil {
		return nil, &clibase.UsageError{Err: err}
	}
	if err := cliutil.SingleStdin(exp); err != nil {
		return nil, err
	}
	return exp, clibase.CheckInputs(exp...)
}
