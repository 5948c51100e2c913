package mergecli

import (
	"flag"
	"fmt"
	"io"

	"seqjoin/internal/clibase"
	"seqjoin/internal/cliutil"
	"seqjoin/internal/config"
	"seqjoin/internal/fasta"
	"seqjoin/internal/pipeline"
	"seqjoin/internal/table"
)

type Options struct {
	clibase.Common

	TSV   string
	FASTA string

	Delimiter   rune
	AutoDetect  bool
	TypeColumn  string
	LabelColumn string
	ColumnName  string
	Duplicates  fasta.DuplicatePolicy

	// DebugFASTA, when positive, prints the FASTA lines around that line
	// number instead of merging.
	DebugFASTA int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "attach FASTA sequences to table rows", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] hits.tsv contigs.fa\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] -d auto hits.csv contigs.fa.gz\n", name)

		_, _ = fmt.Fprintln(out, "\nRows of type S get the sequence whose header shares the first two")
		_, _ = fmt.Fprintln(out, "underscore-separated fields of the row's label; all rows are kept.")

		_, _ = fmt.Fprintln(out, "\nTable:")
		_, _ = fmt.Fprintf(out, "  -d, --delimiter string      Field delimiter: \\t, one character, or auto [%s]\n", `\t`)
		_, _ = fmt.Fprintf(out, "      --type-column string    Record type column [%s]\n", def("type-column"))
		_, _ = fmt.Fprintf(out, "      --label-column string   Label column [%s]\n", def("label-column"))
		_, _ = fmt.Fprintf(out, "      --column-name string    Name of the appended column [%s]\n", def("column-name"))
		_, _ = fmt.Fprintf(out, "      --duplicates string     Duplicate FASTA keys: last | first [%s]\n", def("duplicates"))

		_, _ = fmt.Fprintln(out, "\nDebugging:")
		_, _ = fmt.Fprintf(out, "      --debug-fasta int       Show the %d FASTA lines on each side of this line and exit\n", fasta.DebugContext)
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)

	var delim, dups string
	fs.StringVar(&delim, "delimiter", `\t`, "field delimiter")
	fs.StringVar(&delim, "d", `\t`, "alias of --delimiter")
	fs.StringVar(&o.TypeColumn, "type-column", pipeline.DefaultTypeColumn, "record type column")
	fs.StringVar(&o.LabelColumn, "label-column", pipeline.DefaultLabelColumn, "label column")
	fs.StringVar(&o.ColumnName, "column-name", pipeline.DefaultMergeColumn, "appended column name")
	fs.StringVar(&dups, "duplicates", fasta.KeepLast.String(), "duplicate FASTA keys: last | first")
	fs.IntVar(&o.DebugFASTA, "debug-fasta", 0, "show FASTA lines around this line number and exit")

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
	if !clibase.IsSet(set, "delimiter", "d") {
		delim = config.StringOr(cfg.Delimiter, delim)
	}
	if !clibase.IsSet(set, "duplicates") {
		dups = config.StringOr(cfg.Duplicates, dups)
	}

	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	if err := clibase.Positionals(pos, "TSV", "FASTA"); err != nil {
		return o, err
	}
	o.TSV, o.FASTA = pos[0], pos[1]

	if o.Delimiter, o.AutoDetect, err = table.ParseDelimiter(delim); err != nil {
		return o, err
	}
	if o.Duplicates, err = fasta.ParseDuplicatePolicy(dups); err != nil {
		return o, err
	}
	if o.DebugFASTA < 0 {
		return o, fmt.Errorf("--debug-fasta must be a positive line number")
	}
	if o.ColumnName == "" {
		return o, fmt.Errorf("--column-name must not be empty")
	}
	if err := cliutil.SingleStdin(pos); err != nil {
		return o, err
	}
	return o, clibase.CheckInputs(o.TSV, o.FASTA)
}
