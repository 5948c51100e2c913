// internal/clibase/usage.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"seqjoin/internal/version"
)

// ErrPrintedAndExitOK is returned by Parse after --examples has been handled.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples writes the --examples text: a title line, the tool's own
// command lines, then a pointer to --help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	fmt.Fprintf(out, "%s: quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	fmt.Fprintf(out, "\nRun '%s --help' for all flags.\n", name)
}

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage lines, tool flags).
func UsageCommon(fs *flag.FlagSet, name, summary string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, summary)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output file           Output file ('-' = STDOUT, .gz compresses) [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no records are written [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file           YAML defaults (flags given on the command line win)")
		fmt.Fprintf(out, "  -v, --verbose               Print per-stage diagnostics [%s]\n", def("verbose"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings and progress [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "      --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
