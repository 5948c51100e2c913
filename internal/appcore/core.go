// internal/appcore/core.go
package appcore

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqjoin/internal/clibase"
	"seqjoin/internal/cmdutil"
	"seqjoin/internal/table"
	"seqjoin/internal/version"
	"seqjoin/internal/writers"
)

// Exit codes shared by every tool.
const (
	ExitOK    = 0
	ExitUsage = 2 // bad flags, configuration, or missing input
	ExitIO    = 3 // failure while reading or writing data
)

// Env is what a tool's run step gets: its output sink and diagnostics.
type Env struct {
	Out    io.Writer
	Stderr io.Writer
	Log    *cmdutil.Logger
}

// Tool describes one command-line tool. O is its parsed options type.
type Tool[O any] struct {
	Name       string
	NewFlagSet func(name string) *flag.FlagSet
	Parse      func(fs *flag.FlagSet, argv []string) (O, error)
	Common     func(*O) *clibase.Common
	Examples   func(io.Writer)

	// Run does the work and reports how many records it wrote.
	Run func(env Env, opts O) (int, error)
}

// Run parses argv, runs the tool, and maps the outcome to an exit code.
func Run[O any](t Tool[O], argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := t.NewFlagSet(t.Name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := t.Parse(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			clibase.PrintExamples(outw, t.Name, t.Examples)
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", t.Name, err)
		var ue *clibase.UsageError
		if !errors.As(err, &ue) {
			_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", t.Name)
		}
		return ExitUsage
	}

	c := t.Common(&opts)
	if c.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", t.Name, version.Version)
		return flush(outw, stderr, ExitOK)
	}

	log := cmdutil.NewLogger(stderr, c.Quiet, c.Verbose)
	out := writers.NewOutput(c.Output, outw)
	n, err := t.Run(Env{Out: out, Stderr: stderr, Log: log}, opts)
	if err != nil {
		out.Abort()
		code := ExitCode(err)
		if code != ExitOK {
			log.Errorf("%v", err)
		}
		if code == ExitUsage {
			return code
		}
		return flush(outw, stderr, code)
	}
	if err := out.Close(); err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		log.Errorf("%v", err)
		return ExitIO
	}
	code := flush(outw, stderr, ExitOK)
	if code == ExitOK && n == 0 {
		return c.NoMatchExitCode
	}
	return code
}

// ExitCode classifies a run error. Downstream closing the pipe early is
// not a failure.
func ExitCode(err error) int {
	var (
		ue *clibase.UsageError
		mc *table.MissingColumnError
	)
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.As(err, &ue), errors.As(err, &mc), errors.Is(err, table.ErrNoDelimiter):
		return ExitUsage
	}
	return ExitIO
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}
