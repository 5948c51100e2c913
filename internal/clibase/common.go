// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"seqjoin/internal/cliutil"
	"seqjoin/internal/config"
)

// Common holds CLI fields shared by every seqjoin tool.
type Common struct {
	Output     string // "-" is stdout; a .gz suffix compresses
	ConfigFile string

	NoMatchExitCode int

	Verbose  bool
	Quiet    bool
	Version  bool
	Examples bool
	Help     bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Output, "output", "-", "output file ('-' = stdout, .gz compresses) [-]")
	fs.StringVar(&c.Output, "o", "-", "alias of --output")
	fs.StringVar(&c.ConfigFile, "config", "", "YAML file with default settings")
	fs.IntVar(&c.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no records are written [0]")

	fs.BoolVar(&c.Verbose, "verbose", false, "print per-stage diagnostics [false]")
	fs.BoolVar(&c.Verbose, "v", false, "alias of --verbose")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress warnings and progress [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print quickstart examples and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show this help [false]")
	fs.BoolVar(&c.Help, "help", false, "show this help [false]")
}

// Parse splits argv, parses flags, and handles --help/--examples. It
// returns the positionals and the set of flag names given explicitly.
func Parse(fs *flag.FlagSet, c *Common, argv []string) (pos []string, set map[string]bool, err error) {
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, nil, err
	}
	if c.Help {
		return nil, nil, flag.ErrHelp
	}
	if c.Examples {
		return nil, nil, ErrPrintedAndExitOK
	}
	set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return append(posArgs, fs.Args()...), set, nil
}

// IsSet reports whether any of names (a flag and its aliases) was given.
func IsSet(set map[string]bool, names ...string) bool {
	for _, n := range names {
		if set[n] {
			return true
		}
	}
	return false
}

// LoadConfig reads c.ConfigFile and applies its shared settings to c where
// the matching flag was not given.
func LoadConfig(c *Common, set map[string]bool) (*config.Config, error) {
	cfg, err := config.Load(c.ConfigFile)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	if !IsSet(set, "verbose", "v") && cfg.Verbose {
		c.Verbose = true
	}
	if !IsSet(set, "quiet", "q") && cfg.Quiet {
		c.Quiet = true
	}
	return cfg, nil
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if c.Output == "" {
		return errors.New("--output must not be empty")
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	if c.Verbose && c.Quiet {
		return errors.New("--verbose conflicts with --quiet")
	}
	return nil
}

// Positionals checks the positional count and names what is missing.
func Positionals(pos []string, names ...string) error {
	switch {
	case len(pos) < len(names):
		return fmt.Errorf("missing %s (want %d positional arguments, got %d)", names[len(pos)], len(names), len(pos))
	case len(pos) > len(names):
		return fmt.Errorf("unexpected argument %q", pos[len(names)])
	}
	return nil
}

// UsageError marks an error caused by flags, configuration or missing
// inputs; apps map it to exit code 2.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// CheckInputs fails for the first path that does not exist as a regular
// file. "-" (stdin) is always accepted.
func CheckInputs(paths ...string) error {
	for _, p := range paths {
		if p == "-" {
			continue
		}
		fi, err := os.Stat(p)
		if err != nil {
			return &UsageError{Err: fmt.Errorf("input file %q not found", p)}
		}
		if fi.IsDir() {
			return &UsageError{Err: fmt.Errorf("input %q is a directory", p)}
		}
	}
	return nil
}
