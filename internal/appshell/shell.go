// Package appshell is the process boundary shared by every cmd/ main.
package appshell

import (
	"io"
	"os"
)

// Main runs a tool against the real process streams and exits with its
// code. With no arguments the tool prints its help.
func Main(run func([]string, io.Writer, io.Writer) int) {
	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	os.Exit(run(argv, os.Stdout, os.Stderr))
}
