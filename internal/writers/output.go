// internal/writers/output.go
package writers

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	gzip "github.com/klauspost/pgzip"
)

// Output is the destination of a run. A named file is created on the first
// write, so a run that fails on configuration leaves nothing behind; Close
// creates it (empty) if nothing was written. A .gz path is compressed.
type Output struct {
	path   string
	stdout io.Writer

	w  io.Writer
	f  *os.File
	gz *gzip.Writer
}

// NewOutput returns an Output for path ("-" writes to stdout).
func NewOutput(path string, stdout io.Writer) *Output {
	return &Output{path: path, stdout: stdout}
}

// Name is the path as given, for messages.
func (o *Output) Name() string {
	if o.path == "-" || o.path == "" {
		return "stdout"
	}
	return o.path
}

func (o *Output) open() error {
	if o.w != nil {
		return nil
	}
	if o.path == "-" || o.path == "" {
		o.w = o.stdout
		return nil
	}
	f, err := os.Create(o.path)
	if err != nil {
		return err
	}
	o.f, o.w = f, f
	if strings.HasSuffix(o.path, ".gz") {
		o.gz = gzip.NewWriter(f)
		o.w = o.gz
	}
	return nil
}

func (o *Output) Write(p []byte) (int, error) {
	if err := o.open(); err != nil {
		return 0, err
	}
	return o.w.Write(p)
}

// Close finishes compression and closes the file. Stdout is left open.
func (o *Output) Close() error {
	if err := o.open(); err != nil {
		return err
	}
	var err error
	if o.gz != nil {
		err = o.gz.Close()
	}
	if o.f != nil {
		if cerr := o.f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Abort closes a file opened so far without creating one that was never
// written to.
func (o *Output) Abort() {
	if o.gz != nil {
		_ = o.gz.Close()
	}
	if o.f != nil {
		_ = o.f.Close()
	}
}

// IsBrokenPipe reports whether err comes from a reader closing early, as
// `head` does. Such runs exit 0.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
