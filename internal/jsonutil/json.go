// internal/jsonutil/json.go
package jsonutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// EncodePretty writes v as two-space indented JSON without HTML escaping.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// LineWriter emits JSON Lines: one compact value per line.
type LineWriter struct {
	bw  *bufio.Writer
	enc *json.Encoder
	n   int
}

// NewLineWriter binds a pooled 64 KiB buffer to out. Close must be called to
// flush.
func NewLineWriter(out io.Writer) *LineWriter {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &LineWriter{bw: bw, enc: enc}
}

// Encode writes v followed by a newline.
func (w *LineWriter) Encode(v any) error {
	if err := w.enc.Encode(v); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count is the number of lines written so far.
func (w *LineWriter) Count() int { return w.n }

// Close flushes and returns the buffer to the pool. The LineWriter must not
// be used afterwards.
func (w *LineWriter) Close() error {
	if w.bw == nil {
		return nil
	}
	err := w.bw.Flush()
	w.bw.Reset(io.Discard)
	bwPool.Put(w.bw)
	w.bw, w.enc = nil, nil
	return err
}
