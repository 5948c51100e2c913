// internal/writers/table.go
package writers

import (
	"bufio"
	"io"
	"strings"
)

// TableWriter writes delimited rows. Columns appended by a correlation go at
// the end of each row, after the original schema.
//
// Quoting is minimal: a field is quoted only when it contains the delimiter,
// a double quote, or a line break. Other text, including leading spaces in
// header names, is written as read.
type TableWriter struct {
	buf   *bufio.Writer
	delim rune
	raw   bool
	n     int
}

func NewTableWriter(w io.Writer, delim rune) *TableWriter {
	if delim == 0 {
		delim = '\t'
	}
	return &TableWriter{buf: bufio.NewWriterSize(w, 64<<10), delim: delim}
}

// NewRawTableWriter never quotes. Its output reads back unchanged through a
// table.Reader in Raw mode, provided no field holds the delimiter or a newline.
func NewRawTableWriter(w io.Writer, delim rune) *TableWriter {
	t := NewTableWriter(w, delim)
	t.raw = true
	return t
}

// WriteHeader writes the schema row followed by any appended column names.
func (t *TableWriter) WriteHeader(schema []string, appended ...string) error {
	return t.write(schema, appended)
}

// WriteRow writes fields followed by the appended values.
func (t *TableWriter) WriteRow(fields []string, appended ...string) error {
	if err := t.write(fields, appended); err != nil {
		return err
	}
	t.n++
	return nil
}

func (t *TableWriter) write(fields, appended []string) error {
	i := 0
	put := func(f string) error {
		if i > 0 {
			if _, err := t.buf.WriteRune(t.delim); err != nil {
				return err
			}
		}
		i++
		if t.raw || !t.needsQuotes(f) {
			_, err := t.buf.WriteString(f)
			return err
		}
		_, err := t.buf.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`)
		return err
	}
	for _, f := range fields {
		if err := put(f); err != nil {
			return err
		}
	}
	for _, f := range appended {
		if err := put(f); err != nil {
			return err
		}
	}
	return t.buf.WriteByte('\n')
}

func (t *TableWriter) needsQuotes(f string) bool {
	return strings.ContainsRune(f, t.delim) || strings.ContainsAny(f, "\"\r\n")
}

// Rows is the number of data rows written (header excluded).
func (t *TableWriter) Rows() int { return t.n }

func (t *TableWriter) Flush() error { return t.buf.Flush() }
