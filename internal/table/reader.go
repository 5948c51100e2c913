// internal/table/reader.go
package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// HeaderMode says how the first physical row is treated.
type HeaderMode int

const (
	// HeaderAlways takes the first non-blank row as the schema.
	HeaderAlways HeaderMode = iota
	// HeaderIfSentinel takes the first row as the schema only when its first
	// field equals Options.Sentinel; otherwise it is the first data row.
	HeaderIfSentinel
	// HeaderNone treats every row as data; columns resolve by index only.
	HeaderNone
)

// SniffSize is how much input AutoDetect samples.
const SniffSize = 1024

// Options configures a Reader.
type Options struct {
	Delimiter  rune // 0 means tab
	AutoDetect bool // sniff the delimiter from the first SniffSize bytes
	Header     HeaderMode
	Sentinel   string
	Comment    rune     // lines starting with this rune are skipped (0 = none)
	Require    []string // named columns that must exist in the schema

	// Raw splits each physical line on the delimiter. Quotes are ordinary
	// characters, so a stray quote cannot join rows together.
	Raw bool
}

// maxRawLine bounds a single line in Raw mode.
const maxRawLine = 16 * 1024 * 1024

// Row is one physical data row.
type Row struct {
	Line   int
	Fields []string
}

// Field returns the i-th field, or false when the row is too short.
func (r Row) Field(i int) (string, bool) {
	if i < 0 || i >= len(r.Fields) {
		return "", false
	}
	return r.Fields[i], true
}

// Len is the number of fields in the row.
func (r Row) Len() int { return len(r.Fields) }

// Reader streams rows of delimited text.
type Reader struct {
	cr      *csv.Reader
	sc      *bufio.Scanner
	line    int
	comment rune
	delim   rune
	schema  Schema
	header  bool
	pending *Row
}

// NewReader determines the delimiter and schema before returning. A required
// column missing from the schema is reported here, before any row is read.
func NewReader(r io.Reader, opt Options) (*Reader, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = '\t'
	}
	if opt.AutoDetect {
		br := bufio.NewReaderSize(r, 4*SniffSize)
		sample, _ := br.Peek(SniffSize)
		d, err := Sniff(sample)
		if err != nil {
			return nil, err
		}
		delim, r = d, br
	}

	rd := &Reader{delim: delim, comment: opt.Comment}
	if opt.Raw {
		rd.sc = bufio.NewScanner(r)
		rd.sc.Buffer(make([]byte, 64*1024), maxRawLine)
	} else {
		cr := csv.NewReader(r)
		cr.Comma = delim
		cr.Comment = opt.Comment
		cr.LazyQuotes = true
		cr.FieldsPerRecord = -1
		rd.cr = cr
	}

	first, err := rd.read()
	switch {
	case err == io.EOF:
	case err != nil:
		return nil, err
	default:
		switch opt.Header {
		case HeaderAlways:
			rd.setSchema(first.Fields)
		case HeaderIfSentinel:
			if len(first.Fields) > 0 && strings.TrimSpace(first.Fields[0]) == opt.Sentinel {
				rd.setSchema(first.Fields)
			} else {
				rd.pending = &first
			}
		default:
			rd.pending = &first
		}
	}

	for _, name := range opt.Require {
		if _, err := rd.schema.Index(name); err != nil {
			return nil, err
		}
	}
	return rd, nil
}

func (rd *Reader) setSchema(raw []string) {
	rd.schema = NewSchema(raw)
	rd.header = true
}

// Next returns the next non-blank row, or io.EOF.
func (rd *Reader) Next() (Row, error) {
	if rd.pending != nil {
		row := *rd.pending
		rd.pending = nil
		return row, nil
	}
	return rd.read()
}

func (rd *Reader) read() (Row, error) {
	if rd.sc != nil {
		return rd.readRaw()
	}
	for {
		rec, err := rd.cr.Read()
		if err == io.EOF {
			return Row{}, io.EOF
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return Row{}, fmt.Errorf("table line %d: %w", pe.Line, pe.Err)
			}
			return Row{}, fmt.Errorf("table read: %w", err)
		}
		if blank(rec) {
			continue
		}
		line, _ := rd.cr.FieldPos(0)
		return Row{Line: line, Fields: rec}, nil
	}
}

func (rd *Reader) readRaw() (Row, error) {
	sep := string(rd.delim)
	for rd.sc.Scan() {
		rd.line++
		text := strings.TrimSuffix(rd.sc.Text(), "\r")
		if text == "" || (rd.comment != 0 && strings.HasPrefix(text, string(rd.comment))) {
			continue
		}
		rec := strings.Split(text, sep)
		if blank(rec) {
			continue
		}
		return Row{Line: rd.line, Fields: rec}, nil
	}
	if err := rd.sc.Err(); err != nil {
		return Row{}, fmt.Errorf("table line %d: %w", rd.line+1, err)
	}
	return Row{}, io.EOF
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// Schema is the header-derived schema (empty when the input had none).
func (rd *Reader) Schema() Schema { return rd.schema }

// HasHeader reports whether a header row was consumed.
func (rd *Reader) HasHeader() bool { return rd.header }

// Delimiter is the delimiter in use, after any auto-detection.
func (rd *Reader) Delimiter() rune { return rd.delim }

// ParseDelimiter interprets a CLI/config delimiter. "auto" selects sniffing;
// "\t" and "tab" mean a tab. Anything else must be exactly one character.
func ParseDelimiter(s string) (delim rune, auto bool, err error) {
	switch s {
	case "auto":
		return 0, true, nil
	case `\t`, "tab", "\t", "":
		return '\t', false, nil
	}
	rs := []rune(s)
	if len(rs) != 1 || rs[0] == '\n' || rs[0] == '\r' || rs[0] == '"' {
		return 0, false, fmt.Errorf("invalid delimiter %q (want a single character, \\t, or auto)", s)
	}
	return rs[0], false, nil
}
