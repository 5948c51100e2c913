// Package convert turns clustering and assembly side files into the formats
// the correlation tools read: UC into a fixed-schema TSV, and a two-column
// CSV into FASTA.
package convert

import (
	"io"
	"strings"

	"seqjoin/internal/table"
	"seqjoin/internal/writers"
)

// UCColumns is the fixed schema of a UC file.
var UCColumns = []string{
	"RecordType", "Cluster", "Length", "PctId", "Strand",
	"Mismatch", "GapOpen", "Qlo", "Qhi", "Tlo", "Thi",
	"Evalue", "BitScore", "Query", "Target",
}

// UCStats counts what UCToTSV did.
type UCStats struct {
	Rows      int
	Padded    int
	Truncated int
}

// UCToTSV writes every data row of r, padded or truncated to exactly
// len(UCColumns) fields, after the UCColumns header when header is set.
// Comment (#) and blank lines are skipped.
func UCToTSV(r io.Reader, w io.Writer, header bool) (UCStats, error) {
	var st UCStats
	rd, err := table.NewReader(r, table.Options{Header: table.HeaderNone, Comment: '#', Raw: true})
	if err != nil {
		return st, err
	}
	tw := writers.NewRawTableWriter(w, '\t')
	if header {
		if err := tw.WriteHeader(UCColumns); err != nil {
			return st, err
		}
	}
	width := len(UCColumns)
	for {
		row, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, err
		}
		fields := row.Fields
		fields[0] = strings.TrimLeft(fields[0], " \t")
		fields[len(fields)-1] = strings.TrimRight(fields[len(fields)-1], " \t")
		switch {
		case len(fields) < width:
			fields = append(fields, make([]string, width-len(fields))...)
			st.Padded++
		case len(fields) > width:
			fields = fields[:width]
			st.Truncated++
		}
		if err := tw.WriteRow(fields); err != nil {
			return st, err
		}
		st.Rows++
	}
	return st, tw.Flush()
}

// Default CSV column names for CSVToFASTA.
const (
	DefaultIDColumn  = "Contig_ID"
	DefaultSeqColumn = "Sequence"
)

// CSVOptions selects the columns and output width of CSVToFASTA.
type CSVOptions struct {
	IDColumn  string
	SeqColumn string
	Delimiter rune // 0 means comma
	Wrap      int  // <= 0 writes each sequence on one line
}

// CSVToFASTA writes one FASTA record per CSV row: the ID column becomes the
// header, the sequence column the body. A missing column is reported before
// anything is written.
func CSVToFASTA(r io.Reader, w io.Writer, opt CSVOptions) (int, error) {
	if opt.IDColumn == "" {
		opt.IDColumn = DefaultIDColumn
	}
	if opt.SeqColumn == "" {
		opt.SeqColumn = DefaultSeqColumn
	}
	if opt.Delimiter == 0 {
		opt.Delimiter = ','
	}
	rd, err := table.NewReader(r, table.Options{
		Delimiter: opt.Delimiter,
		Header:    table.HeaderAlways,
		Require:   []string{opt.IDColumn, opt.SeqColumn},
	})
	if err != nil {
		return 0, err
	}
	idCol, _ := rd.Schema().Index(opt.IDColumn)
	seqCol, _ := rd.Schema().Index(opt.SeqColumn)

	fw := writers.NewFASTAWriter(w, opt.Wrap)
	for {
		row, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fw.Count(), err
		}
		id, _ := row.Field(idCol)
		seq, _ := row.Field(seqCol)
		if err := fw.Write(id, []byte(strings.TrimSpace(seq))); err != nil {
			return fw.Count(), err
		}
	}
	return fw.Count(), fw.Flush()
}
