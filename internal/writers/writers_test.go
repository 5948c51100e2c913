package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqjoin/internal/cluster"
	"seqjoin/internal/fasta"
	"seqjoin/internal/key"
	"seqjoin/internal/table"
	"seqjoin/pkg/api"
)

func TestFASTAWriter_WrapsAt80(t *testing.T) {
	var buf bytes.Buffer
	w := NewFASTAWriter(&buf, DefaultColumns)
	seq := []byte(strings.Repeat("A", 170))
	require.NoError(t, w.Write("h1", seq))
	require.NoError(t, w.Write("empty", nil))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Equal(t, []string{">h1", strings.Repeat("A", 80), strings.Repeat("A", 80), "AAAAAAAAAA", ">empty"}, lines)
	assert.Equal(t, 2, w.Count())
}

func TestFASTAWriter_NoWrap(t *testing.T) {
	var buf bytes.Buffer
	w := NewFASTAWriter(&buf, 0)
	require.NoError(t, w.Write("x", []byte("ACGTACGT")))
	require.NoError(t, w.Flush())
	assert.Equal(t, ">x\nACGTACGT\n", buf.String())
}

func TestFASTAWriter_RoundTrip(t *testing.T) {
	recs := []fasta.Record{
		{Header: "DRR220096_248502_circle_248502_1", Seq: []byte(strings.Repeat("ACGT", 41))},
		{Header: "c cluster_num=12", Seq: []byte("GG")},
	}
	var buf bytes.Buffer
	w := NewFASTAWriter(&buf, DefaultColumns)
	for _, r := range recs {
		require.NoError(t, w.Write(r.Header, r.Seq))
	}
	require.NoError(t, w.Flush())

	for _, s := range []key.Strategy{key.Prefix, key.ClusterNum} {
		var got []fasta.Record
		require.NoError(t, fasta.Stream(bytes.NewReader(buf.Bytes()), s, func(r fasta.Record) error {
			got = append(got, r)
			return nil
		}))
		require.Len(t, got, len(recs))
		for i := range recs {
			assert.Equal(t, key.Extract(s, recs[i].Header), got[i].Key)
			assert.Equal(t, string(recs[i].Seq), string(got[i].Seq))
		}
	}
}

func TestTableWriter_AppendsAndQuotesMinimally(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTableWriter(&buf, '\t')
	require.NoError(t, tw.WriteHeader([]string{" record_type ", "query_label"}, "contig"))
	require.NoError(t, tw.WriteRow([]string{"S", "A_1 [1 - 2]"}, "ACGT"))
	require.NoError(t, tw.WriteRow([]string{"H", "tab\there", `q"t`}, ""))
	require.NoError(t, tw.Flush())
	assert.Equal(t,
		" record_type \tquery_label\tcontig\nS\tA_1 [1 - 2]\tACGT\nH\t\"tab\there\"\t\"q\"\"t\"\t\n",
		buf.String())
	assert.Equal(t, 2, tw.Rows())
}

func TestRawTableWriter_RoundTripsQuotes(t *testing.T) {
	var buf bytes.Buffer
	tw := NewRawTableWriter(&buf, '\t')
	require.NoError(t, tw.WriteRow([]string{"H", `"q1 desc`}))
	require.NoError(t, tw.WriteRow([]string{"S", "q2"}))
	require.NoError(t, tw.Flush())
	assert.Equal(t, "H\t\"q1 desc\nS\tq2\n", buf.String())

	rd, err := table.NewReader(&buf, table.Options{Header: table.HeaderNone, Raw: true})
	require.NoError(t, err)
	row, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"H", `"q1 desc`}, row.Fields)
}

func TestTableWriter_ReadBack(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTableWriter(&buf, ',')
	require.NoError(t, tw.WriteHeader([]string{"a", "b"}, "contig"))
	require.NoError(t, tw.WriteRow([]string{"x,y", "z"}, "ACGT"))
	require.NoError(t, tw.Flush())

	rd, err := table.NewReader(&buf, table.Options{Delimiter: ','})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "contig"}, rd.Schema().Names())
	row, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"x,y", "z", "ACGT"}, row.Fields)
}

func statsTable() cluster.Table {
	a := cluster.NewAggregator(cluster.Columns{Type: 0, Cluster: 1, Indicator: 2})
	for _, r := range [][]string{{"H", "7", "1"}, {"H", "3", "1"}, {"H", "3", "0"}} {
		a.Add(table.Row{Fields: r})
	}
	return a.Percentages()
}

func TestWriteStats_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStats("json", &buf, StatsReport{Organism: "Saccharomyces", Threshold: 50, Table: statsTable()}))
	var v api.StatsReportV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &v))
	assert.Equal(t, "Saccharomyces", v.Organism)
	require.Len(t, v.Clusters, 2)
	assert.Equal(t, api.ClusterStatsV1{Cluster: 3, Matches: 1, Total: 2, Percentage: 50, Passed: false}, v.Clusters[0])
	assert.Equal(t, api.ClusterStatsV1{Cluster: 7, Matches: 1, Total: 1, Percentage: 100, Passed: true}, v.Clusters[1])
}

func TestWriteStats_TSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStats("tsv", &buf, StatsReport{Organism: "Sac", Threshold: 50, Table: statsTable()}))
	assert.Equal(t, "cluster\tSac_count\ttotal\tpercentage\tpassed\n3\t1\t2\t50.0\tfalse\n7\t1\t1\t100.0\ttrue\n", buf.String())
}

func TestWriteStats_JSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStats("jsonl", &buf, StatsReport{Organism: "Sac", Threshold: 50, Table: statsTable()}))
	assert.Equal(t,
		`{"cluster":3,"matches":1,"total":2,"percentage":50,"passed":false}`+"\n"+
			`{"cluster":7,"matches":1,"total":1,"percentage":100,"passed":true}`+"\n",
		buf.String())
}

func TestWriteStats_UnknownFormat(t *testing.T) {
	err := WriteStats("nope-format", io.Discard, StatsReport{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stats format")
	assert.Equal(t, []string{"json", "jsonl", "tsv"}, StatsFormats())
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.True(t, IsBrokenPipe(fmt.Errorf("flush: %w", syscall.EPIPE)))
	assert.False(t, IsBrokenPipe(errors.New("disk full")))
}

func TestOutput_StdoutAndLazyFile(t *testing.T) {
	var stdout bytes.Buffer
	o := NewOutput("-", &stdout)
	_, err := o.Write([]byte("x\n"))
	require.NoError(t, err)
	require.NoError(t, o.Close())
	assert.Equal(t, "x\n", stdout.String())
	assert.Equal(t, "stdout", o.Name())

	path := filepath.Join(t.TempDir(), "out.fa")
	o = NewOutput(path, &stdout)
	o.Abort()
	assert.NoFileExists(t, path, "nothing written, nothing created")

	o = NewOutput(path, &stdout)
	require.NoError(t, o.Close())
	assert.FileExists(t, path, "a successful empty run still leaves a file")
}

func TestOutput_GzipSuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.fa.gz")
	o := NewOutput(path, io.Discard)
	w := NewFASTAWriter(o, DefaultColumns)
	require.NoError(t, w.Write("a cluster_num=1", []byte("ACGT")))
	require.NoError(t, w.Flush())
	require.NoError(t, o.Close())

	rc, err := fasta.Open(path)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, ">a cluster_num=1\nACGT\n", string(data))
}
