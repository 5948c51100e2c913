// Package writers turns correlated records into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (FASTA wrapping, TSV quoting, stats reports).
//   • Correlators stay domain-only; the pipeline stays orchestration-only.
//   • JSON stats go through pkg/api (v1) for a stable wire format.
package writers
