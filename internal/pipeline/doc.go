// Package pipeline wires the readers, the aggregator, the correlators and
// the writers into the three run modes: threshold filter (Aggregate then
// Filter), hit-set exclusion, and sequence merge.
//
// Each mode takes already-opened inputs and returns its tallies; opening
// files, flag handling and exit codes belong to the app packages.
package pipeline
