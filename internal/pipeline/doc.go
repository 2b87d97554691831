// Package pipeline runs per-record work on a bounded worker pool.
//
// Results land in slots indexed by input position, so the output order is
// the input order regardless of scheduling.
package pipeline
