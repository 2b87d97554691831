// Package writers serializes output tables.
//
// CSV/TSV render the string cells of an output.Table; JSON/JSONL encode the
// pkg/api records carried alongside. Files are written to a temporary
// sibling and renamed into place once complete.
package writers
