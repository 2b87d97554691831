// Package output turns scored records into format-neutral tables: string
// cells for CSV/TSV and wire structs (pkg/api) for JSON/JSONL.
package output

import (
	"math"
	"strconv"
)

// Table is one output table. Records, when set, holds the wire value of
// each row in the same order as Rows.
type Table struct {
	Columns []string
	Rows    [][]string
	Records []any
}

func (t *Table) add(rec any, cells ...string) {
	t.Rows = append(t.Rows, cells)
	t.Records = append(t.Records, rec)
}

// Len is the row count.
func (t Table) Len() int { return len(t.Rows) }

// Float renders v in the shortest exact decimal form; NaN is empty.
func Float(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// OptFloat renders nil as an empty cell.
func OptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return Float(*v)
}

func Int(v int) string { return strconv.Itoa(v) }

// Bool01 renders a flag as 1/0.
func Bool01(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
