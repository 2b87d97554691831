// internal/writers/registry.go
package writers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"abrank/internal/jsonlutil"
	"abrank/internal/output"
)

// Table writers by format. Register in init(); last wins.
var TableWriters = map[string]func(w io.Writer, t output.Table) error{}

func RegisterTable(format string, fn func(io.Writer, output.Table) error) {
	TableWriters[format] = fn
}

// WriteTable dispatches t to the writer registered for format.
func WriteTable(format string, w io.Writer, t output.Table) error {
	fn, ok := TableWriters[format]
	if !ok {
		return fmt.Errorf("unknown table format %q (no writer registered)", format)
	}
	return fn(w, t)
}

func writeDelimited(w io.Writer, t output.Table, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeJSON renders the records as one indented array. HTML escaping is off
// so ids with '<' or '&' survive verbatim.
func writeJSON(w io.Writer, t output.Table) error {
	recs := t.Records
	if recs == nil {
		recs = []any{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}

func init() {
	RegisterTable(output.FormatCSV, func(w io.Writer, t output.Table) error {
		return writeDelimited(w, t, ',')
	})
	RegisterTable(output.FormatTSV, func(w io.Writer, t output.Table) error {
		return writeDelimited(w, t, '\t')
	})
	RegisterTable(output.FormatJSON, writeJSON)
	RegisterTable(output.FormatJSONL, func(w io.Writer, t output.Table) error {
		in, done := jsonlutil.Start(w, 64, func(enc *json.Encoder, v any) error {
			return enc.Encode(v)
		}, IsBrokenPipe)
		for _, r := range t.Records {
			in <- r
		}
		close(in)
		return <-done
	})
}
