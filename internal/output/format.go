package output

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists the table formats in help order.
var Formats = []string{FormatCSV, FormatTSV, FormatJSON, FormatJSONL}

// ResolveFormat returns explicit when set, otherwise infers the format from
// the output path extension and falls back to CSV.
func ResolveFormat(explicit, path string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(explicit))
	if f == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".tsv", ".tab":
			f = FormatTSV
		case ".json":
			f = FormatJSON
		case ".jsonl", ".ndjson":
			f = FormatJSONL
		default:
			f = FormatCSV
		}
	}
	for _, k := range Formats {
		if f == k {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", explicit, strings.Join(Formats, ", "))
}
