package output

import (
	"strings"

	"abrank/pkg/api"
)

// RunsTable lists archived runs; stages are joined with ';'.
func RunsTable(rs []api.RunV1) Table {
	t := Table{Columns: RunsColumns}
	for _, r := range rs {
		t.add(r, r.ID, r.Command, r.Version, r.CreatedAt, strings.Join(r.Stages, ";"))
	}
	return t
}
