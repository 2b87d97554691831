// Package archive stores the tables of each run in a SQLite database so
// rankings from different runs can be compared later.
package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"abrank/internal/output"
)

// Archive is an open run archive.
type Archive struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive at path.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping archive: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create archive schema: %w", err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// StartRun records a run; saving the same id twice is a no-op.
func (a *Archive) StartRun(runID, command, version string) error {
	_, err := a.db.Exec(
		`INSERT INTO runs (id, command, version) VALUES (?, ?, ?) ON CONFLICT(id) DO NOTHING`,
		runID, command, version,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", runID, err)
	}
	return nil
}

func idColumn(cols []string) int {
	for i, c := range cols {
		if c == output.ColCandidateID {
			return i
		}
	}
	for i, c := range cols {
		if c == output.ColID {
			return i
		}
	}
	return -1
}

// SaveTable stores t under stage for runID, replacing an earlier copy.
func (a *Archive) SaveTable(runID, stage string, t output.Table) error {
	cols, err := json.Marshal(t.Columns)
	if err != nil {
		return err
	}
	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM stages WHERE run_id = ? AND name = ?`, runID, stage); err != nil {
		return fmt.Errorf("replace stage %s: %w", stage, err)
	}
	stageID := uuid.New().String()
	_, err = tx.Exec(
		`INSERT INTO stages (id, run_id, name, columns, row_count) VALUES (?, ?, ?, ?, ?)`,
		stageID, runID, stage, string(cols), len(t.Rows),
	)
	if err != nil {
		return fmt.Errorf("insert stage %s: %w", stage, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO stage_rows (stage_id, ord, candidate_id, cells, record) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare rows: %w", err)
	}
	defer stmt.Close()

	idc := idColumn(t.Columns)
	for i, r := range t.Rows {
		cells, err := json.Marshal(r)
		if err != nil {
			return err
		}
		var rec []byte
		if i < len(t.Records) {
			if rec, err = json.Marshal(t.Records[i]); err != nil {
				return err
			}
		}
		cid := ""
		if idc >= 0 && idc < len(r) {
			cid = r[idc]
		}
		if _, err := stmt.Exec(stageID, i, cid, string(cells), string(rec)); err != nil {
			return fmt.Errorf("insert row %d of %s: %w", i, stage, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Run is one archived run.
type Run struct {
	ID        string
	Command   string
	Version   string
	CreatedAt string
	Stages    []string
}

// Runs lists archived runs, newest first.
func (a *Archive) Runs() ([]Run, error) {
	rows, err := a.db.Query(`SELECT id, command, version, created_at FROM runs ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Command, &r.Version, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		st, err := a.stageNames(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Stages = st
	}
	return out, nil
}

func (a *Archive) stageNames(runID string) ([]string, error) {
	rows, err := a.db.Query(`SELECT name FROM stages WHERE run_id = ? ORDER BY created_at, rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// LoadTable returns the cells of an archived stage table.
func (a *Archive) LoadTable(runID, stage string) (output.Table, error) {
	var stageID, cols string
	err := a.db.QueryRow(`SELECT id, columns FROM stages WHERE run_id = ? AND name = ?`, runID, stage).Scan(&stageID, &cols)
	if err == sql.ErrNoRows {
		return output.Table{}, fmt.Errorf("stage %q of run %s not found", stage, runID)
	}
	if err != nil {
		return output.Table{}, fmt.Errorf("lookup stage %q: %w", stage, err)
	}
	var t output.Table
	if err := json.Unmarshal([]byte(cols), &t.Columns); err != nil {
		return output.Table{}, fmt.Errorf("decode columns: %w", err)
	}

	rows, err := a.db.Query(`SELECT cells, record FROM stage_rows WHERE stage_id = ? ORDER BY ord`, stageID)
	if err != nil {
		return output.Table{}, fmt.Errorf("load rows: %w", err)
	}
	defer rows.Close()
	var recs []any
	for rows.Next() {
		var raw, rec string
		if err := rows.Scan(&raw, &rec); err != nil {
			return output.Table{}, err
		}
		var cells []string
		if err := json.Unmarshal([]byte(raw), &cells); err != nil {
			return output.Table{}, fmt.Errorf("decode row: %w", err)
		}
		t.Rows = append(t.Rows, cells)
		if rec != "" {
			recs = append(recs, json.RawMessage(rec))
		}
	}
	// Records are only restored when every row had one.
	if len(recs) == len(t.Rows) && len(recs) > 0 {
		t.Records = recs
	}
	return t, rows.Err()
}
