package archive

// Schema is the SQL schema of a run archive database.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    command     TEXT NOT NULL,
    version     TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS stages (
    id          TEXT PRIMARY KEY,
    run_id      TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    name        TEXT NOT NULL,
    columns     TEXT NOT NULL,
    row_count   INTEGER NOT NULL,
    created_at  TEXT NOT NULL DEFAULT (datetime('now')),
    UNIQUE(run_id, name)
);

CREATE TABLE IF NOT EXISTS stage_rows (
    stage_id     TEXT NOT NULL REFERENCES stages(id) ON DELETE CASCADE,
    ord          INTEGER NOT NULL,
    candidate_id TEXT NOT NULL,
    cells        TEXT NOT NULL,
    record       TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (stage_id, ord)
);

CREATE INDEX IF NOT EXISTS idx_stages_run ON stages(run_id);
CREATE INDEX IF NOT EXISTS idx_rows_candidate ON stage_rows(candidate_id);
`
