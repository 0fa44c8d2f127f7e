package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    as_of        TEXT PRIMARY KEY,
    balance      REAL NOT NULL,
    recorded_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_recorded ON snapshots(recorded_at);
`
