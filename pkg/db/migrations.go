package db

// migrationsSQL is the full schema. The table is a regenerable artifact: a
// deterministic function of the corpus inputs, safe to rebuild from scratch.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    character TEXT NOT NULL UNIQUE,
    keyword TEXT NOT NULL DEFAULT '',
    reading TEXT NOT NULL DEFAULT '',
    decomposition TEXT NOT NULL DEFAULT '',
    components_detail TEXT NOT NULL DEFAULT '',
    spatial TEXT NOT NULL DEFAULT '',
    ids TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_records_keyword ON records(keyword);
`
