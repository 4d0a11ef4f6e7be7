package store

// amount is stored as TEXT so decimal values round-trip exactly.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    date                 TEXT,
    amount               TEXT NOT NULL DEFAULT '0',
    description          TEXT,
    type                 TEXT,
    category             TEXT,
    source_file          TEXT
);

CREATE TABLE IF NOT EXISTS imports (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL,
    row_count            INTEGER NOT NULL,
    imported_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_source ON transactions(source_file);
`
