package sqlite

const createTableSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	file_name TEXT NOT NULL,
	file_path TEXT NOT NULL,
	provider TEXT NOT NULL,
	model_tier TEXT NOT NULL,
	duration_sec INTEGER NOT NULL DEFAULT 0,
	transcript TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs (created_at);
`
