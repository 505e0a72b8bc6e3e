package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"audio-transcriber/internal/app/model"
)

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) the sqlite run history database and ensures
// the schema exists.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Record(run model.Run) error {
	insertSQL := `INSERT INTO runs (run_id, file_name, file_path, provider, model_tier, duration_sec, transcript, created_at, has_error, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, run.RunID, run.FileName, run.FilePath, run.Provider, run.ModelTier,
		run.DurationSec, run.Transcript, run.CreatedAt, boolToInt(run.HasError), run.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert failed: %v", err)
	}
	return nil
}

func (sdb *SQLiteDB) ListRecent(limit int) ([]model.Run, error) {
	query := `
		SELECT id, run_id, file_name, file_path, provider, model_tier, duration_sec, transcript, created_at, has_error, error_message
		FROM runs
		ORDER BY created_at DESC, id DESC`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		query += `
		LIMIT ?`
		args = append(args, limit)
	}

	rows, err := sdb.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	runs := make([]model.Run, 0)

	for rows.Next() {
		var r model.Run
		var hasError int
		err = rows.Scan(&r.ID, &r.RunID, &r.FileName, &r.FilePath, &r.Provider, &r.ModelTier,
			&r.DurationSec, &r.Transcript, &r.CreatedAt, &hasError, &r.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}
		r.HasError = hasError != 0

		runs = append(runs, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}

	return runs, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
