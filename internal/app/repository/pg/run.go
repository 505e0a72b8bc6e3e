package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"audio-transcriber/internal/app/model"
)

type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB opens a Postgres-backed run history store and ensures the
// schema exists.
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &PostgresDB{db: db}, nil
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) Record(run model.Run) error {
	insertSQL := `INSERT INTO runs (run_id, file_name, file_path, provider, model_tier, duration_sec, transcript, created_at, has_error, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := pdb.db.Exec(insertSQL, run.RunID, run.FileName, run.FilePath, run.Provider, run.ModelTier,
		run.DurationSec, run.Transcript, run.CreatedAt, run.HasError, run.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert failed: %v", err)
	}
	return nil
}

func (pdb *PostgresDB) ListRecent(limit int) ([]model.Run, error) {
	query := `
		SELECT id, run_id, file_name, file_path, provider, model_tier, duration_sec, transcript, created_at, has_error, error_message
		FROM runs
		ORDER BY created_at DESC, id DESC`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		query += `
		LIMIT $1`
		args = append(args, limit)
	}

	rows, err := pdb.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	var runs []model.Run

	for rows.Next() {
		var r model.Run
		err = rows.Scan(&r.ID, &r.RunID, &r.FileName, &r.FilePath, &r.Provider, &r.ModelTier,
			&r.DurationSec, &r.Transcript, &r.CreatedAt, &r.HasError, &r.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}

		runs = append(runs, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %v", err)
	}

	return runs, nil
}
