package repository

import (
	"os"
	"path/filepath"

	"audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/repository/pg"
	"audio-transcriber/internal/app/repository/sqlite"
	"audio-transcriber/internal/app/util/files"
	"audio-transcriber/internal/config"
)

// OpenFromEnv opens the run history store. TRANSCRIBE_DB_DSN selects
// Postgres, otherwise a local sqlite file under data/ is used.
func OpenFromEnv() (RunDAO, error) {
	if dsn := config.DatabaseDSN(); dsn != "" {
		return pg.NewPostgresDB(dsn)
	}

	projectRoot, err := files.GetProjectRoot()
	if err != nil {
		// Running outside a checkout, fall back to the working directory.
		projectRoot, err = os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to locate data directory")
		}
	}

	dataDir := filepath.Join(projectRoot, "data")
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		return nil, errors.Wrapf(err, "failed to create data directory %s", dataDir)
	}

	return sqlite.NewSQLiteDB(filepath.Join(dataDir, "transcription.db"))
}
