package pg

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-transcriber/internal/app/model"
)

func newMockDB(t *testing.T) (*PostgresDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresDB{db: db}, mock
}

func TestPostgresDB_Record_Unit(t *testing.T) {
	pdb, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO runs")).
		WithArgs("run-1", "sample.wav", "/audio/sample.wav", "openai", "medium",
			7, "hello world", now, false, "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := pdb.Record(model.Run{
		RunID:       "run-1",
		FileName:    "sample.wav",
		FilePath:    "/audio/sample.wav",
		Provider:    "openai",
		ModelTier:   "medium",
		DurationSec: 7,
		Transcript:  "hello world",
		CreatedAt:   now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_ListRecent_Unit(t *testing.T) {
	pdb, mock := newMockDB(t)

	now := time.Now()
	columns := []string{"id", "run_id", "file_name", "file_path", "provider", "model_tier",
		"duration_sec", "transcript", "created_at", "has_error", "error_message"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM runs")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "run-1", "a.wav", "/audio/a.wav", "whisper_cpp", "small", 3, "one", now, false, ""))

	runs, err := pdb.ListRecent(5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "one", runs[0].Transcript)
	assert.Equal(t, "whisper_cpp", runs[0].Provider)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_ListRecent_QueryError(t *testing.T) {
	pdb, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM runs")).
		WillReturnError(assert.AnError)

	_, err := pdb.ListRecent(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query failed")
}

func TestPostgresDB_Close_Unit(t *testing.T) {
	pdb, mock := newMockDB(t)
	mock.ExpectClose()
	require.NoError(t, pdb.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}
