package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"audio-transcriber/internal/app/model"
)

func TestToExcel(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "runs.xlsx")

	createdAt := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID: 1, RunID: "run-1", FileName: "sample.wav", Provider: "whisper_cpp",
			ModelTier: "small", DurationSec: 42, Transcript: "Hi there friend",
			CreatedAt: createdAt,
		},
		{
			ID: 2, RunID: "run-2", FileName: "broken.wav", Provider: "openai",
			ModelTier: "small", CreatedAt: createdAt, HasError: true,
			ErrorMessage: "engine failure",
		},
	}

	require.NoError(t, ToExcel(runs, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Transcriptions", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "run-1", sheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "Hi there friend", sheet.Rows[1].Cells[7].Value)
	assert.Equal(t, "engine failure", sheet.Rows[2].Cells[8].Value)
}

func TestToExcel_NoRuns(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ToExcel(nil, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 1)
}
