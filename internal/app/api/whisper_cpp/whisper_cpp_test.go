package whisper_cpp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-transcriber/internal/app/api"
)

// TestLocalTranscriber_Interface verifies LocalTranscriber implements api.Transcriber
func TestLocalTranscriber_Interface(t *testing.T) {
	var _ api.Transcriber = (*LocalTranscriber)(nil)
}

func TestResolveModelPath(t *testing.T) {
	tests := []struct {
		name     string
		modelDir string
		tier     string
		expected string
	}{
		{
			name:     "small_tier",
			modelDir: "/opt/whisper/models",
			tier:     "small",
			expected: filepath.Join("/opt/whisper/models", "ggml-small.bin"),
		},
		{
			name:     "large_variant",
			modelDir: "/opt/whisper/models",
			tier:     "large-v3",
			expected: filepath.Join("/opt/whisper/models", "ggml-large-v3.bin"),
		},
		{
			name:     "relative_dir",
			modelDir: "models",
			tier:     "tiny",
			expected: filepath.Join("models", "ggml-tiny.bin"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveModelPath(tt.modelDir, tt.tier))
		})
	}
}

func TestParseOutput(t *testing.T) {
	raw := `{
		"result": {"language": "en"},
		"transcription": [
			{"offsets": {"from": 0, "to": 1500}, "text": " Hi"},
			{"offsets": {"from": 1500, "to": 2400}, "text": " there"},
			{"offsets": {"from": 2400, "to": 3800}, "text": " friend"}
		]
	}`

	segments, err := ParseOutput([]byte(raw))
	require.NoError(t, err)
	require.Len(t, segments, 3)

	assert.Equal(t, " Hi", segments[0].Text)
	assert.Equal(t, 0.0, segments[0].Start)
	assert.Equal(t, 1.5, segments[0].End)
	assert.Equal(t, 1, segments[1].ID)
	assert.Equal(t, " friend", segments[2].Text)
	assert.Equal(t, 3.8, segments[2].End)
}

func TestParseOutput_Empty(t *testing.T) {
	segments, err := ParseOutput([]byte(`{"result": {"language": "en"}, "transcription": []}`))
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestParseOutput_InvalidJSON(t *testing.T) {
	_, err := ParseOutput([]byte(`{"transcription": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse whisper.cpp output")
}

func TestWithBeamSize_IgnoresNonPositive(t *testing.T) {
	lt := NewLocalTranscriber("/usr/local/bin/whisper-cli", "/models/ggml-small.bin")
	lt.WithBeamSize(0)
	assert.Equal(t, 5, lt.beamSize)
	lt.WithBeamSize(8)
	assert.Equal(t, 8, lt.beamSize)
}
