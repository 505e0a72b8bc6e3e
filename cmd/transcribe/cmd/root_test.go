package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAudioFile_NoArgs(t *testing.T) {
	_, err := resolveAudioFile(nil)
	require.EqualError(t, err, "Usage: transcribe <audio_file>")
}

func TestResolveAudioFile_MissingFile(t *testing.T) {
	_, err := resolveAudioFile([]string{"/no/such/file.mp3"})
	require.EqualError(t, err, "File not found: /no/such/file.mp3")
}

func TestResolveAudioFile_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))

	audioFile, err := resolveAudioFile([]string{path})
	require.NoError(t, err)
	assert.Equal(t, path, audioFile)
}

func TestRootCommand_InvocationFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "no arguments",
			args:    []string{},
			wantErr: "Usage: transcribe <audio_file>",
		},
		{
			name:    "missing file",
			args:    []string{"/no/such/file.mp3"},
			wantErr: "File not found: /no/such/file.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()
			require.EqualError(t, err, tt.wantErr)

			// No transcript, no usage screen: stdout stays clean for pipelines.
			assert.Empty(t, out.String())
		})
	}
}
