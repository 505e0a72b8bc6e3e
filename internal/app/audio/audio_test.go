package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs16kHzWavProbe(t *testing.T) {
	tests := []struct {
		name      string
		probeJSON string
		expected  bool
	}{
		{
			name:      "16khz_pcm_wav",
			probeJSON: `{"streams":[{"codec_type":"audio","codec_name":"pcm_s16le","sample_rate":"16000"}]}`,
			expected:  true,
		},
		{
			name:      "44khz_pcm_wav",
			probeJSON: `{"streams":[{"codec_type":"audio","codec_name":"pcm_s16le","sample_rate":"44100"}]}`,
			expected:  false,
		},
		{
			name:      "mp3_stream",
			probeJSON: `{"streams":[{"codec_type":"audio","codec_name":"mp3","sample_rate":"16000"}]}`,
			expected:  false,
		},
		{
			name:      "video_stream_only",
			probeJSON: `{"streams":[{"codec_type":"video","codec_name":"h264"}]}`,
			expected:  false,
		},
		{
			name:      "no_streams",
			probeJSON: `{"streams":[]}`,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Is16kHzWavProbe([]byte(tt.probeJSON))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIs16kHzWavProbe_InvalidJSON(t *testing.T) {
	_, err := Is16kHzWavProbe([]byte(`{"streams":`))
	assert.Error(t, err)
}

func TestSupportedExtension(t *testing.T) {
	assert.True(t, supportedExtension(".wav"))
	assert.True(t, supportedExtension(".mp3"))
	assert.True(t, supportedExtension(".flac"))
	assert.False(t, supportedExtension(".mp4"))
	assert.False(t, supportedExtension(""))
}
