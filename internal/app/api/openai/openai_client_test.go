package openai

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-transcriber/internal/app/errors"
)

func TestNewClientFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	client, err := newClientFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClientFromEnv_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	os.Unsetenv("OPENAI_API_KEY")

	client, err := newClientFromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingAPIKey)
	assert.Nil(t, client)
}
