package openai

import (
	"os"
	"sync"

	"github.com/sashabaranov/go-openai"

	"audio-transcriber/internal/app/errors"
)

var (
	once      sync.Once
	singleton *openai.Client
	initErr   error
)

// GetClient returns the shared OpenAI API client. The client is built once
// from OPENAI_API_KEY, later calls reuse it.
func GetClient() (*openai.Client, error) {
	once.Do(func() {
		singleton, initErr = newClientFromEnv()
	})
	return singleton, initErr
}

func newClientFromEnv() (*openai.Client, error) {
	token := os.Getenv("OPENAI_API_KEY")
	if token == "" {
		return nil, errors.Wrap(errors.ErrMissingAPIKey, "OPENAI_API_KEY environment variable not set")
	}
	return openai.NewClient(token), nil
}
