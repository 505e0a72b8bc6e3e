package whisper

import (
	"os"

	goopenai "github.com/sashabaranov/go-openai"

	"audio-transcriber/internal/app/api"
	apiopenai "audio-transcriber/internal/app/api/openai"
	"audio-transcriber/internal/app/api/provider"
)

func init() {
	// Register the openai provider with the factory
	provider.RegisterProvider("openai", createOpenAIProvider)
}

// createOpenAIProvider creates an OpenAI Whisper provider from the
// environment and optional provider settings.
func createOpenAIProvider(settings map[string]interface{}) (api.Transcriber, error) {
	client, err := apiopenai.GetClient()
	if err != nil {
		return nil, err
	}

	if baseURL := provider.StringSetting(settings, "base_url"); baseURL != "" {
		cfg := goopenai.DefaultConfig(os.Getenv("OPENAI_API_KEY"))
		cfg.BaseURL = baseURL
		client = goopenai.NewClientWithConfig(cfg)
	}

	return NewRemoteTranscriber(client).
		WithModel(provider.StringSetting(settings, "model")).
		WithLanguage(provider.StringSetting(settings, "language")).
		WithPrompt(provider.StringSetting(settings, "prompt")), nil
}
