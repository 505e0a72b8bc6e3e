package provider

import (
	"os"

	"audio-transcriber/internal/app/api"
	"audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/config"
)

// NewTranscriberFromEnv builds the transcriber selected by the environment.
// Provider name priority: TRANSCRIBE_PROVIDER, then the default_provider from
// providers.yaml, then whisper_cpp.
func NewTranscriberFromEnv() (api.Transcriber, error) {
	cfg, err := LoadConfigFromSearchPaths()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load provider configuration")
	}

	name := config.ProviderName()
	if os.Getenv("TRANSCRIBE_PROVIDER") == "" && cfg.DefaultProvider != "" {
		name = cfg.DefaultProvider
	}

	creator, err := GetProviderCreator(name)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrProviderNotFound, "provider %q", name)
	}

	transcriber, err := creator(cfg.Providers[name].Settings)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create provider %q", name)
	}
	return transcriber, nil
}
