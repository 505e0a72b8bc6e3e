package whisper_cpp

import (
	"log"
	"os"

	"audio-transcriber/internal/app/api"
	"audio-transcriber/internal/app/api/provider"
	"audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/config"
)

func init() {
	// Register the local whisper.cpp provider with the factory
	provider.RegisterProvider("whisper_cpp", createWhisperCppProvider)
}

// createWhisperCppProvider creates a whisper.cpp provider from the
// environment and optional provider settings. The model file is resolved
// from the WHISPER_MODEL size tier.
func createWhisperCppProvider(settings map[string]interface{}) (api.Transcriber, error) {
	binaryPath := os.Getenv("WHISPER_CPP_BINARY")
	if binaryPath == "" {
		return nil, errors.New("WHISPER_CPP_BINARY environment variable must be set")
	}

	modelDir := os.Getenv("WHISPER_CPP_MODEL_DIR")
	if modelDir == "" {
		return nil, errors.New("WHISPER_CPP_MODEL_DIR environment variable must be set")
	}

	tier := config.ModelTier()
	if !config.IsKnownModelTier(tier) {
		log.Printf("WHISPER_MODEL %q is not a known size tier, passing it through\n", tier)
	}

	modelPath := ResolveModelPath(modelDir, tier)
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		return nil, errors.Wrapf(errors.ErrFileNotFound, "model file %s (tier %q)", modelPath, tier)
	}

	return NewLocalTranscriber(binaryPath, modelPath).
		WithLanguage(provider.StringSetting(settings, "language")).
		WithPrompt(provider.StringSetting(settings, "prompt")).
		WithBeamSize(provider.IntSetting(settings, "beam_size", provider.DefaultBeamSize)), nil
}
