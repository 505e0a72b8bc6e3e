package app

import (
	"log"
	"os"

	"audio-transcriber/internal/app/api"
	"audio-transcriber/internal/app/api/provider"
	"audio-transcriber/internal/app/repository"
	"audio-transcriber/internal/app/runner"
)

// provideTranscriber builds the engine selected via TRANSCRIBE_PROVIDER,
// whisper.cpp by default.
func provideTranscriber() api.Transcriber {
	transcriber, err := provider.NewTranscriberFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize transcription provider: %v\n", err)
	}
	return transcriber
}

func provideRunDAO() repository.RunDAO {
	dao, err := repository.OpenFromEnv()
	if err != nil {
		log.Fatalf("Failed to open transcription database: %v\n", err)
	}
	return dao
}

func provideProgressConfig() runner.ProgressConfig {
	return runner.ProgressConfig{
		Enabled: true,
		Writer:  os.Stderr,
	}
}
