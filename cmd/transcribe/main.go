package main

import (
	"fmt"
	"os"

	"audio-transcriber/cmd/transcribe/cmd"
	"audio-transcriber/internal/config"

	// Import providers to register them
	_ "audio-transcriber/internal/app/api/openai/whisper"
	_ "audio-transcriber/internal/app/api/whisper_cpp"
)

func main() {
	// Load .env if present. Missing files are fine, the environment may be
	// configured system-wide.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
