package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"audio-transcriber/cmd/transcribe/cmd/export"
	"audio-transcriber/cmd/transcribe/cmd/history"
	"audio-transcriber/cmd/transcribe/cmd/providers"
	"audio-transcriber/cmd/transcribe/cmd/version"
	"audio-transcriber/internal/app"
	"audio-transcriber/internal/app/api/provider"
	"audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/config"
)

// rootCmd represents the base command: transcribe a single audio file to text.
var rootCmd = &cobra.Command{
	Use:   "transcribe <audio_file>",
	Short: "Convert an audio file to text using a speech recognition engine",
	Long: `Convert an audio file to text using a speech recognition engine.

- The model size tier is read from the WHISPER_MODEL environment variable (default "small")
- Supports native whisper.cpp or the OpenAI API as recognition engine
- Every run is recorded to a local database for history and export`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		audioFile, err := resolveAudioFile(args)
		if err != nil {
			return err
		}

		runner := app.InitializeRunner()
		defer runner.Close()

		if config.MetricsReportEnabled() {
			defer reportMetrics()
		}

		text, err := runner.Run(audioFile)
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	},
}

// resolveAudioFile validates the invocation and returns the audio file path.
// The error messages are the user-facing diagnostics, Execute prints them
// to stderr verbatim.
func resolveAudioFile(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("Usage: transcribe <audio_file>")
	}

	audioFile := args[0]
	if _, err := os.Stat(audioFile); os.IsNotExist(err) {
		return "", errors.Newf("File not found: %s", audioFile)
	}
	return audioFile, nil
}

// reportMetrics writes the collected run metrics to stderr, keeping stdout
// reserved for the transcript.
func reportMetrics() {
	if err := provider.WriteMetricsReport(os.Stderr); err != nil {
		log.Printf("Failed to write metrics report: %v\n", err)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(version.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(providers.Cmd)
}
