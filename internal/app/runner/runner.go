package runner

import (
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"audio-transcriber/internal/app/api"
	"audio-transcriber/internal/app/api/provider"
	"audio-transcriber/internal/app/audio"
	"audio-transcriber/internal/app/model"
	"audio-transcriber/internal/app/repository"
	"audio-transcriber/internal/config"
)

// Runner drives one transcription request: engine call, history record,
// joined transcript back to the caller.
type Runner struct {
	transcriber api.Transcriber
	db          repository.RunDAO
	progress    ProgressConfig
}

// probeDuration is swappable in tests, ffprobe is not available everywhere.
var probeDuration = audio.GetAudioDuration

func NewRunner(transcriber api.Transcriber, runDAO repository.RunDAO, progress ProgressConfig) *Runner {
	return &Runner{
		transcriber: transcriber,
		db:          runDAO,
		progress:    progress,
	}
}

func (r *Runner) Close() error {
	return r.db.Close()
}

// Run transcribes a single audio file. The caller guarantees the path
// exists, the runner performs no validation of its own. The engine call
// blocks until the whole file is transcribed.
func (r *Runner) Run(audioPath string) (string, error) {
	run := model.Run{
		RunID:     uuid.New().String(),
		FileName:  filepath.Base(audioPath),
		FilePath:  audioPath,
		Provider:  config.ProviderName(),
		ModelTier: config.ModelTier(),
	}

	bar := startTaskProgress(r.progress, "transcribing")
	started := time.Now()

	text, err := r.transcriber.Transcript(audioPath)

	run.CreatedAt = time.Now()
	if err != nil {
		bar.Abandon()
		provider.ObserveFailure(run.Provider)

		run.HasError = true
		run.ErrorMessage = err.Error()
		r.record(run)
		return "", err
	}

	bar.Complete()
	provider.ObserveSuccess(run.Provider, time.Since(started).Seconds())

	// Duration is metadata only, probed after the engine proved it can read
	// the file. A probe failure must not block the transcript.
	if duration, derr := probeDuration(audioPath); derr == nil {
		run.DurationSec = duration
	} else {
		log.Printf("Failed to probe audio duration for '%s': %v\n", audioPath, derr)
	}

	run.Transcript = text
	r.record(run)
	return text, nil
}

// record must never cost the caller its transcript, failures are logged only.
func (r *Runner) record(run model.Run) {
	if err := r.db.Record(run); err != nil {
		log.Printf("Failed to record run '%s' to database: %v\n", run.RunID, err)
	}
}
