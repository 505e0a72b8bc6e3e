package repository

import (
	"audio-transcriber/internal/app/model"
)

// RunDAO persists transcription run history.
type RunDAO interface {
	Close() error

	// Record stores a finished run, successful or failed. Recording must not
	// cost the caller its transcript, implementations return errors instead
	// of terminating.
	Record(run model.Run) error

	// ListRecent returns runs newest first. A limit of 0 returns everything.
	ListRecent(limit int) ([]model.Run, error)
}
