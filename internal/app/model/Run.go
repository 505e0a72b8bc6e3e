package model

import "time"

// Run is a single recorded transcription invocation.
type Run struct {
	ID           int
	RunID        string
	FileName     string
	FilePath     string
	Provider     string
	ModelTier    string
	DurationSec  int
	Transcript   string
	CreatedAt    time.Time
	HasError     bool
	ErrorMessage string
}
