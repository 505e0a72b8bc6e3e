package provider

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultBeamSize is the beam search width used for decoding unless a
// provider setting overrides it.
const DefaultBeamSize = 5

// Segment represents a contiguous span of recognized speech with its text
// and timing, as produced by the recognition engine.
type Segment struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Start float64 `json:"start"` // Start time in seconds
	End   float64 `json:"end"`   // End time in seconds
}

// TranscriptionInfo carries engine metadata about a transcription run.
type TranscriptionInfo struct {
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// JoinSegments assembles segment texts into a single output string.
// Each segment is trimmed of surrounding whitespace and the non-empty parts
// are joined with single spaces, preserving segment order. The result is
// empty only when the engine yields no usable text.
func JoinSegments(segments []Segment) string {
	parts := lo.FilterMap(segments, func(s Segment, _ int) (string, bool) {
		text := strings.TrimSpace(s.Text)
		return text, text != ""
	})
	return strings.Join(parts, " ")
}
