package whisper

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"audio-transcriber/internal/app/api/provider"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client   *openai.Client
	model    string
	language string
	prompt   string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{
		client: client,
		model:  openai.Whisper1,
	}
}

// WithModel overrides the remote model ID.
func (rt *RemoteTranscriber) WithModel(model string) *RemoteTranscriber {
	if model != "" {
		rt.model = model
	}
	return rt
}

// WithLanguage sets the transcription language hint.
func (rt *RemoteTranscriber) WithLanguage(language string) *RemoteTranscriber {
	rt.language = language
	return rt
}

// WithPrompt sets the context prompt.
func (rt *RemoteTranscriber) WithPrompt(prompt string) *RemoteTranscriber {
	rt.prompt = prompt
	return rt
}

// Transcript uses the OpenAI API for remote transcription. The verbose JSON
// format is requested so the response carries timed segments, which are
// joined into the final text.
func (rt *RemoteTranscriber) Transcript(inputFilePath string) (string, error) {
	ctx := context.Background()

	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
		Language: rt.language,
		Prompt:   rt.prompt,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %s", err)
	}

	segments := make([]provider.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, provider.Segment{
			ID:    s.ID,
			Text:  s.Text,
			Start: s.Start,
			End:   s.End,
		})
	}

	// Older server implementations return plain text without segments.
	if len(segments) == 0 {
		return resp.Text, nil
	}

	return provider.JoinSegments(segments), nil
}
