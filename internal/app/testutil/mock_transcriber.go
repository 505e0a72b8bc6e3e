package testutil

import (
	"github.com/stretchr/testify/mock"

	"audio-transcriber/internal/app/api"
)

// MockTranscriber is a testify/mock implementation of api.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(inputFilePath string) (string, error) {
	args := m.Called(inputFilePath)
	return args.String(0), args.Error(1)
}

// ExpectTranscriptCall sets up an expectation for a specific transcript call
func (m *MockTranscriber) ExpectTranscriptCall(filePath string, response string, err error) *MockTranscriber {
	m.On("Transcript", filePath).Return(response, err)
	return m
}

// Interface compliance check
var _ api.Transcriber = (*MockTranscriber)(nil)
