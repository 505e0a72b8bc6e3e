package whisper_cpp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"audio-transcriber/internal/app/api/provider"
	"audio-transcriber/internal/app/audio"
)

// LocalTranscriber implements local transcription, using the whisper.cpp
// command line binary.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	language   string
	prompt     string
	beamSize   int
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(binaryPath, modelPath string) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   "auto",
		beamSize:   provider.DefaultBeamSize,
	}
}

// WithLanguage sets the decode language hint ("auto" detects).
func (lt *LocalTranscriber) WithLanguage(language string) *LocalTranscriber {
	if language != "" {
		lt.language = language
	}
	return lt
}

// WithPrompt sets the initial context prompt.
func (lt *LocalTranscriber) WithPrompt(prompt string) *LocalTranscriber {
	lt.prompt = prompt
	return lt
}

// WithBeamSize sets the beam search width.
func (lt *LocalTranscriber) WithBeamSize(beamSize int) *LocalTranscriber {
	if beamSize > 0 {
		lt.beamSize = beamSize
	}
	return lt
}

// ResolveModelPath maps a model size tier to the ggml model file inside
// modelDir, e.g. "small" -> <modelDir>/ggml-small.bin.
func ResolveModelPath(modelDir, tier string) string {
	return filepath.Join(modelDir, fmt.Sprintf("ggml-%s.bin", tier))
}

// Transcript runs the whisper.cpp binary on the input file and returns the
// joined transcript text.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	log.Printf("Starting transcription of file %s\n", inputFilePath)

	// whisper.cpp only accepts 16kHz WAV input
	is16kHzWav, err := audio.Is16kHzWavFile(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("error checking input file: %v", err)
	}

	if !is16kHzWav {
		log.Printf("Input file is not a 16kHz WAV file, converting...\n")
		inputFilePath, err = audio.ConvertTo16kHzWav(inputFilePath)
		if err != nil {
			return "", fmt.Errorf("error converting input file: %v", err)
		}
	}

	outputBase := filepath.Join(os.TempDir(), "transcribe-"+uuid.New().String())
	outputFile := outputBase + ".json"
	defer os.Remove(outputFile)

	args := []string{
		"-m", lt.modelPath,
		"-l", lt.language,
		"-bs", fmt.Sprintf("%d", lt.beamSize),
		"-oj",
		"-f", inputFilePath,
		"-of", outputBase,
	}
	if lt.prompt != "" {
		args = append(args, "--prompt", lt.prompt)
	}

	command := exec.Command(lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	log.Printf("Running transcription command: %s %s", lt.binaryPath, strings.Join(args, " "))

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String())
	}

	output, err := os.ReadFile(outputFile)
	if err != nil {
		return "", fmt.Errorf("failed to read output file: %v", err)
	}

	segments, err := ParseOutput(output)
	if err != nil {
		return "", err
	}

	return provider.JoinSegments(segments), nil
}

// whisperSegment mirrors one transcription entry in the JSON document
// whisper.cpp writes with -oj. Offsets are milliseconds.
type whisperSegment struct {
	Offsets struct {
		From int64 `json:"from"`
		To   int64 `json:"to"`
	} `json:"offsets"`
	Text string `json:"text"`
}

type whisperOutput struct {
	Transcription []whisperSegment `json:"transcription"`
	Result        struct {
		Language string `json:"language"`
	} `json:"result"`
}

// ParseOutput decodes whisper.cpp JSON output into ordered segments.
func ParseOutput(data []byte) ([]provider.Segment, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse whisper.cpp output: %v", err)
	}

	segments := lo.Map(out.Transcription, func(s whisperSegment, i int) provider.Segment {
		return provider.Segment{
			ID:    i,
			Text:  s.Text,
			Start: float64(s.Offsets.From) / 1000,
			End:   float64(s.Offsets.To) / 1000,
		}
	})

	return segments, nil
}
