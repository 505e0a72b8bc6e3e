package audio

import (
	"encoding/json"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/model"
)

// GetAudioDuration returns the audio duration in whole seconds via ffprobe.
func GetAudioDuration(filePath string) (int, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	duration := int(math.Round(durationFloat))
	return duration, nil
}

// Is16kHzWavFile checks whether the file is already 16kHz PCM WAV, the input
// format whisper.cpp expects.
func Is16kHzWavFile(filePath string) (bool, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, err
	}
	return Is16kHzWavProbe(output)
}

// Is16kHzWavProbe inspects raw ffprobe JSON for a 16kHz pcm_s16le audio stream.
func Is16kHzWavProbe(probeJSON []byte) (bool, error) {
	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(probeJSON, &probeOutput); err != nil {
		return false, err
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}

	return false, nil
}

// ConvertTo16kHzWav converts the input audio to a 16kHz WAV file next to the
// original and returns its path.
func ConvertTo16kHzWav(inputFilePath string) (string, error) {
	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"
	err := convertTo16kHzWav(inputFilePath, outputFilePath)
	if err != nil {
		return "", err
	}

	return outputFilePath, nil
}

func convertTo16kHzWav(inputAudioFilePath, outputWavPath string) error {
	if _, err := os.Stat(outputWavPath); !os.IsNotExist(err) {
		log.Printf("16kHz WAV file already exists for '%s', skipping conversion.\n", inputAudioFilePath)
		return nil
	}

	ext := strings.ToLower(filepath.Ext(inputAudioFilePath))
	if !supportedExtension(ext) {
		return errors.Newf("unsupported audio format not in [mp3,m4a,wav,flac,ogg]: %s", ext)
	}

	log.Printf("convert to 16kHz wav: %s\n", inputAudioFilePath)

	cmd := exec.Command("ffmpeg", "-i", inputAudioFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputWavPath)
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "FFmpeg error")
	}

	log.Printf("Audio to 16kHz WAV conversion completed: '%s'\n", outputWavPath)
	return nil
}

func supportedExtension(ext string) bool {
	switch ext {
	case ".mp3", ".m4a", ".wav", ".flac", ".ogg":
		return true
	default:
		return false
	}
}
