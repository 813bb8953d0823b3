// ABOUTME: Decode-to-WAV pipeline for synthesized speech
// ABOUTME: Runs base64, PCM16 and WAV steps inside one failure boundary
package vocalforge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vocalforge/vocalforge-go/pkg/audio"
	"github.com/vocalforge/vocalforge-go/pkg/audio/decode"
	"github.com/vocalforge/vocalforge-go/pkg/audio/encode"
)

const (
	// Output format of the reference speech service
	DefaultSampleRate = 24000
	DefaultChannels   = 1

	// DefaultArtifactName is the download name used by the web client
	DefaultArtifactName = "vocalforge-output.wav"

	artifactPrefix = "vocalforge-"
	artifactExt    = ".wav"
)

// ErrProcessingFailed is matched by every error returned from Process
var ErrProcessingFailed = errors.New("audio processing failed")

// ProcessingError wraps the failure of any pipeline step.
// Its message does not say which step failed; Unwrap exposes the cause.
type ProcessingError struct {
	Err error
}

func (e *ProcessingError) Error() string {
	return ErrProcessingFailed.Error()
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func (e *ProcessingError) Is(target error) bool {
	return target == ErrProcessingFailed
}

// Config describes the PCM format delivered by the synthesizer
type Config struct {
	SampleRate int
	Channels   int

	// ArtifactName overrides the generated artifact file name
	ArtifactName string
}

// DefaultConfig returns 24kHz mono, the speech service's output format
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		Channels:   DefaultChannels,
	}
}

// Artifact is a playable, downloadable WAV file
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
	Buffer      *audio.Buffer
}

// Duration returns the playback length of the artifact
func (a *Artifact) Duration() time.Duration {
	return a.Buffer.Duration()
}

// WriteFile writes the artifact to dir/Name and returns the path
func (a *Artifact) WriteFile(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, a.Name)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return path, nil
}

// NewArtifactName returns a unique file name with a .wav extension
func NewArtifactName() string {
	return artifactPrefix + uuid.NewString() + artifactExt
}

// Process decodes a base64 PCM16 payload and encodes it as WAV.
// Any failure is returned as *ProcessingError and no artifact is produced.
func Process(payload string, cfg Config) (*Artifact, error) {
	raw, err := decode.Base64(payload)
	if err != nil {
		return nil, &ProcessingError{Err: err}
	}

	buf, err := decode.PCM16(raw, cfg.SampleRate, cfg.Channels)
	if err != nil {
		return nil, &ProcessingError{Err: err}
	}

	encoder := encode.NewWAV()
	data, err := encoder.Encode(buf)
	if err != nil {
		return nil, &ProcessingError{Err: err}
	}

	name := cfg.ArtifactName
	if name == "" {
		name = NewArtifactName()
	} else if !strings.EqualFold(filepath.Ext(name), artifactExt) {
		name += artifactExt
	}

	return &Artifact{
		Name:        name,
		ContentType: encoder.ContentType(),
		Data:        data,
		Buffer:      buf,
	}, nil
}
