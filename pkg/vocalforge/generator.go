// ABOUTME: Voiceover generation on top of a speech synthesizer
// ABOUTME: Validates requests, calls the Synthesizer and builds WAV artifacts
package vocalforge

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/vocalforge/vocalforge-go/pkg/audio/decode"
)

// Synthesis errors presented to users
var (
	ErrEmptyText     = errors.New("text is required")
	ErrUnknownVoice  = errors.New("unknown voice")
	ErrUnknownStyle  = errors.New("unknown style")
	ErrNoAudio       = errors.New("no audio generated for the provided text, possibly due to content safety filters")
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrQuotaExceeded = errors.New("API quota exceeded")
	ErrBilling       = errors.New("billing issue with the project")
	ErrTimeout       = errors.New("request timed out")
)

// Request describes one voiceover
type Request struct {
	Text  string
	Voice string
	Style Style
}

// Validate checks the request against the catalogue
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	if _, ok := LookupVoice(r.Voice); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVoice, r.Voice)
	}
	if !ValidStyle(r.Style) {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, r.Style)
	}
	return nil
}

// Synthesizer converts a request into base64-encoded PCM16 audio.
// Implementations wrap a remote speech service and must honour ctx.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) (string, error)
}

// Generator produces WAV artifacts from text
type Generator struct {
	synth  Synthesizer
	config Config
}

// NewGenerator creates a generator for synthesizer output in cfg's format.
// An invalid format fails with *decode.InvalidParameterError.
func NewGenerator(synth Synthesizer, cfg Config) (*Generator, error) {
	if synth == nil {
		return nil, fmt.Errorf("synthesizer is required")
	}
	if err := decode.ValidateFormat(cfg.SampleRate, cfg.Channels); err != nil {
		return nil, err
	}

	return &Generator{
		synth:  synth,
		config: cfg,
	}, nil
}

// Config returns the generator's format configuration
func (g *Generator) Config() Config {
	return g.config
}

// Generate synthesizes the request and returns the WAV artifact
func (g *Generator) Generate(ctx context.Context, req Request) (*Artifact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload, err := g.synth.Synthesize(ctx, req)
	if err != nil {
		log.Printf("Voiceover synthesis failed: %v", err)
		return nil, ClassifySynthesisError(err)
	}
	if payload == "" {
		return nil, ErrNoAudio
	}

	artifact, err := Process(payload, g.config)
	if err != nil {
		log.Printf("Audio processing failed: %v", errors.Unwrap(err))
		return nil, err
	}

	log.Printf("Generated %s: %d frames, %v, %d bytes",
		artifact.Name, artifact.Buffer.Frames(), artifact.Duration(), len(artifact.Data))

	return artifact, nil
}

// ClassifySynthesisError maps a synthesizer failure to a user-facing error.
// Context errors and already classified errors pass through unchanged.
func ClassifySynthesisError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, context.Canceled),
		errors.Is(err, ErrNoAudio),
		errors.Is(err, ErrInvalidAPIKey),
		errors.Is(err, ErrQuotaExceeded),
		errors.Is(err, ErrBilling),
		errors.Is(err, ErrTimeout):
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"):
		return fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	case strings.Contains(msg, "quota"), strings.Contains(msg, "resource has been exhausted"):
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	case strings.Contains(msg, "billing"):
		return fmt.Errorf("%w: %w", ErrBilling, err)
	case strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("generation failed: %w", err)
}
