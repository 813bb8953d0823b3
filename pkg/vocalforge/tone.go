// ABOUTME: Offline synthesizer producing a sine tone
// ABOUTME: Stands in for the speech service in demos and tests
package vocalforge

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"math"
	"time"
	"unicode/utf8"

	"github.com/vocalforge/vocalforge-go/pkg/audio/decode"
)

// ToneSynthesizer returns a 440Hz sine tone as base64 PCM16.
// The tone lasts PerRune for each character of the request text.
type ToneSynthesizer struct {
	Frequency  float64
	SampleRate int
	Channels   int
	PerRune    time.Duration
}

// NewToneSynthesizer creates a tone synthesizer in cfg's format
func NewToneSynthesizer(cfg Config) (*ToneSynthesizer, error) {
	if err := decode.ValidateFormat(cfg.SampleRate, cfg.Channels); err != nil {
		return nil, err
	}

	return &ToneSynthesizer{
		Frequency:  440.0, // A4 note
		SampleRate: cfg.SampleRate,
		Channels:   cfg.Channels,
		PerRune:    60 * time.Millisecond,
	}, nil
}

// Synthesize implements Synthesizer
func (s *ToneSynthesizer) Synthesize(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := decode.ValidateFormat(s.SampleRate, s.Channels); err != nil {
		return "", err
	}

	duration := time.Duration(utf8.RuneCountInString(req.Text)) * s.PerRune
	numFrames := int(duration * time.Duration(s.SampleRate) / time.Second)

	pcm := make([]byte, numFrames*s.Channels*2)
	for i := 0; i < numFrames; i++ {
		// Generate sine wave
		t := float64(i) / float64(s.SampleRate)
		sample := math.Sin(2 * math.Pi * s.Frequency * t)

		// 50% volume to avoid clipping
		pcmValue := int16(sample * 32767.0 * 0.5)

		// Duplicate to all channels
		for ch := 0; ch < s.Channels; ch++ {
			binary.LittleEndian.PutUint16(pcm[(i*s.Channels+ch)*2:], uint16(pcmValue))
		}
	}

	return base64.StdEncoding.EncodeToString(pcm), nil
}
