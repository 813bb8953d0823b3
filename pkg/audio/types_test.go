// ABOUTME: Tests for audio types
// ABOUTME: Tests sample conversion functions and buffer helpers
package audio

import (
	"math"
	"testing"
	"time"
)

func TestSampleFromInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    int16
		expected float32
	}{
		{"zero", 0, 0},
		{"minus one", -1, -1.0 / 32768},
		{"half", 16384, 0.5},
		{"max", 32767, 32767.0 / 32768},
		{"min", -32768, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleFromInt16(tt.input)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestSampleToInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected int16
	}{
		{"zero", 0, 0},
		{"full scale positive", 1.0, 32767},
		{"full scale negative", -1.0, -32768},
		{"clamp above", 1.5, 32767},
		{"clamp below", -7, -32768},
		{"half positive", 0.5, 16384}, // 16383.5 rounds away from zero
		{"half negative", -0.5, -16384},
		{"tiny negative", -1.0 / 32768, -1},
		{"nan", float32(math.NaN()), 0},
		{"positive infinity", float32(math.Inf(1)), 32767},
		{"negative infinity", float32(math.Inf(-1)), -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleToInt16(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestRoundTrip16Bit(t *testing.T) {
	// Decode then encode must land within one LSB of the original
	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		original := int16(v)
		result := SampleToInt16(SampleFromInt16(original))

		diff := int(original) - int(result)
		if diff < 0 || diff > 1 {
			t.Fatalf("round-trip failed: %d -> %d (diff %d)", original, result, diff)
		}
		if original <= 0 && diff != 0 {
			t.Fatalf("non-positive sample %d must round-trip exactly, got %d", original, result)
		}
	}
}

func TestPCM16Format(t *testing.T) {
	format := PCM16(24000, 2)

	if format.Codec != CodecPCM {
		t.Errorf("expected codec %q, got %q", CodecPCM, format.Codec)
	}
	if format.BitDepth != 16 {
		t.Errorf("expected bit depth 16, got %d", format.BitDepth)
	}
	if format.BlockAlign() != 4 {
		t.Errorf("expected block align 4, got %d", format.BlockAlign())
	}
	if format.ByteRate() != 96000 {
		t.Errorf("expected byte rate 96000, got %d", format.ByteRate())
	}
}

func TestNewBuffer(t *testing.T) {
	buf := NewBuffer(PCM16(24000, 2), 12000)

	if buf.NumChannels() != 2 {
		t.Fatalf("expected 2 channels, got %d", buf.NumChannels())
	}
	for c := 0; c < buf.NumChannels(); c++ {
		if len(buf.Channel(c)) != 12000 {
			t.Errorf("channel %d: expected 12000 samples, got %d", c, len(buf.Channel(c)))
		}
	}
	if buf.Frames() != 12000 {
		t.Errorf("expected 12000 frames, got %d", buf.Frames())
	}
	if buf.Duration() != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", buf.Duration())
	}
}

func TestBufferEmpty(t *testing.T) {
	var nilBuf *Buffer
	if nilBuf.Frames() != 0 || nilBuf.NumChannels() != 0 || nilBuf.Duration() != 0 {
		t.Error("nil buffer should report zero frames, channels and duration")
	}

	buf := NewBuffer(PCM16(24000, 1), 0)
	if buf.Frames() != 0 {
		t.Errorf("expected 0 frames, got %d", buf.Frames())
	}
	if buf.NumChannels() != 1 {
		t.Errorf("expected 1 channel, got %d", buf.NumChannels())
	}
}
