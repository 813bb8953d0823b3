// ABOUTME: Audio type definitions
// ABOUTME: Defines audio formats, float buffers and 16-bit sample conversion
package audio

import (
	"math"
	"time"
)

const (
	// CodecPCM identifies linear PCM
	CodecPCM = "pcm"

	// BitDepth16 is the only supported sample width
	BitDepth16 = 16

	// BytesPerSample16 is the size of one 16-bit sample
	BytesPerSample16 = 2

	// 16-bit scale factors. Decode divides by 32768, encode multiplies
	// negative values by 32768 and positive values by 32767.
	NegativeScale16 = 32768.0
	PositiveScale16 = 32767.0
)

// Format describes audio stream format
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// PCM16 returns a 16-bit PCM format with the given rate and channel count
func PCM16(sampleRate, channels int) Format {
	return Format{
		Codec:      CodecPCM,
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   BitDepth16,
	}
}

// BlockAlign returns the size in bytes of one interleaved frame
func (f Format) BlockAlign() int {
	return f.Channels * f.BitDepth / 8
}

// ByteRate returns the number of bytes per second of interleaved audio
func (f Format) ByteRate() int {
	return f.SampleRate * f.BlockAlign()
}

// Buffer holds decoded audio as normalized float samples.
// Data has one slice per channel; every slice has the same length.
type Buffer struct {
	Format Format
	Data   [][]float32
}

// NewBuffer allocates a zeroed buffer with the given number of frames
func NewBuffer(format Format, frames int) *Buffer {
	data := make([][]float32, format.Channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	return &Buffer{
		Format: format,
		Data:   data,
	}
}

// Frames returns the number of samples per channel
func (b *Buffer) Frames() int {
	if b == nil || len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// NumChannels returns the number of channels held in the buffer
func (b *Buffer) NumChannels() int {
	if b == nil {
		return 0
	}
	return len(b.Data)
}

// Channel returns the samples of channel c
func (b *Buffer) Channel(c int) []float32 {
	return b.Data[c]
}

// Duration returns the playback length of the buffer
func (b *Buffer) Duration() time.Duration {
	if b == nil || b.Format.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.Format.SampleRate)
}

// SampleFromInt16 converts an int16 sample to a float in [-1.0, 1.0)
func SampleFromInt16(sample int16) float32 {
	return float32(sample) / NegativeScale16
}

// SampleToInt16 converts a float sample to int16.
// The input is clamped to [-1.0, 1.0]; negative values scale by 32768 and
// non-negative values by 32767, rounding half away from zero.
func SampleToInt16(sample float32) int16 {
	s := float64(sample)
	if math.IsNaN(s) {
		return 0
	}
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}

	if s < 0 {
		return int16(math.Round(s * NegativeScale16))
	}
	return int16(math.Round(s * PositiveScale16))
}
