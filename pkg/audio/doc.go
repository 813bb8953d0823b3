// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample conversion functions
// Package audio provides the in-memory audio types shared by the decoder,
// the WAV encoder and the playback adapter.
//
// This package defines:
//   - Format: describes how raw PCM bytes are interpreted (codec, sample rate, channels, bit depth)
//   - Buffer: decoded audio as normalized float32 samples, one slice per channel
//
// It also provides the 16-bit sample conversions used on both sides of the
// pipeline. The scaling is asymmetric: SampleFromInt16 divides by 32768 while
// SampleToInt16 multiplies positive values by 32767, so a decode followed by
// an encode reproduces the original sample to within one LSB.
//
// Example:
//
//	format := audio.Format{
//	    Codec:      "pcm",
//	    SampleRate: 24000,
//	    Channels:   1,
//	    BitDepth:   16,
//	}
//
//	buf := audio.NewBuffer(format, frames)
//	buf.Data[0][i] = audio.SampleFromInt16(sample16)
package audio
