// ABOUTME: Audio encoder package for serializing float buffers
// ABOUTME: Provides Encoder interface and implementations for PCM16 and WAV
// Package encode serializes an audio.Buffer.
//
// Supports:
//   - PCM: raw interleaved 16-bit little-endian samples
//   - WAV: the same samples inside a 44-byte RIFF/WAVE header (format 1, 16-bit)
//
// Output is deterministic: the same buffer always produces the same bytes.
//
// Example:
//
//	data := encode.WAV(buf)
//	err := os.WriteFile("vocalforge-output.wav", data, 0o644)
package encode
