// ABOUTME: Audio decoder package for synthesized speech payloads
// ABOUTME: Provides base64 unwrapping and the PCM16 Decoder implementation
// Package decode turns a text-to-speech payload into an audio.Buffer.
//
// Decoding happens in two steps:
//   - Base64: unwraps the transport encoding into raw bytes
//   - PCM16: interprets the bytes as interleaved 16-bit little-endian samples
//
// Both steps are pure functions and safe for concurrent use. Malformed base64
// fails with *DecodeError; a bad sample rate, channel count or format fails
// with *InvalidParameterError. A short or odd-length PCM stream is not an
// error: incomplete trailing samples and frames are dropped.
//
// Example:
//
//	raw, err := decode.Base64(payload)
//	buf, err := decode.PCM16(raw, 24000, 1)
package decode
