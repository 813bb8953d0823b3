// ABOUTME: Audio output package for playing decoded buffers
// ABOUTME: Provides Output interface and oto implementation
// Package output plays an audio.Buffer on the local sound device.
//
// It is the playback adapter for embedding applications; the decode and
// encode packages never depend on it. Currently supports oto for
// cross-platform audio output.
//
// Example:
//
//	out := output.NewOto()
//	err := out.Open(buf.Format)
//	err = out.Play(ctx, buf)
package output
