// ABOUTME: High-level VocalForge library API
// ABOUTME: Turns base64 speech responses into downloadable WAV artifacts
// Package vocalforge provides the high-level voiceover pipeline.
//
// This is the main entry point for most library users, providing:
//   - Process: base64 PCM16 payload -> normalized buffer -> WAV artifact
//   - Generator: validates a Request, calls a Synthesizer and runs Process
//   - Synthesizer: interface for the remote text-to-speech collaborator
//   - Voice and Style catalogues accepted by Request
//
// For lower-level control, see the audio, decode, encode and output packages.
//
// Example:
//
//	artifact, err := vocalforge.Process(payload, vocalforge.DefaultConfig())
//	if errors.Is(err, vocalforge.ErrProcessingFailed) {
//	    // show a single "processing failed" message
//	}
//	path, err := artifact.WriteFile("out")
//
// Example Generator:
//
//	gen, err := vocalforge.NewGenerator(synth, vocalforge.DefaultConfig())
//	artifact, err := gen.Generate(ctx, vocalforge.Request{
//	    Text:  "Merhaba",
//	    Voice: "Kore",
//	    Style: vocalforge.StyleProfessional,
//	})
package vocalforge
