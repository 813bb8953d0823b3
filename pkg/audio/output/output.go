// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for audio playback backends
package output

import (
	"context"
	"time"

	"github.com/vocalforge/vocalforge-go/pkg/audio"
)

// Output represents an audio output device
type Output interface {
	// Open initializes the output device for the given format
	Open(format audio.Format) error

	// Play outputs the buffer and blocks until playback ends or ctx is done
	Play(ctx context.Context, buf *audio.Buffer) error

	// Close releases output resources
	Close() error
}

// Controller is implemented by outputs that support pausing and progress
type Controller interface {
	Pause()
	Resume()
	Paused() bool
	Position() time.Duration
}

// bytesToDuration converts a byte count of interleaved PCM16 to playback time
func bytesToDuration(n int64, format audio.Format) time.Duration {
	blockAlign := format.Channels * audio.BytesPerSample16
	if n <= 0 || blockAlign <= 0 || format.SampleRate <= 0 {
		return 0
	}
	frames := n / int64(blockAlign)
	return time.Duration(frames) * time.Second / time.Duration(format.SampleRate)
}
