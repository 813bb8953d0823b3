// ABOUTME: Oto-based audio output implementation
// ABOUTME: Plays float buffers as 16-bit PCM using the oto library
package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/vocalforge/vocalforge-go/pkg/audio"
	"github.com/vocalforge/vocalforge-go/pkg/audio/encode"
)

const pollInterval = 50 * time.Millisecond

// Oto output implementation using oto library
type Oto struct {
	mu     sync.Mutex
	otoCtx *oto.Context
	player *oto.Player
	reader *countingReader
	format audio.Format
	paused bool
	ready  bool
}

// NewOto creates a new Oto output
func NewOto() *Oto {
	return &Oto{}
}

// Open initializes the output device
func (o *Oto) Open(format audio.Format) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if format.BitDepth != audio.BitDepth16 {
		return fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}

	// If already initialized with same format, reuse the existing context
	if o.otoCtx != nil && o.format == format {
		if err := o.otoCtx.Resume(); err != nil {
			return fmt.Errorf("failed to resume oto context: %w", err)
		}
		o.ready = true
		return nil
	}

	// oto only allows one context per process
	if o.otoCtx != nil {
		return fmt.Errorf("format change (%dHz %dch -> %dHz %dch) not supported by oto",
			o.format.SampleRate, o.format.Channels, format.SampleRate, format.Channels)
	}

	op := &oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.format = format
	o.ready = true

	log.Printf("Audio output initialized: %dHz, %d channels", format.SampleRate, format.Channels)

	return nil
}

// Play outputs the buffer (blocks until played or ctx is done)
func (o *Oto) Play(ctx context.Context, buf *audio.Buffer) error {
	o.mu.Lock()
	if !o.ready {
		o.mu.Unlock()
		return fmt.Errorf("output not initialized")
	}
	if buf.Format.SampleRate != o.format.SampleRate || buf.NumChannels() != o.format.Channels {
		o.mu.Unlock()
		return fmt.Errorf("buffer format %dHz %dch does not match output %dHz %dch",
			buf.Format.SampleRate, buf.NumChannels(), o.format.SampleRate, o.format.Channels)
	}

	reader := &countingReader{r: bytes.NewReader(encode.PCM16(buf))}
	player := o.otoCtx.NewPlayer(reader)
	o.player = player
	o.reader = reader
	o.paused = false
	o.mu.Unlock()

	defer o.release(player)

	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
			if err := player.Err(); err != nil {
				return fmt.Errorf("playback failed: %w", err)
			}
			if !player.IsPlaying() && !o.Paused() {
				return nil
			}
		}
	}
}

// release closes the player once Play returns
func (o *Oto) release(player *oto.Player) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player == player {
		o.player = nil
		o.paused = false
	}
	if err := player.Close(); err != nil {
		log.Printf("Failed to close player: %v", err)
	}
}

// Pause suspends the current playback
func (o *Oto) Pause() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player != nil && !o.paused {
		o.player.Pause()
		o.paused = true
	}
}

// Resume continues a paused playback
func (o *Oto) Resume() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player != nil && o.paused {
		o.player.Play()
		o.paused = false
	}
}

// Paused reports whether playback is paused
func (o *Oto) Paused() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.paused
}

// Position returns how much of the current buffer has been played
func (o *Oto) Position() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player == nil || o.reader == nil {
		return 0
	}
	played := o.reader.n.Load() - int64(o.player.BufferedSize())
	return bytesToDuration(played, o.format)
}

// Close releases output resources
func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player != nil {
		o.player.Pause()
	}
	if o.otoCtx != nil && o.ready {
		o.ready = false
		if err := o.otoCtx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend oto context: %w", err)
		}
	}
	return nil
}

// countingReader tracks how many bytes the player has pulled
type countingReader struct {
	r io.Reader
	n atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}
