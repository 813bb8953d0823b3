// ABOUTME: PCM audio encoder
// ABOUTME: Encodes float buffers to interleaved 16-bit PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"

	"github.com/vocalforge/vocalforge-go/pkg/audio"
)

// PCMEncoder encodes PCM audio
type PCMEncoder struct {
	format audio.Format
}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (Encoder, error) {
	if format.Codec != audio.CodecPCM {
		return nil, fmt.Errorf("invalid codec for PCM encoder: %s", format.Codec)
	}

	if format.BitDepth != audio.BitDepth16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}

	return &PCMEncoder{
		format: format,
	}, nil
}

// Encode converts the buffer to PCM bytes
func (e *PCMEncoder) Encode(buf *audio.Buffer) ([]byte, error) {
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}
	if buf.NumChannels() != e.format.Channels {
		return nil, fmt.Errorf("channel mismatch: buffer has %d, encoder expects %d",
			buf.NumChannels(), e.format.Channels)
	}
	return PCM16(buf), nil
}

// ContentType returns the MIME type for raw 16-bit PCM
func (e *PCMEncoder) ContentType() string {
	return fmt.Sprintf("audio/L16;rate=%d;channels=%d", e.format.SampleRate, e.format.Channels)
}

// PCM16 interleaves the buffer into 16-bit little-endian samples,
// frame by frame, channel by channel. Every channel must hold
// buf.Frames() samples; use an Encoder to have that checked.
func PCM16(buf *audio.Buffer) []byte {
	output := make([]byte, pcm16Size(buf))
	putPCM16(output, buf)
	return output
}

// checkBuffer rejects buffers whose channels differ in length
func checkBuffer(buf *audio.Buffer) error {
	if buf == nil {
		return fmt.Errorf("nil buffer")
	}
	frames := buf.Frames()
	for c, samples := range buf.Data {
		if len(samples) != frames {
			return fmt.Errorf("uneven channels: channel %d has %d samples, channel 0 has %d",
				c, len(samples), frames)
		}
	}
	return nil
}

func pcm16Size(buf *audio.Buffer) int {
	return buf.Frames() * buf.NumChannels() * audio.BytesPerSample16
}

// putPCM16 writes the interleaved samples of buf into dst
func putPCM16(dst []byte, buf *audio.Buffer) {
	channels := buf.NumChannels()
	frames := buf.Frames()

	pos := 0
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			sample16 := audio.SampleToInt16(buf.Data[c][i])
			binary.LittleEndian.PutUint16(dst[pos:], uint16(sample16))
			pos += audio.BytesPerSample16
		}
	}
}
