// ABOUTME: WAV container encoder
// ABOUTME: Wraps 16-bit PCM samples in a canonical 44-byte RIFF/WAVE header
package encode

import (
	"encoding/binary"

	"github.com/vocalforge/vocalforge-go/pkg/audio"
)

const (
	// HeaderSize is the size of the canonical PCM WAV header
	HeaderSize = 44

	// ContentTypeWAV is the MIME type of encoded WAV files
	ContentTypeWAV = "audio/wav"

	fmtChunkSize    = 16
	formatPCM       = 1
	riffSizeOverage = HeaderSize - 8 // bytes after the ChunkSize field, excluding data
)

// WAVEncoder encodes WAV files
type WAVEncoder struct{}

// NewWAV creates a new WAV encoder
func NewWAV() Encoder {
	return &WAVEncoder{}
}

// Encode converts the buffer to WAV bytes
func (e *WAVEncoder) Encode(buf *audio.Buffer) ([]byte, error) {
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}
	return WAV(buf), nil
}

// ContentType returns the WAV MIME type
func (e *WAVEncoder) ContentType() string {
	return ContentTypeWAV
}

// WAV encodes the buffer as a 16-bit PCM WAV file.
// The result is exactly HeaderSize + frames*channels*2 bytes long.
// Like PCM16, it expects every channel to hold buf.Frames() samples.
func WAV(buf *audio.Buffer) []byte {
	dataSize := pcm16Size(buf)
	output := make([]byte, HeaderSize+dataSize)

	putHeader(output[:HeaderSize], buf.NumChannels(), buf.Format.SampleRate, dataSize)
	putPCM16(output[HeaderSize:], buf)

	return output
}

// putHeader writes the RIFF, fmt and data chunk headers
func putHeader(h []byte, channels, sampleRate, dataSize int) {
	blockAlign := channels * audio.BytesPerSample16

	// RIFF chunk descriptor
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(riffSizeOverage+dataSize))
	copy(h[8:12], "WAVE")

	// fmt sub-chunk
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(h[20:22], formatPCM)
	binary.LittleEndian.PutUint16(h[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(h[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(h[34:36], audio.BitDepth16)

	// data sub-chunk
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(dataSize))
}
