// ABOUTME: PCM audio decoder
// ABOUTME: Decodes interleaved 16-bit little-endian PCM into float buffers
package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/vocalforge/vocalforge-go/pkg/audio"
)

// PCMDecoder decodes 16-bit PCM audio
type PCMDecoder struct {
	format audio.Format
}

// NewPCM creates a new PCM decoder
func NewPCM(format audio.Format) (Decoder, error) {
	if format.Codec != audio.CodecPCM {
		return nil, &InvalidParameterError{
			Param:  "codec",
			Value:  format.Codec,
			Reason: fmt.Sprintf("PCM decoder requires %q", audio.CodecPCM),
		}
	}

	if format.BitDepth != audio.BitDepth16 {
		return nil, &InvalidParameterError{
			Param:  "bit depth",
			Value:  format.BitDepth,
			Reason: "supported: 16",
		}
	}

	if err := ValidateFormat(format.SampleRate, format.Channels); err != nil {
		return nil, err
	}

	return &PCMDecoder{
		format: format,
	}, nil
}

// Decode converts PCM bytes to a float buffer
func (d *PCMDecoder) Decode(data []byte) (*audio.Buffer, error) {
	channels := d.format.Channels

	// A trailing odd byte or partial frame is dropped
	numSamples := len(data) / audio.BytesPerSample16
	frames := numSamples / channels

	buf := audio.NewBuffer(d.format, frames)
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			offset := (i*channels + c) * audio.BytesPerSample16
			sample16 := int16(binary.LittleEndian.Uint16(data[offset:]))
			buf.Data[c][i] = audio.SampleFromInt16(sample16)
		}
	}
	return buf, nil
}

// Format returns the decoder's input format
func (d *PCMDecoder) Format() audio.Format {
	return d.format
}

// PCM16 decodes interleaved 16-bit little-endian PCM at the given
// sample rate and channel count.
func PCM16(data []byte, sampleRate, channels int) (*audio.Buffer, error) {
	decoder, err := NewPCM(audio.PCM16(sampleRate, channels))
	if err != nil {
		return nil, err
	}
	return decoder.Decode(data)
}
