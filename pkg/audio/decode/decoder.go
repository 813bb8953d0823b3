// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for raw audio decoders
package decode

import "github.com/vocalforge/vocalforge-go/pkg/audio"

// Decoder decodes raw audio bytes into a float buffer
type Decoder interface {
	// Decode converts raw audio data to a normalized buffer
	Decode(data []byte) (*audio.Buffer, error)

	// Format returns the format the decoder interprets input as
	Format() audio.Format
}
