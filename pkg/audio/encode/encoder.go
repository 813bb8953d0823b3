// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for audio encoders
package encode

import "github.com/vocalforge/vocalforge-go/pkg/audio"

// Encoder encodes a float buffer into bytes
type Encoder interface {
	// Encode converts the buffer to encoded audio data
	Encode(buf *audio.Buffer) ([]byte, error)

	// ContentType returns the MIME type of the encoded data
	ContentType() string
}
