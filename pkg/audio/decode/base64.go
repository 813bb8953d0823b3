// ABOUTME: Base64 payload decoder
// ABOUTME: Unwraps base64-encoded speech responses into raw bytes
package decode

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Base64 decodes a standard base64 string into raw bytes.
// Line breaks are ignored and fully unpadded input is accepted; any other
// deviation from the standard alphabet or padding returns *DecodeError and
// no bytes.
func Base64(s string) ([]byte, error) {
	enc := base64.StdEncoding
	if !strings.Contains(s, "=") && unpaddedLen(s)%4 != 0 {
		enc = base64.RawStdEncoding
	}

	data, err := enc.DecodeString(s)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, &DecodeError{Offset: int64(corrupt), Underlying: err}
		}
		return nil, &DecodeError{Offset: -1, Underlying: err}
	}
	return data, nil
}

// unpaddedLen counts the characters the decoder will consider, skipping line breaks
func unpaddedLen(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\r' && s[i] != '\n' {
			n++
		}
	}
	return n
}
