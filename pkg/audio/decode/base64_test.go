// ABOUTME: Tests for base64 payload decoding
// ABOUTME: Tests padding handling and DecodeError reporting
package decode

import (
	"bytes"
	"errors"
	"testing"
)

func TestBase64(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"empty", "", []byte{}},
		{"padded", "AAAA//8AAA==", []byte{0x00, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00}},
		{"single pad", "AAD/fwCAAQA=", []byte{0x00, 0x00, 0xFF, 0x7F, 0x00, 0x80, 0x01, 0x00}},
		{"unpadded", "AAD/fwCAAQA", []byte{0x00, 0x00, 0xFF, 0x7F, 0x00, 0x80, 0x01, 0x00}},
		{"line breaks", "AAAA\r\n//8A\nAA==", []byte{0x00, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Base64(tt.input)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("expected % x, got % x", tt.expected, result)
			}
		})
	}
}

func TestBase64_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int64
	}{
		{"illegal character", "AAAA%AAA", 4},
		{"url alphabet", "AAAA-_8A", 4},
		{"padding in middle", "AA==AAAA", 4},
		{"short padding", "AAAAA=", 5},
		{"truncated group", "AAAAA", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Base64(tt.input)
			if err == nil {
				t.Fatalf("expected error, got % x", result)
			}
			if result != nil {
				t.Errorf("expected no bytes on failure, got % x", result)
			}

			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *DecodeError, got %T", err)
			}
			if decodeErr.Offset != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, decodeErr.Offset)
			}
			if decodeErr.Unwrap() == nil {
				t.Error("expected underlying base64 error")
			}
		})
	}
}

func TestBase64_Deterministic(t *testing.T) {
	first, err := Base64("AAD/fwCAAQA=")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	second, err := Base64("AAD/fwCAAQA=")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("expected identical output for identical input")
	}

	// Results must not share backing storage
	first[0] = 0xAA
	if second[0] == 0xAA {
		t.Error("decoded slices share memory")
	}
}
