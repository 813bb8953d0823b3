// ABOUTME: Tests for the decode-to-WAV pipeline
// ABOUTME: Tests artifacts, consolidated failures and concurrent use
package vocalforge

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vocalforge/vocalforge-go/pkg/audio/decode"
)

func TestProcess(t *testing.T) {
	artifact, err := Process("AAD/fwCAAQA=", DefaultConfig())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if artifact.ContentType != "audio/wav" {
		t.Errorf("expected content type audio/wav, got %q", artifact.ContentType)
	}
	if !strings.HasPrefix(artifact.Name, "vocalforge-") || filepath.Ext(artifact.Name) != ".wav" {
		t.Errorf("unexpected artifact name %q", artifact.Name)
	}
	if artifact.Buffer.Frames() != 4 {
		t.Fatalf("expected 4 frames, got %d", artifact.Buffer.Frames())
	}
	if len(artifact.Data) != 44+8 {
		t.Fatalf("expected 52 bytes, got %d", len(artifact.Data))
	}

	// 0, 32767, -32768, 1 survive the round trip within one LSB
	expected := []int16{0, 32766, -32768, 1}
	for i, want := range expected {
		got := int16(binary.LittleEndian.Uint16(artifact.Data[44+i*2:]))
		if got != want {
			t.Errorf("sample %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestProcess_EmptyPayload(t *testing.T) {
	artifact, err := Process("", DefaultConfig())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if artifact.Buffer.Frames() != 0 {
		t.Errorf("expected 0 frames, got %d", artifact.Buffer.Frames())
	}
	if len(artifact.Data) != 44 {
		t.Errorf("expected header-only WAV, got %d bytes", len(artifact.Data))
	}
	if artifact.Duration() != 0 {
		t.Errorf("expected zero duration, got %v", artifact.Duration())
	}
}

func TestProcess_ArtifactName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"default download name", DefaultArtifactName, "vocalforge-output.wav"},
		{"extension added", "take-1", "take-1.wav"},
		{"extension case kept", "TAKE.WAV", "TAKE.WAV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ArtifactName = tt.input

			artifact, err := Process("AAAA", cfg)
			if err != nil {
				t.Fatalf("Process failed: %v", err)
			}
			if artifact.Name != tt.expected {
				t.Errorf("expected name %q, got %q", tt.expected, artifact.Name)
			}
		})
	}
}

func TestProcess_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		cfg     Config
		cause   any
	}{
		{"malformed base64", "AAAA%AAA", DefaultConfig(), new(*decode.DecodeError)},
		{"zero sample rate", "AAAA", Config{SampleRate: 0, Channels: 1}, new(*decode.InvalidParameterError)},
		{"zero channels", "AAAA", Config{SampleRate: 24000, Channels: 0}, new(*decode.InvalidParameterError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifact, err := Process(tt.payload, tt.cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if artifact != nil {
				t.Error("expected no artifact on failure")
			}

			if !errors.Is(err, ErrProcessingFailed) {
				t.Errorf("expected ErrProcessingFailed, got %v", err)
			}
			if err.Error() != "audio processing failed" {
				t.Errorf("expected consolidated message, got %q", err.Error())
			}

			var procErr *ProcessingError
			if !errors.As(err, &procErr) {
				t.Fatalf("expected *ProcessingError, got %T", err)
			}
			if !errors.As(err, tt.cause) {
				t.Errorf("expected cause %T, got %v", tt.cause, procErr.Err)
			}
		})
	}
}

func TestProcess_Concurrent(t *testing.T) {
	payloads := []string{"AAD/fwCAAQA=", "AAAA//8AAA==", "", "/38AgA=="}

	want := make([][]byte, len(payloads))
	for i, p := range payloads {
		artifact, err := Process(p, DefaultConfig())
		if err != nil {
			t.Fatalf("Process failed: %v", err)
		}
		want[i] = artifact.Data
	}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for n := 0; n < 16; n++ {
		for i, p := range payloads {
			wg.Add(1)
			go func(i int, p string) {
				defer wg.Done()
				artifact, err := Process(p, DefaultConfig())
				if err != nil {
					errs <- err
					return
				}
				if !bytes.Equal(artifact.Data, want[i]) {
					errs <- errors.New("concurrent result differs")
				}
			}(i, p)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestArtifactWriteFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArtifactName = DefaultArtifactName

	artifact, err := Process("AAD/fwCAAQA=", cfg)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "nested")
	path, err := artifact.WriteFile(dir)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if path != filepath.Join(dir, DefaultArtifactName) {
		t.Errorf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact failed: %v", err)
	}
	if !bytes.Equal(data, artifact.Data) {
		t.Error("written file differs from artifact data")
	}
}

func TestNewArtifactName(t *testing.T) {
	a, b := NewArtifactName(), NewArtifactName()
	if a == b {
		t.Error("expected unique names")
	}
	if !strings.HasSuffix(a, ".wav") {
		t.Errorf("expected .wav suffix, got %q", a)
	}
}

func TestArtifactDuration(t *testing.T) {
	// 24000 mono frames = 48000 bytes of zeros
	payload := strings.Repeat("A", 64000)

	artifact, err := Process(payload, DefaultConfig())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if artifact.Duration() != time.Second {
		t.Errorf("expected 1s, got %v", artifact.Duration())
	}
}
