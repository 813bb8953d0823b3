// ABOUTME: Entry point for the VocalForge artifact tool
// ABOUTME: Turns a base64 PCM16 synthesis response into a WAV file and plays it
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vocalforge/vocalforge-go/internal/ui"
	"github.com/vocalforge/vocalforge-go/internal/version"
	"github.com/vocalforge/vocalforge-go/pkg/audio/output"
	"github.com/vocalforge/vocalforge-go/pkg/vocalforge"
)

var (
	inPath     = flag.String("in", "-", "File holding the base64 PCM16 response (- for stdin)")
	outDir     = flag.String("out", ".", "Directory to write the WAV artifact into")
	name       = flag.String("name", vocalforge.DefaultArtifactName, "Artifact file name (use \"uuid\" for a unique name)")
	sampleRate = flag.Int("sample-rate", vocalforge.DefaultSampleRate, "Sample rate of the PCM data in Hz")
	channels   = flag.Int("channels", vocalforge.DefaultChannels, "Channel count of the PCM data")
	toneText   = flag.String("tone", "", "Generate a test tone for this text instead of reading -in")
	voice      = flag.String("voice", vocalforge.DefaultVoiceID, "Voice for -tone requests")
	style      = flag.String("style", string(vocalforge.DefaultStyle), "Style for -tone requests")
	play       = flag.Bool("play", false, "Play the artifact after writing it")
	logFile    = flag.String("log-file", "vocalforge.log", "Log file path")
	noTUI      = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
	showVer    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println(version.String())
		return
	}

	// TUI only makes sense while something is playing
	useTUI := *play && !*noTUI

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		// Streaming logs mode: log to both stdout and file
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	log.Printf("Starting %s", version.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := vocalforge.Config{
		SampleRate:   *sampleRate,
		Channels:     *channels,
		ArtifactName: *name,
	}
	if cfg.ArtifactName == "uuid" {
		cfg.ArtifactName = vocalforge.NewArtifactName()
	}

	artifact, err := buildArtifact(ctx, cfg)
	if err != nil {
		log.Printf("Failed to build artifact: %v", err)
		// Full error chain goes to the log, the short message to stderr
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}

	path, err := artifact.WriteFile(*outDir)
	if err != nil {
		log.Fatalf("Failed to write artifact: %v", err)
	}
	log.Printf("Wrote %s (%d bytes, %s)", path, len(artifact.Data), artifact.Duration())

	if !*play {
		return
	}

	if err := playArtifact(ctx, artifact, path, useTUI); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Playback failed: %v", err)
	}

	log.Printf("Player stopped")
}

// buildArtifact runs the tone generator or processes the saved response
func buildArtifact(ctx context.Context, cfg vocalforge.Config) (*vocalforge.Artifact, error) {
	if *toneText != "" {
		synth, err := vocalforge.NewToneSynthesizer(cfg)
		if err != nil {
			return nil, err
		}
		gen, err := vocalforge.NewGenerator(synth, cfg)
		if err != nil {
			return nil, err
		}
		return gen.Generate(ctx, vocalforge.Request{
			Text:  *toneText,
			Voice: *voice,
			Style: vocalforge.Style(*style),
		})
	}

	payload, err := readPayload(*inPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Read %d base64 characters from %s", len(payload), *inPath)

	return vocalforge.Process(payload, cfg)
}

// readPayload reads the base64 response from a file or stdin
func readPayload(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = file.Close() }()
		r = file
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// userMessage picks the message shown outside the log
func userMessage(err error) string {
	var procErr *vocalforge.ProcessingError
	if errors.As(err, &procErr) {
		return procErr.Error()
	}
	return err.Error()
}

// playArtifact plays the artifact buffer, driving the TUI when enabled
func playArtifact(ctx context.Context, artifact *vocalforge.Artifact, path string, useTUI bool) error {
	out := output.NewOto()
	if err := out.Open(artifact.Buffer.Format); err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	if !useTUI {
		log.Printf("Playing %s", artifact.Name)
		return out.Play(ctx, artifact.Buffer)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl := ui.NewPlaybackControl()
	tuiProg := ui.Run(ui.ArtifactInfo{
		Name:       artifact.Name,
		Path:       path,
		SampleRate: artifact.Buffer.Format.SampleRate,
		Channels:   artifact.Buffer.NumChannels(),
		Frames:     artifact.Buffer.Frames(),
		Size:       len(artifact.Data),
		Duration:   artifact.Duration(),
	}, ctrl)

	tuiDone := make(chan struct{})
	go func() {
		defer close(tuiDone)
		if _, err := tuiProg.Run(); err != nil {
			log.Printf("TUI error: %v", err)
		}
	}()

	go handlePlaybackControl(ctx, cancel, out, ctrl)
	go positionUpdateLoop(ctx, out, tuiProg)

	tuiProg.Send(ui.StatusMsg{State: ui.StatePlaying})
	err := out.Play(ctx, artifact.Buffer)

	switch {
	case err == nil:
		tuiProg.Send(ui.StatusMsg{State: ui.StateFinished})
		// Leave the finished screen up until the user quits
		select {
		case <-ctrl.Quit:
		case <-ctx.Done():
		case <-tuiDone:
		}
	case errors.Is(err, context.Canceled):
		log.Printf("Playback canceled")
	default:
		tuiProg.Send(ui.StatusMsg{Err: err})
	}

	tuiProg.Quit()
	<-tuiDone
	return err
}

// handlePlaybackControl processes pause and quit requests from TUI
func handlePlaybackControl(ctx context.Context, cancel context.CancelFunc, ctrl output.Controller, pc *ui.PlaybackControl) {
	for {
		select {
		case paused := <-pc.Pause:
			log.Printf("Pause requested: %v", paused)
			if paused {
				ctrl.Pause()
			} else {
				ctrl.Resume()
			}
		case <-pc.Quit:
			log.Printf("Received quit signal from TUI")
			// Re-arm for the finished-screen wait in playArtifact
			select {
			case pc.Quit <- ui.QuitMsg{}:
			default:
			}
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

// positionUpdateLoop periodically sends the playback position to the TUI
func positionUpdateLoop(ctx context.Context, ctrl output.Controller, prog *tea.Program) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			prog.Send(ui.StatusMsg{Position: ctrl.Position()})
		}
	}
}
