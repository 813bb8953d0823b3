// ABOUTME: Bubbletea model for the artifact player TUI
// ABOUTME: Defines playback state, key handling and rendering
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Playback states
const (
	StateIdle     = "idle"
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateFinished = "finished"
)

// ArtifactInfo describes the WAV artifact being played
type ArtifactInfo struct {
	Name       string
	Path       string
	SampleRate int
	Channels   int
	Frames     int
	Size       int
	Duration   time.Duration
}

// Model represents the TUI state
type Model struct {
	info ArtifactInfo

	// Playback
	state    string
	position time.Duration
	err      error

	ctrl *PlaybackControl

	// Dimensions
	width  int
	height int
}

// StatusMsg updates TUI state
type StatusMsg struct {
	State    string
	Position time.Duration
	Err      error
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StatusMsg:
		m.applyStatus(msg)
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("VocalForge Player"))
	b.WriteString("\n\n")

	m.renderField(&b, "File: ", m.info.Name)
	if m.info.Path != "" {
		m.renderField(&b, "Saved: ", m.info.Path)
	}
	m.renderField(&b, "Format: ", fmt.Sprintf("PCM 16-bit %dHz %s", m.info.SampleRate, channelName(m.info.Channels)))
	m.renderField(&b, "Size: ", fmt.Sprintf("%d bytes, %d frames", m.info.Size, m.info.Frames))
	b.WriteString("\n")

	m.renderField(&b, "State: ", m.state)
	b.WriteString(fmt.Sprintf("[%s] %s / %s\n",
		renderBar(m.position, m.info.Duration, 30),
		formatDuration(m.position), formatDuration(m.info.Duration)))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space:Pause/Resume  q:Quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderField(b *strings.Builder, label, value string) {
	b.WriteString(headerStyle.Render(label))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.ctrl != nil {
			select {
			case m.ctrl.Quit <- QuitMsg{}:
			default:
			}
		}
		return m, tea.Quit
	case " ":
		switch m.state {
		case StatePlaying:
			m.state = StatePaused
			m.sendPause(true)
		case StatePaused:
			m.state = StatePlaying
			m.sendPause(false)
		}
	}

	return m, nil
}

func (m Model) sendPause(paused bool) {
	if m.ctrl == nil {
		return
	}
	select {
	case m.ctrl.Pause <- paused:
	default:
	}
}

// applyStatus updates model from status message
func (m *Model) applyStatus(msg StatusMsg) {
	if msg.State != "" {
		m.state = msg.State
	}
	if msg.Position > 0 {
		m.position = msg.Position
	}
	if m.state == StateFinished {
		m.position = m.info.Duration
	}
	if msg.Err != nil {
		m.err = msg.Err
	}
}

// Utility functions
func renderBar(value, max time.Duration, width int) string {
	filled := 0
	if max > 0 {
		filled = int(int64(value) * int64(width) / int64(max))
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func formatDuration(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", minutes, seconds)
}

func channelName(channels int) string {
	switch channels {
	case 1:
		return "Mono"
	case 2:
		return "Stereo"
	default:
		return fmt.Sprintf("%d channels", channels)
	}
}
