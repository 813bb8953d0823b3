// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the artifact player UI
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// PlaybackControl holds channels for playback control communication
type PlaybackControl struct {
	Pause chan bool
	Quit  chan QuitMsg
}

// QuitMsg signals that the user asked to stop playback
type QuitMsg struct{}

// NewPlaybackControl creates a new playback control handler
func NewPlaybackControl() *PlaybackControl {
	return &PlaybackControl{
		Pause: make(chan bool, 10),
		Quit:  make(chan QuitMsg, 1),
	}
}

// NewModel creates a new TUI model
func NewModel(info ArtifactInfo, ctrl *PlaybackControl) Model {
	return Model{
		info:  info,
		state: StateIdle,
		ctrl:  ctrl,
	}
}

// Run creates the TUI program; the caller starts it with p.Run
func Run(info ArtifactInfo, ctrl *PlaybackControl) *tea.Program {
	return tea.NewProgram(NewModel(info, ctrl), tea.WithAltScreen())
}
