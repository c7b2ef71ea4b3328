// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the format matrix UI
package ui

import (
	"github.com/Sendspin/sketchsound/pkg/audio"
	tea "github.com/charmbracelet/bubbletea"
)

// Controls holds channels the TUI uses to talk back to the sketch
type Controls struct {
	Volume chan VolumeChangeMsg
	Quit   chan QuitMsg
}

// NewControls creates a new control handler
func NewControls() *Controls {
	return &Controls{
		Volume: make(chan VolumeChangeMsg, 10),
		Quit:   make(chan QuitMsg, 1),
	}
}

// Options seeds the TUI model
type Options struct {
	Assets    []string
	Preferred []audio.Extension
	Supported map[audio.Extension]bool
	Source    string
	Volume    float64
}

// NewModel creates a new TUI model
func NewModel(opts Options, controls *Controls) Model {
	return Model{
		assets:    opts.Assets,
		preferred: append([]audio.Extension(nil), opts.Preferred...),
		supported: copySupport(opts.Supported),
		source:    opts.Source,
		volume:    opts.Volume,
		controls:  controls,
	}
}

// Run creates the TUI program; the caller starts it
func Run(opts Options, controls *Controls) (*tea.Program, error) {
	p := tea.NewProgram(NewModel(opts, controls), tea.WithAltScreen())
	return p, nil
}
