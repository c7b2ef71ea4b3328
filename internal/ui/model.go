// ABOUTME: Bubbletea model for the format matrix TUI
// ABOUTME: Shows per-extension support and how each asset resolves
package ui

import (
	"fmt"
	"log"

	"github.com/Sendspin/sketchsound/pkg/audio"
	"github.com/Sendspin/sketchsound/pkg/format"
	"github.com/Sendspin/sketchsound/pkg/support"
	tea "github.com/charmbracelet/bubbletea"
)

// volumeStep is the master volume change per keypress
const volumeStep = 0.05

// Model represents the TUI state
type Model struct {
	// Negotiation inputs
	assets    []string
	preferred []audio.Extension
	supported map[audio.Extension]bool
	source    string

	// Selection
	cursor int

	// Playback
	volume float64

	controls *Controls

	// Dimensions
	width  int
	height int
}

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
	case SupportMsg:
		m.applySupport(msg)
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := ""
	s += m.renderHeader()
	s += m.renderMatrix()
	s += m.renderAssets()
	s += m.renderHelp()

	return s
}

// Resolutions resolves every asset against the current support matrix
func (m Model) Resolutions() []format.Resolution {
	r := format.NewResolver(support.Static(m.supported))
	tokens := make([]string, len(m.preferred))
	for i, ext := range m.preferred {
		tokens[i] = string(ext)
	}
	if err := r.SetPreferredFormats(tokens...); err != nil {
		log.Printf("TUI preference list rejected: %v", err)
	}

	out := make([]format.Resolution, len(m.assets))
	for i, asset := range m.assets {
		out[i] = r.ResolveSinglePath(asset)
	}
	return out
}

// renderHeader renders the support source and volume
func (m Model) renderHeader() string {
	return fmt.Sprintf(`┌─ Sketch Sound Formats ───────────────────────────────┐
│ Source: %-44s │
│ Volume: [%s] %4.2f%-26s │
├──────────────────────────────────────────────────────┤
`, truncate(m.source, 44), renderBar(m.volume, 10), m.volume, "")
}

// renderMatrix renders one cell per allowed extension
func (m Model) renderMatrix() string {
	s := "│ Support:"
	for i, ext := range audio.AllowedExtensions() {
		mark := "✗"
		if m.supported[ext] {
			mark = "✓"
		}
		cell := fmt.Sprintf(" %s %-3s ", mark, ext)
		if i == m.cursor {
			cell = fmt.Sprintf("[%s %-3s]", mark, ext)
		}
		s += cell
	}
	s += "  │\n"
	s += fmt.Sprintf("│ Prefer:  %-43s │\n", truncate(fmt.Sprint(m.preferred), 43))
	s += "├──────────────────────────────────────────────────────┤\n"
	return s
}

// renderAssets renders how each requested asset resolves
func (m Model) renderAssets() string {
	if len(m.assets) == 0 {
		return "│ No assets                                            │\n"
	}

	s := ""
	for i, res := range m.Resolutions() {
		status := "✓"
		if !res.Supported {
			status = "✗"
		}
		line := fmt.Sprintf("%s %s -> %s", status, m.assets[i], res.Path)
		s += fmt.Sprintf("│ %-52s │\n", truncate(line, 52))
	}
	return s
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `│ ←/→:Select  space:Toggle  ↑/↓:Volume  q:Quit         │
└──────────────────────────────────────────────────────┘
`
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	exts := audio.AllowedExtensions()

	switch msg.String() {
	case "q", "ctrl+c":
		if m.controls != nil {
			select {
			case m.controls.Quit <- QuitMsg{}:
			default:
			}
		}
		return m, tea.Quit
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right":
		if m.cursor < len(exts)-1 {
			m.cursor++
		}
	case " ":
		ext := exts[m.cursor]
		m.supported = copySupport(m.supported)
		m.supported[ext] = !m.supported[ext]
		m.source = "manual"
	case "up":
		m.volume += volumeStep
		m.sendVolume()
	case "down":
		m.volume -= volumeStep
		if m.volume < 0 {
			m.volume = 0
		}
		m.sendVolume()
	}

	return m, nil
}

// sendVolume forwards the current volume to the controller, if any
func (m Model) sendVolume() {
	if m.controls == nil {
		return
	}
	select {
	case m.controls.Volume <- VolumeChangeMsg{Volume: m.volume}:
	default:
	}
}

// applySupport replaces the support matrix
func (m *Model) applySupport(msg SupportMsg) {
	if msg.Source != "" {
		m.source = msg.Source
	}
	if msg.Supported != nil {
		m.supported = copySupport(msg.Supported)
	}
}

// SupportMsg replaces the support matrix shown by the TUI
type SupportMsg struct {
	Source    string
	Supported map[audio.Extension]bool
}

// VolumeChangeMsg is sent to the controller when the user changes volume
type VolumeChangeMsg struct {
	Volume float64
}

// QuitMsg is sent to the controller when the user quits
type QuitMsg struct{}

// Utility functions
func copySupport(in map[audio.Extension]bool) map[audio.Extension]bool {
	out := make(map[audio.Extension]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func renderBar(value float64, width int) string {
	filled := int(value * float64(width))
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}
