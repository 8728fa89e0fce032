package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingState wraps the spinner shown while a search is in flight.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState returns a spinner labelled with message.
func NewLoadingState(message string) *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorSpinner)
	return &LoadingState{spinner: s, message: message}
}

// Tick starts (or restarts) the spinner animation.
func (l *LoadingState) Tick() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner. Stale ticks are ignored by the spinner itself.
func (l *LoadingState) Update(msg spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner and its label.
func (l *LoadingState) View() string {
	return l.spinner.View() + " " + lipgloss.NewStyle().Foreground(ColorSpinner).Render(l.message)
}
