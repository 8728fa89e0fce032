package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorHeader   = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	ColorLabel    = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	ColorValue    = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	ColorMuted    = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	ColorSpinner  = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}
	ColorError    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	ColorSuccess  = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
	ColorFocus    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	ColorBorder   = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	ColorSelected = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"}
)

// Shared styles.
var (
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).MarginBottom(1)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError)
	ActionStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	focusedPanelStyle = panelStyle.BorderForeground(ColorFocus)

	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorFocus)
	disabledStyle = lipgloss.NewStyle().Foreground(ColorMuted).Faint(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	activeCardStyle = cardStyle.BorderForeground(ColorFocus).Background(ColorSelected)
)

// panel renders content inside a bordered box, highlighted when focused.
func panel(content string, focused bool, width int) string {
	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}
	return style.Render(content)
}
