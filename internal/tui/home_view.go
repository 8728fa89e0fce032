package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/matcompare/internal/materials"
	"github.com/rshade/matcompare/internal/session"
)

// Popular grid geometry.
const (
	popularCardWidth  = 18
	popularMaxColumns = 4
)

const popularPlaceholder = "Loading popular materials..."

func (m *Model) renderHomeView() string {
	sections := []string{
		TitleStyle.Render("Materials Search & Compare"),
		m.renderSearchPanel(),
	}
	if m.state.Selection.Len() > 0 {
		sections = append(sections, m.renderSelectedPanel())
	}
	sections = append(sections,
		m.renderPopularPanel(),
		m.help.View(homeHelp{keys: m.keys, searching: m.focus == focusSearch}),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderSearchPanel() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Search Materials"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())

	if m.state.Loading {
		sb.WriteString("\n")
		sb.WriteString(m.loading.View())
	}
	if m.state.Error != "" {
		sb.WriteString("\n")
		sb.WriteString(ErrorStyle.Render(m.state.Error))
	}

	if len(m.state.Results) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(LabelStyle.Render("Search Results:"))
		for i, r := range m.state.Results {
			sb.WriteString("\n")
			sb.WriteString(m.renderResultRow(r, m.focus == focusResults && i == m.resultCursor))
		}
	}

	focused := m.focus == focusSearch || m.focus == focusResults
	return panel(sb.String(), focused, m.width)
}

func (m *Model) renderResultRow(r materials.Material, current bool) string {
	line := fmt.Sprintf("%s %s", ValueStyle.Bold(true).Render(r.FormulaPretty), InfoStyle.Render("("+r.ID+")"))
	action := m.addLabel(r)
	return cursorPrefix(current) + line + "  " + action
}

// addLabel describes what adding r would do.
func (m *Model) addLabel(r materials.Material) string {
	switch {
	case m.state.Selection.Contains(r.ID):
		return disabledStyle.Render("[selected]")
	case m.state.Selection.Full():
		return disabledStyle.Render("[full]")
	default:
		return ActionStyle.Render("[add]")
	}
}

func (m *Model) renderSelectedPanel() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("Selected Materials (%d/%d)", m.state.Selection.Len(), session.MaxSelection)))

	for i, sel := range m.state.Selection.Items() {
		sb.WriteString("\n")
		current := m.focus == focusSelected && i == m.selectedCursor
		sb.WriteString(cursorPrefix(current))
		sb.WriteString(ValueStyle.Bold(true).Render(sel.FormulaPretty))
		sb.WriteString("  ")
		sb.WriteString(InfoStyle.Render("[remove]"))
	}

	if m.state.CanCompare() {
		sb.WriteString("\n\n")
		sb.WriteString(ActionStyle.Render("Compare Materials (press c or ctrl+o)"))
	}

	return panel(sb.String(), m.focus == focusSelected, m.width)
}

func (m *Model) renderPopularPanel() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Popular Materials"))
	sb.WriteString("\n")

	if len(m.state.Popular) == 0 {
		sb.WriteString(InfoStyle.Render(popularPlaceholder))
		return panel(sb.String(), m.focus == focusPopular, m.width)
	}

	cols := m.popularColumns()
	var rows []string
	for start := 0; start < len(m.state.Popular); start += cols {
		end := min(start+cols, len(m.state.Popular))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderPopularCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return panel(sb.String(), m.focus == focusPopular, m.width)
}

func (m *Model) renderPopularCard(i int) string {
	p := m.state.Popular[i]
	inner := popularCardWidth - cardStyle.GetHorizontalBorderSize()

	formula := lipgloss.NewStyle().Bold(true).Render(p.FormulaPretty)
	system := InfoStyle.Render(p.CrystalSystem)
	content := lipgloss.JoinVertical(lipgloss.Center, formula, system)

	style := cardStyle
	switch {
	case m.focus == focusPopular && i == m.popularCursor:
		style = activeCardStyle
	case !m.state.Selection.CanAdd(p):
		content = disabledStyle.Render(p.FormulaPretty + "\n" + p.CrystalSystem)
	}
	return style.Width(inner).Align(lipgloss.Center).Render(content)
}

// popularColumns is the number of popular cards per row for the current width.
func (m *Model) popularColumns() int {
	usable := m.width - focusedPanelStyle.GetHorizontalFrameSize()
	cols := usable / popularCardWidth
	return max(1, min(cols, popularMaxColumns))
}

func cursorPrefix(current bool) string {
	if current {
		return cursorStyle.Render("▸ ")
	}
	return "  "
}
