package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/matcompare/internal/materials"
)

// Comparison card geometry.
const (
	comparisonCardWidth = 44
	comparisonGap       = 2
	comparisonLabelLen  = 19
)

func (m *Model) renderComparisonView() string {
	header := TitleStyle.Render("Material Comparison")

	a, b, ok := m.state.Selection.Pair()
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			InfoStyle.Render("Select two materials to compare."),
			m.help.View(comparisonHelp{keys: m.keys}),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		RenderComparison(a, b, m.width),
		m.help.View(comparisonHelp{keys: m.keys}),
	)
}

// RenderComparison renders two material cards side by side, or stacked when
// width cannot fit both. It only reads the given materials.
func RenderComparison(a, b materials.Material, width int) string {
	left := RenderMaterialCard(a)
	right := RenderMaterialCard(b)

	if width > 0 && width < 2*comparisonCardWidth+comparisonGap {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	gap := strings.Repeat(" ", comparisonGap)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}

// RenderMaterialCard renders one material's comparison properties.
func RenderMaterialCard(mat materials.Material) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(mat.FormulaPretty))

	for _, p := range materials.ComparisonRows(mat) {
		sb.WriteString("\n")
		label := LabelStyle.Width(comparisonLabelLen).Render(p.Label + ":")
		value := ValueStyle.Render(p.Value)
		if p.Value == materials.NotAvailable {
			value = InfoStyle.Render(p.Value)
		}
		sb.WriteString(label)
		sb.WriteString(value)
	}

	inner := comparisonCardWidth - cardStyle.GetHorizontalBorderSize()
	return cardStyle.Width(inner).Render(sb.String())
}
