package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rshade/matcompare/internal/config"
	"github.com/rshade/matcompare/internal/materials"
)

// outputFormat resolves --output against the configured default and checks it.
func outputFormat(flagValue string) (string, error) {
	format := strings.ToLower(config.GetOutputFormat(flagValue))
	switch format {
	case config.OutputTable, config.OutputJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// renderMaterials writes list in the requested format.
func renderMaterials(w io.Writer, format string, list []materials.Material) error {
	if format == config.OutputJSON {
		return renderJSON(w, list)
	}
	return renderMaterialTable(w, list)
}

func renderMaterialTable(w io.Writer, list []materials.Material) error {
	if len(list) == 0 {
		_, _ = fmt.Fprintln(w, "No materials found.")
		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Formula", "Crystal System", "Space Group", "Band Gap", "Density", "Stable"})

	for _, m := range list {
		t.AppendRow(table.Row{
			m.ID,
			m.FormulaPretty,
			materials.CrystalSystemLabel(m.CrystalSystem),
			materials.FormatText(m.SpaceGroupSymbol()),
			materials.FormatFixed(m.BandGap, 3, materials.UnitEV),
			materials.FormatFixed(m.Density, 3, materials.UnitDensity),
			materials.FormatFlag(m.IsStable),
		})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(list))
	return nil
}

// renderComparisonTable writes one row per compared property.
func renderComparisonTable(w io.Writer, a, b materials.Material) {
	left := materials.ComparisonRows(a)
	right := materials.ComparisonRows(b)

	t := newTable(w)
	t.AppendHeader(table.Row{"Property", a.FormulaPretty, b.FormulaPretty})
	for i := range left {
		t.AppendRow(table.Row{left[i].Label, left[i].Value, right[i].Value})
	}
	t.Render()
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable returns a light-style table writer. Header cells are printed as
// given: formulas are case sensitive.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	return t
}
