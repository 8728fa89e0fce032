package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/matcompare/internal/materials"
)

func TestRenderComparisonTable_KeepsFormulaCase(t *testing.T) {
	var buf bytes.Buffer
	renderComparisonTable(&buf,
		materials.Material{ID: "mp-54", FormulaPretty: "Co"},
		materials.Material{ID: "mp-2534", FormulaPretty: "GaAs"},
	)

	header := headerLine(t, buf.String())
	assert.Contains(t, header, " Co ")
	assert.Contains(t, header, " GaAs ")
	assert.Contains(t, header, "Property")
	assert.NotContains(t, header, "CO")
	assert.NotContains(t, header, "GAAS")
}

func TestRenderMaterialTable_KeepsHeaderCase(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderMaterialTable(&buf, []materials.Material{{ID: "mp-54", FormulaPretty: "Co"}}))

	out := buf.String()
	assert.Contains(t, headerLine(t, out), "Crystal System")
	assert.Contains(t, out, " Co ")
	assert.Contains(t, out, "(1 rows)")
}

func TestRenderMaterialTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderMaterialTable(&buf, nil))
	assert.Equal(t, "No materials found.\n", buf.String())
}

// headerLine returns the first table row, below the top border.
func headerLine(t *testing.T, out string) string {
	t.Helper()
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 2)
	return lines[1]
}
