package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/matcompare/internal/materials"
)

func TestRenderMaterialCard(t *testing.T) {
	t.Run("known values carry units", func(t *testing.T) {
		out := RenderMaterialCard(materials.Material{
			ID:            "mp-149",
			FormulaPretty: "Si",
			CrystalSystem: "cubic",
			SpaceGroup:    &materials.SpaceGroup{Symbol: "Fd-3m"},
			BandGap:       materials.Float(0.5),
			Density:       materials.Float(2.329),
			NSites:        materials.Int(2),
			IsStable:      materials.Bool(true),
		})

		assert.Contains(t, out, "Si")
		assert.Contains(t, out, "Cubic")
		assert.Contains(t, out, "Fd-3m")
		assert.Contains(t, out, "0.500 eV")
		assert.Contains(t, out, "2.329 g/cm³")
		assert.Contains(t, out, "Yes")
	})

	t.Run("missing values render N/A without units", func(t *testing.T) {
		out := RenderMaterialCard(materials.Material{ID: "mp-1", FormulaPretty: "X"})

		assert.Contains(t, out, materials.NotAvailable)
		assert.NotContains(t, out, "N/A eV")
		assert.NotContains(t, out, "N/A g/cm³")
	})
}

func TestRenderComparison(t *testing.T) {
	a := materials.Material{ID: "mp-149", FormulaPretty: "Si"}
	b := materials.Material{ID: "mp-2534", FormulaPretty: "GaAs"}

	t.Run("wide terminal places cards side by side", func(t *testing.T) {
		out := RenderComparison(a, b, 120)
		first := strings.SplitN(out, "\n", 3)[1]
		assert.Contains(t, first, "Si")
		assert.Contains(t, first, "GaAs")
	})

	t.Run("narrow terminal stacks cards", func(t *testing.T) {
		out := RenderComparison(a, b, 60)
		assert.Less(t, strings.Index(out, "Si"), strings.Index(out, "GaAs"))
		for _, line := range strings.Split(out, "\n") {
			assert.False(t, strings.Contains(line, "Si") && strings.Contains(line, "GaAs"))
		}
	})
}
