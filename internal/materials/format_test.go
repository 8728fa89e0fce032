package materials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		decimals int
		unit     string
		want     string
	}{
		{name: "nil renders N/A without unit", value: nil, decimals: 3, unit: UnitEV, want: "N/A"},
		{name: "rounds to three decimals", value: Float(0.61049), decimals: 3, unit: UnitEV, want: "0.610 eV"},
		{name: "pads with zeros", value: Float(2), decimals: 3, unit: UnitDensity, want: "2.000 g/cm³"},
		{name: "zero is a value", value: Float(0), decimals: 3, unit: UnitEVPerAtom, want: "0.000 eV/atom"},
		{name: "two decimals", value: Float(40.8886), decimals: 2, unit: UnitVolume, want: "40.89 Å³"},
		{name: "negative", value: Float(-1.23456), decimals: 3, unit: "", want: "-1.235"},
		{name: "no grouping separators", value: Float(12345.5), decimals: 2, unit: "", want: "12345.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFixed(tt.value, tt.decimals, tt.unit))
		})
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "N/A", FormatInt(nil))
	assert.Equal(t, "0", FormatInt(Int(0)))
	assert.Equal(t, "8", FormatInt(Int(8)))
}

func TestFormatFlag(t *testing.T) {
	assert.Equal(t, "Yes", FormatFlag(Bool(true)))
	assert.Equal(t, "No", FormatFlag(Bool(false)))
	assert.Equal(t, "No", FormatFlag(nil))
}

func TestCrystalSystemLabel(t *testing.T) {
	assert.Equal(t, "Cubic", CrystalSystemLabel("cubic"))
	assert.Equal(t, "Hexagonal", CrystalSystemLabel("HEXAGONAL"))
	assert.Equal(t, "Trigonal", CrystalSystemLabel(" Trigonal "))
	assert.Equal(t, "N/A", CrystalSystemLabel(""))
}

func TestComparisonRows(t *testing.T) {
	t.Run("missing optional values render N/A", func(t *testing.T) {
		rows := ComparisonRows(Material{ID: "mp-x", FormulaPretty: "X"})

		values := make(map[string]string, len(rows))
		for _, r := range rows {
			values[r.Label] = r.Value
		}

		assert.Equal(t, "mp-x", values["ID"])
		for _, label := range []string{
			"Crystal System", "Space Group", "Band Gap", "Density", "Volume",
			"Sites", "Formation Energy", "Energy Above Hull",
		} {
			assert.Equal(t, NotAvailable, values[label], label)
		}
		assert.Equal(t, "No", values["Stable"])
		assert.Equal(t, "No", values["Theoretical"])
	})

	t.Run("full record in display order", func(t *testing.T) {
		m := Material{
			ID:                     "mp-149",
			FormulaPretty:          "Si",
			CrystalSystem:          "cubic",
			SpaceGroup:             &SpaceGroup{Symbol: "Fd-3m"},
			BandGap:                Float(0.6105),
			Density:                Float(2.2857),
			Volume:                 Float(40.8886),
			NSites:                 Int(2),
			FormationEnergyPerAtom: Float(0),
			EnergyAboveHull:        Float(0),
			IsStable:               Bool(true),
			Theoretical:            Bool(false),
		}

		rows := ComparisonRows(m)
		require.Len(t, rows, 11)

		assert.Equal(t, Property{Label: "ID", Value: "mp-149"}, rows[0])
		assert.Equal(t, Property{Label: "Crystal System", Value: "Cubic"}, rows[1])
		assert.Equal(t, Property{Label: "Space Group", Value: "Fd-3m"}, rows[2])
		assert.Equal(t, Property{Label: "Band Gap", Value: "0.611 eV"}, rows[3])
		assert.Equal(t, Property{Label: "Density", Value: "2.286 g/cm³"}, rows[4])
		assert.Equal(t, Property{Label: "Volume", Value: "40.89 Å³"}, rows[5])
		assert.Equal(t, Property{Label: "Sites", Value: "2"}, rows[6])
		assert.Equal(t, Property{Label: "Formation Energy", Value: "0.000 eV/atom"}, rows[7])
		assert.Equal(t, Property{Label: "Energy Above Hull", Value: "0.000 eV/atom"}, rows[8])
		assert.Equal(t, Property{Label: "Stable", Value: "Yes"}, rows[9])
		assert.Equal(t, Property{Label: "Theoretical", Value: "No"}, rows[10])
	})
}
