package materials

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotAvailable is rendered in place of any missing optional value.
const NotAvailable = "N/A"

// Display precision for the comparison view.
const (
	energyDecimals  = 3
	densityDecimals = 3
	volumeDecimals  = 2
)

// Units appended to formatted values.
const (
	UnitEV        = "eV"
	UnitEVPerAtom = "eV/atom"
	UnitDensity   = "g/cm³"
	UnitVolume    = "Å³"
)

// Property is one labelled row of the comparison view.
type Property struct {
	Label string
	Value string
}

// FormatFixed renders v with a fixed number of decimals followed by unit.
// Formatting is locale independent. A nil value renders as N/A without unit.
func FormatFixed(v *float64, decimals int, unit string) string {
	if v == nil {
		return NotAvailable
	}
	s := strconv.FormatFloat(*v, 'f', decimals, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// FormatInt renders an optional integer.
func FormatInt(v *int) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.Itoa(*v)
}

// FormatFlag renders an optional flag as Yes/No. An absent flag reads as No.
func FormatFlag(v *bool) string {
	if v != nil && *v {
		return "Yes"
	}
	return "No"
}

// FormatText renders an optional string, using N/A when blank.
func FormatText(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// CrystalSystemLabel normalises the backend's crystal system name
// ("cubic", "CUBIC", "Cubic") to title case.
func CrystalSystemLabel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NotAvailable
	}
	return cases.Title(language.English).String(strings.ToLower(s))
}

// ComparisonRows returns the labelled properties shown for a material in the
// comparison view, in display order. The formula is the card title and is
// not repeated here.
func ComparisonRows(m Material) []Property {
	return []Property{
		{Label: "ID", Value: m.ID},
		{Label: "Crystal System", Value: CrystalSystemLabel(m.CrystalSystem)},
		{Label: "Space Group", Value: FormatText(m.SpaceGroupSymbol())},
		{Label: "Band Gap", Value: FormatFixed(m.BandGap, energyDecimals, UnitEV)},
		{Label: "Density", Value: FormatFixed(m.Density, densityDecimals, UnitDensity)},
		{Label: "Volume", Value: FormatFixed(m.Volume, volumeDecimals, UnitVolume)},
		{Label: "Sites", Value: FormatInt(m.NSites)},
		{Label: "Formation Energy", Value: FormatFixed(m.FormationEnergyPerAtom, energyDecimals, UnitEVPerAtom)},
		{Label: "Energy Above Hull", Value: FormatFixed(m.EnergyAboveHull, energyDecimals, UnitEVPerAtom)},
		{Label: "Stable", Value: FormatFlag(m.IsStable)},
		{Label: "Theoretical", Value: FormatFlag(m.Theoretical)},
	}
}
