// Package materials defines the Material record returned by the materials
// backend and the display formatting shared by the TUI and plain renderers.
package materials

import "fmt"

// SpaceGroup is the symmetry summary attached to a material.
type SpaceGroup struct {
	Symbol string `json:"symbol"`
}

// Material is an immutable snapshot of one Materials Project entry.
//
// Only ID and FormulaPretty are guaranteed. Every other field is optional and
// decoded into a pointer so that an absent value can be told apart from zero.
type Material struct {
	ID                     string      `json:"material_id"`
	FormulaPretty          string      `json:"formula_pretty"`
	CrystalSystem          string      `json:"crystal_system,omitempty"`
	SpaceGroup             *SpaceGroup `json:"space_group,omitempty"`
	BandGap                *float64    `json:"band_gap,omitempty"`
	Density                *float64    `json:"density,omitempty"`
	FormationEnergyPerAtom *float64    `json:"formation_energy_per_atom,omitempty"`
	Volume                 *float64    `json:"volume,omitempty"`
	NSites                 *int        `json:"nsites,omitempty"`
	EnergyAboveHull        *float64    `json:"energy_above_hull,omitempty"`
	IsStable               *bool       `json:"is_stable,omitempty"`
	Theoretical            *bool       `json:"theoretical,omitempty"`
}

// Label returns the short "Formula (id)" form used in lists.
func (m Material) Label() string {
	return fmt.Sprintf("%s (%s)", m.FormulaPretty, m.ID)
}

// SpaceGroupSymbol returns the space group symbol or an empty string.
func (m Material) SpaceGroupSymbol() string {
	if m.SpaceGroup == nil {
		return ""
	}
	return m.SpaceGroup.Symbol
}

// IndexOf returns the position of the material with the given id, or -1.
func IndexOf(list []Material, id string) int {
	for i, m := range list {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Float returns a pointer to v. It exists for building fixtures and tests.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
