package session

import "github.com/rshade/matcompare/internal/materials"

// MaxSelection is the capacity of the Selection Set.
const MaxSelection = 2

// Selection is the ordered set of materials staged for comparison. It holds
// at most MaxSelection entries with distinct material IDs.
//
// Selection is a value type: Add and Remove return a new Selection and never
// modify the receiver's backing array.
type Selection struct {
	items []materials.Material
}

// NewSelection builds a Selection from ms, applying the same rules as Add.
func NewSelection(ms ...materials.Material) Selection {
	var s Selection
	for _, m := range ms {
		s, _ = s.Add(m)
	}
	return s
}

// Len returns the number of selected materials.
func (s Selection) Len() int { return len(s.items) }

// Full reports whether the selection is at capacity.
func (s Selection) Full() bool { return len(s.items) >= MaxSelection }

// Contains reports whether a material with the given id is selected.
func (s Selection) Contains(id string) bool {
	return materials.IndexOf(s.items, id) >= 0
}

// CanAdd reports whether Add(m) would grow the selection.
func (s Selection) CanAdd(m materials.Material) bool {
	return !s.Full() && !s.Contains(m.ID)
}

// Items returns a copy of the selected materials in insertion order.
func (s Selection) Items() []materials.Material {
	out := make([]materials.Material, len(s.items))
	copy(out, s.items)
	return out
}

// At returns the i-th selected material.
func (s Selection) At(i int) (materials.Material, bool) {
	if i < 0 || i >= len(s.items) {
		return materials.Material{}, false
	}
	return s.items[i], true
}

// Add appends m unless the selection is full or already contains m.ID.
// The boolean reports whether the selection changed.
func (s Selection) Add(m materials.Material) (Selection, bool) {
	if !s.CanAdd(m) {
		return s, false
	}
	items := make([]materials.Material, len(s.items), len(s.items)+1)
	copy(items, s.items)
	return Selection{items: append(items, m)}, true
}

// Remove drops the material with the given id. Removing an absent id is a no-op.
func (s Selection) Remove(id string) (Selection, bool) {
	idx := materials.IndexOf(s.items, id)
	if idx < 0 {
		return s, false
	}
	items := make([]materials.Material, 0, len(s.items)-1)
	items = append(items, s.items[:idx]...)
	items = append(items, s.items[idx+1:]...)
	return Selection{items: items}, true
}

// Pair returns both materials when the selection is complete.
func (s Selection) Pair() (materials.Material, materials.Material, bool) {
	if len(s.items) != MaxSelection {
		return materials.Material{}, materials.Material{}, false
	}
	return s.items[0], s.items[1], true
}
