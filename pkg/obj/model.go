// Package obj reads and writes Wavefront OBJ files.
//
// The codec covers the subset of OBJ that maps onto the half-edge mesh:
// vertex positions, per-corner texture coordinates, per-vertex normals,
// n-gon faces and usemtl material assignments. Groups, smoothing groups
// and material library contents carry no mesh data and are skipped.
package obj

import (
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// Model couples a mesh with the material names referenced by its faces.
// Face material slots index Materials; slot 0 is the unnamed default.
type Model struct {
	Name      string
	Mesh      *halfedge.Mesh
	Materials []string
}

// NewModel creates an empty model with the default material slot.
func NewModel() *Model {
	return &Model{
		Mesh:      halfedge.NewMesh(),
		Materials: []string{""},
	}
}

// MaterialSlot returns the slot for the named material, adding it to
// Materials if it has not been seen before.
func (m *Model) MaterialSlot(name string) int {
	for i, existing := range m.Materials {
		if existing == name {
			return i
		}
	}
	m.Materials = append(m.Materials, name)
	return len(m.Materials) - 1
}

// MaterialName returns the name of a slot, or "" for the default slot
// and for slots the model does not know.
func (m *Model) MaterialName(slot int) string {
	if slot < 0 || slot >= len(m.Materials) {
		return ""
	}
	return m.Materials[slot]
}
