package halfedge

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// FaceNormal returns the Newell normal of a face, unnormalized. Its
// length is twice the face area for planar rings; callers needing a unit
// vector normalize it. The Newell sum stays meaningful for slightly
// non-planar n-gons where a single cross product would not.
func (m *Mesh) FaceNormal(f FaceID) (geometry.Vector3, error) {
	verts, err := m.FaceVertices(f)
	if err != nil {
		return geometry.Vector3{}, err
	}
	var n geometry.Vector3
	for i, v := range verts {
		a := m.positions[v]
		b := m.positions[verts[(i+1)%len(verts)]]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n, nil
}

// FaceArea returns the area of a face from its Newell normal.
func (m *Mesh) FaceArea(f FaceID) (float64, error) {
	n, err := m.FaceNormal(f)
	if err != nil {
		return 0, err
	}
	return n.Length() / 2.0, nil
}

// FaceCenter returns the average position of a face's ring vertices.
func (m *Mesh) FaceCenter(f FaceID) (geometry.Vector3, error) {
	verts, err := m.FaceVertices(f)
	if err != nil {
		return geometry.Vector3{}, err
	}
	var center geometry.Vector3
	for _, v := range verts {
		center = center.Add(m.positions[v])
	}
	return center.Mul(1.0 / float64(len(verts))), nil
}

// ComputeVertexNormals fills the per-vertex normal store with the
// normalized sum of incident face Newell normals. The Newell magnitude
// doubles as an area weight, so large faces dominate their corners.
func (m *Mesh) ComputeVertexNormals() error {
	m.EnsureNormals()
	for i := range m.normals {
		m.normals[i] = geometry.Vector3{}
	}
	for _, f := range m.LiveFaces() {
		n, err := m.FaceNormal(f)
		if err != nil {
			return fmt.Errorf("failed to compute vertex normals: %w", err)
		}
		verts, err := m.FaceVertices(f)
		if err != nil {
			return fmt.Errorf("failed to compute vertex normals: %w", err)
		}
		for _, v := range verts {
			m.normals[v] = m.normals[v].Add(n)
		}
	}
	for i := range m.normals {
		m.normals[i] = m.normals[i].Normalize()
	}
	return nil
}
