package halfedge

import "github.com/philipparndt/gomesh/pkg/geometry"

// Positions returns the per-vertex position store. The slice aliases the
// mesh storage.
func (m *Mesh) Positions() []geometry.Vector3 { return m.positions }

// Position returns the position of a vertex.
func (m *Mesh) Position(v VertexID) geometry.Vector3 { return m.positions[v] }

// SetPosition updates the position of a vertex.
func (m *Mesh) SetPosition(v VertexID, p geometry.Vector3) { m.positions[v] = p }

// HasNormals reports whether per-vertex normals have been allocated.
func (m *Mesh) HasNormals() bool { return m.normals != nil }

// EnsureNormals allocates the per-vertex normal store and size-synchronizes
// it with the vertex container. New entries are zero.
func (m *Mesh) EnsureNormals() {
	if m.normals == nil {
		m.normals = make([]geometry.Vector3, len(m.vertices))
		return
	}
	for len(m.normals) < len(m.vertices) {
		m.normals = append(m.normals, geometry.Vector3{})
	}
}

// Normals returns the per-vertex normal store, or nil if never allocated.
func (m *Mesh) Normals() []geometry.Vector3 { return m.normals }

// Normal returns the normal of a vertex, or the zero vector if normals
// were never allocated.
func (m *Mesh) Normal(v VertexID) geometry.Vector3 {
	if m.normals == nil || int(v) >= len(m.normals) {
		return geometry.Vector3{}
	}
	return m.normals[v]
}

// SetNormal updates the normal of a vertex, allocating the store first if
// needed.
func (m *Mesh) SetNormal(v VertexID, n geometry.Vector3) {
	m.EnsureNormals()
	m.normals[v] = n
}

// HasUVs reports whether per-corner UVs have been allocated.
func (m *Mesh) HasUVs() bool { return m.uvs != nil }

// EnsureUVs allocates the per-corner UV store and size-synchronizes it
// with the half-edge container. New entries are zero.
func (m *Mesh) EnsureUVs() {
	if m.uvs == nil {
		m.uvs = make([]geometry.Vector2, len(m.halfEdges))
		return
	}
	for len(m.uvs) < len(m.halfEdges) {
		m.uvs = append(m.uvs, geometry.Vector2{})
	}
}

// UVs returns the per-corner UV store, or nil if never allocated.
func (m *Mesh) UVs() []geometry.Vector2 { return m.uvs }

// UV returns the corner UV owned by a half-edge (the corner at its
// destination vertex within its face), or the zero vector if UVs were
// never allocated.
func (m *Mesh) UV(h HalfEdgeID) geometry.Vector2 {
	if m.uvs == nil || int(h) >= len(m.uvs) {
		return geometry.Vector2{}
	}
	return m.uvs[h]
}

// SetUV updates the corner UV owned by a half-edge, allocating and
// size-synchronizing the store first if needed.
func (m *Mesh) SetUV(h HalfEdgeID, uv geometry.Vector2) {
	m.EnsureUVs()
	m.uvs[h] = uv
}

// HasMaterials reports whether per-face material indices have been
// allocated.
func (m *Mesh) HasMaterials() bool { return m.materials != nil }

// Materials returns the per-face material store, or nil if never
// allocated.
func (m *Mesh) Materials() []int { return m.materials }

// Material returns the material index of a face, or 0 if materials were
// never allocated.
func (m *Mesh) Material(f FaceID) int {
	if m.materials == nil || int(f) >= len(m.materials) {
		return 0
	}
	return m.materials[f]
}

// SetMaterial updates the material index of a face, allocating and
// size-synchronizing the store first if needed.
func (m *Mesh) SetMaterial(f FaceID, material int) {
	m.ensureMaterials()
	m.materials[f] = material
}

func (m *Mesh) ensureMaterials() {
	if m.materials == nil {
		m.materials = make([]int, len(m.faces))
		return
	}
	for len(m.materials) < len(m.faces) {
		m.materials = append(m.materials, 0)
	}
}

// syncCorners size-synchronizes corner attributes after half-edge
// allocation. Stores that were never allocated stay nil.
func (m *Mesh) syncCorners() {
	if m.uvs != nil {
		m.EnsureUVs()
	}
}

// syncFaceAttrs size-synchronizes face attributes after face allocation.
func (m *Mesh) syncFaceAttrs() {
	if m.materials != nil {
		m.ensureMaterials()
	}
}
