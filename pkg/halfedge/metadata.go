package halfedge

import "github.com/philipparndt/gomesh/pkg/geometry"

// MetaKind discriminates the value held by a MetaValue.
type MetaKind int

// Metadata value kinds.
const (
	MetaNumber MetaKind = iota
	MetaString
	MetaBool
	MetaVector
)

// MetaValue is a tagged union for per-element metadata. Only the field
// matching Kind is meaningful.
type MetaValue struct {
	Kind   MetaKind
	Number float64
	String string
	Bool   bool
	Vector geometry.Vector3
}

// NumberMeta wraps a numeric metadata value.
func NumberMeta(v float64) MetaValue { return MetaValue{Kind: MetaNumber, Number: v} }

// StringMeta wraps a string metadata value.
func StringMeta(v string) MetaValue { return MetaValue{Kind: MetaString, String: v} }

// BoolMeta wraps a boolean metadata value.
func BoolMeta(v bool) MetaValue { return MetaValue{Kind: MetaBool, Bool: v} }

// VectorMeta wraps a vector metadata value.
func VectorMeta(v geometry.Vector3) MetaValue { return MetaValue{Kind: MetaVector, Vector: v} }

// SetVertexMeta attaches a keyed metadata value to a vertex.
func (m *Mesh) SetVertexMeta(v VertexID, key string, value MetaValue) {
	if m.vertexMeta == nil {
		m.vertexMeta = make(map[VertexID]map[string]MetaValue)
	}
	entry := m.vertexMeta[v]
	if entry == nil {
		entry = make(map[string]MetaValue)
		m.vertexMeta[v] = entry
	}
	entry[key] = value
}

// VertexMeta looks up a keyed metadata value on a vertex.
func (m *Mesh) VertexMeta(v VertexID, key string) (MetaValue, bool) {
	value, ok := m.vertexMeta[v][key]
	return value, ok
}

// SetEdgeMeta attaches a keyed metadata value to a half-edge.
func (m *Mesh) SetEdgeMeta(h HalfEdgeID, key string, value MetaValue) {
	if m.edgeMeta == nil {
		m.edgeMeta = make(map[HalfEdgeID]map[string]MetaValue)
	}
	entry := m.edgeMeta[h]
	if entry == nil {
		entry = make(map[string]MetaValue)
		m.edgeMeta[h] = entry
	}
	entry[key] = value
}

// EdgeMeta looks up a keyed metadata value on a half-edge.
func (m *Mesh) EdgeMeta(h HalfEdgeID, key string) (MetaValue, bool) {
	value, ok := m.edgeMeta[h][key]
	return value, ok
}

// SetFaceMeta attaches a keyed metadata value to a face.
func (m *Mesh) SetFaceMeta(f FaceID, key string, value MetaValue) {
	if m.faceMeta == nil {
		m.faceMeta = make(map[FaceID]map[string]MetaValue)
	}
	entry := m.faceMeta[f]
	if entry == nil {
		entry = make(map[string]MetaValue)
		m.faceMeta[f] = entry
	}
	entry[key] = value
}

// FaceMeta looks up a keyed metadata value on a face.
func (m *Mesh) FaceMeta(f FaceID, key string) (MetaValue, bool) {
	value, ok := m.faceMeta[f][key]
	return value, ok
}
