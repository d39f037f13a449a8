package halfedge

import (
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

func TestUVsLazyAndSynced(t *testing.T) {
	m, _ := unitQuad(t)

	if m.HasUVs() {
		t.Fatal("UVs present before EnsureUVs")
	}
	if got := m.UV(0); got != (geometry.Vector2{}) {
		t.Errorf("absent UV: expected zero, got %v", got)
	}

	m.EnsureUVs()
	if len(m.UVs()) != m.NumHalfEdges() {
		t.Errorf("UV store size failed: expected %d, got %d", m.NumHalfEdges(), len(m.UVs()))
	}
	m.SetUV(2, geometry.NewVector2(0.25, 0.75))
	if got := m.UV(2); got != geometry.NewVector2(0.25, 0.75) {
		t.Errorf("UV round trip failed: got %v", got)
	}

	// New corners stay covered after further construction.
	if _, err := m.MakeFace([]VertexID{0, 2, 3}); err != nil {
		t.Fatalf("MakeFace failed: %v", err)
	}
	if len(m.UVs()) != m.NumHalfEdges() {
		t.Errorf("UV store not synced: expected %d, got %d", m.NumHalfEdges(), len(m.UVs()))
	}
}

func TestMaterialsLazy(t *testing.T) {
	m, f := unitQuad(t)

	if m.HasMaterials() {
		t.Fatal("materials present before the first write")
	}
	if got := m.Material(f); got != 0 {
		t.Errorf("absent material: expected 0, got %d", got)
	}

	second, err := m.MakeFace([]VertexID{0, 2, 3})
	if err != nil {
		t.Fatalf("MakeFace failed: %v", err)
	}
	m.SetMaterial(second, 5)
	if got := m.Material(second); got != 5 {
		t.Errorf("material round trip failed: got %d", got)
	}
	if got := m.Material(f); got != 0 {
		t.Errorf("untouched face material: expected 0, got %d", got)
	}
}

func TestNormalsFollowVertices(t *testing.T) {
	m, _ := unitQuad(t)

	m.EnsureNormals()
	m.SetNormal(1, geometry.NewVector3(0, 0, 1))
	v := m.AddVertex(geometry.NewVector3(2, 2, 2))
	if len(m.Normals()) != m.NumVertices() {
		t.Errorf("normal store size failed: expected %d, got %d", m.NumVertices(), len(m.Normals()))
	}
	if got := m.Normal(v); got != (geometry.Vector3{}) {
		t.Errorf("fresh vertex normal: expected zero, got %v", got)
	}
	if got := m.Normal(1); got != geometry.NewVector3(0, 0, 1) {
		t.Errorf("normal round trip failed: got %v", got)
	}
}

func TestPositions(t *testing.T) {
	m, _ := unitQuad(t)

	m.SetPosition(3, geometry.NewVector3(0, 2, 0))
	if got := m.Position(3); got != geometry.NewVector3(0, 2, 0) {
		t.Errorf("position round trip failed: got %v", got)
	}
	if len(m.Positions()) != m.NumVertices() {
		t.Errorf("position store size failed: expected %d, got %d", m.NumVertices(), len(m.Positions()))
	}
}
