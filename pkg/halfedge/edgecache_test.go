package halfedge

import (
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

func TestEdgeCacheLinksSharedEdge(t *testing.T) {
	m, _, _ := quadStrip(t)

	// The shared span between vertices 1 and 4 is the only linked pair.
	if m.HalfEdge(1).Twin != 7 || m.HalfEdge(7).Twin != 1 {
		t.Errorf("shared edge not linked: twins are %d and %d", m.HalfEdge(1).Twin, m.HalfEdge(7).Twin)
	}
	linked := 0
	for _, he := range m.HalfEdges() {
		if he.Twin != NoHalfEdge {
			linked++
		}
	}
	if linked != 2 {
		t.Errorf("linked half-edges failed: expected 2, got %d", linked)
	}
	checkTwinSymmetry(t, m)
}

func TestEdgeCacheThirdFaceStaysUnlinked(t *testing.T) {
	m := NewMesh()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(2, 0, 0))
	m.AddVertex(geometry.NewVector3(0, 1, 0))
	m.AddVertex(geometry.NewVector3(1, 1, 0))
	m.AddVertex(geometry.NewVector3(2, 1, 0))
	m.AddVertex(geometry.NewVector3(1, 0.5, 1))

	cache := NewEdgeCache(m)
	for _, verts := range [][]VertexID{{0, 1, 4, 3}, {1, 2, 5, 4}, {4, 1, 6}} {
		f, err := m.MakeFace(verts)
		if err != nil {
			t.Fatalf("MakeFace failed: %v", err)
		}
		if err := cache.AddFace(f); err != nil {
			t.Fatalf("AddFace failed: %v", err)
		}
	}

	// The first two faces took the span between 1 and 4; the triangle's
	// side along it stays a boundary instead of corrupting the pair.
	if m.HalfEdge(1).Twin != 7 || m.HalfEdge(7).Twin != 1 {
		t.Error("existing pair was disturbed by a third face")
	}
	if m.HalfEdge(8).Twin != NoHalfEdge {
		t.Errorf("third face edge linked: twin %d", m.HalfEdge(8).Twin)
	}
}

func TestSeamEdgeCacheLinksMatchingUVs(t *testing.T) {
	m := NewMesh()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(2, 0, 0))
	m.AddVertex(geometry.NewVector3(0, 1, 0))
	m.AddVertex(geometry.NewVector3(1, 1, 0))
	m.AddVertex(geometry.NewVector3(2, 1, 0))

	fa, err := m.MakeFace([]VertexID{0, 1, 4, 3})
	if err != nil {
		t.Fatalf("MakeFace failed: %v", err)
	}
	fb, err := m.MakeFace([]VertexID{1, 2, 5, 4})
	if err != nil {
		t.Fatalf("MakeFace failed: %v", err)
	}
	m.EnsureUVs()
	// Corner UVs equal the planar positions, so both faces agree along
	// the shared span.
	for i := 0; i < m.NumHalfEdges(); i++ {
		h := HalfEdgeID(i)
		p := m.Position(m.HalfEdge(h).Vertex)
		m.SetUV(h, geometry.NewVector2(p.X, p.Y))
	}

	cache := NewSeamEdgeCache(m)
	if err := cache.AddFace(fa); err != nil {
		t.Fatalf("AddFace failed: %v", err)
	}
	if err := cache.AddFace(fb); err != nil {
		t.Fatalf("AddFace failed: %v", err)
	}
	if m.HalfEdge(1).Twin != 7 {
		t.Errorf("matching UVs not linked: twin %d", m.HalfEdge(1).Twin)
	}
}

func TestSeamEdgeCacheKeepsSeamOpen(t *testing.T) {
	m := NewMesh()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(2, 0, 0))
	m.AddVertex(geometry.NewVector3(0, 1, 0))
	m.AddVertex(geometry.NewVector3(1, 1, 0))
	m.AddVertex(geometry.NewVector3(2, 1, 0))

	fa, err := m.MakeFace([]VertexID{0, 1, 4, 3})
	if err != nil {
		t.Fatalf("MakeFace failed: %v", err)
	}
	fb, err := m.MakeFace([]VertexID{1, 2, 5, 4})
	if err != nil {
		t.Fatalf("MakeFace failed: %v", err)
	}
	m.EnsureUVs()
	// The second face lives in its own UV island shifted by 2, so the
	// corner UVs disagree across the shared span.
	for i := 0; i < m.NumHalfEdges(); i++ {
		h := HalfEdgeID(i)
		p := m.Position(m.HalfEdge(h).Vertex)
		shift := 0.0
		if m.HalfEdge(h).Face == fb {
			shift = 2
		}
		m.SetUV(h, geometry.NewVector2(p.X+shift, p.Y))
	}

	cache := NewSeamEdgeCache(m)
	if err := cache.AddFace(fa); err != nil {
		t.Fatalf("AddFace failed: %v", err)
	}
	if err := cache.AddFace(fb); err != nil {
		t.Fatalf("AddFace failed: %v", err)
	}
	if m.HalfEdge(1).Twin != NoHalfEdge || m.HalfEdge(7).Twin != NoHalfEdge {
		t.Error("seam edge was linked despite disagreeing UVs")
	}
}
