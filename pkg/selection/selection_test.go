package selection

import (
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// grid builds a 3 by 3 quad grid with interior edges linked. Vertex ids
// run row by row from the bottom left, face ids likewise:
//
//	12 --- 13 --- 14 --- 15
//	|   6  |   7  |   8  |
//	 8 ---- 9 --- 10 --- 11
//	|   3  |   4  |   5  |
//	 4 ---- 5 ---- 6 ---- 7
//	|   0  |   1  |   2  |
//	 0 ---- 1 ---- 2 ---- 3
func grid(t *testing.T) *halfedge.Mesh {
	t.Helper()
	m := halfedge.NewMesh()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m.AddVertex(geometry.NewVector3(float64(x), float64(y), 0))
		}
	}
	cache := halfedge.NewEdgeCache(m)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			v := halfedge.VertexID(y*4 + x)
			f, err := m.MakeFace([]halfedge.VertexID{v, v + 1, v + 5, v + 4})
			if err != nil {
				t.Fatalf("MakeFace failed: %v", err)
			}
			if err := cache.AddFace(f); err != nil {
				t.Fatalf("AddFace failed: %v", err)
			}
		}
	}
	return m
}

func TestSelectionModes(t *testing.T) {
	s := New(ModeObject)
	if s.Count() != 0 {
		t.Errorf("empty object count failed: got %d", s.Count())
	}
	s.Object = true
	if s.Count() != 1 {
		t.Errorf("object count failed: got %d", s.Count())
	}

	s = New(ModeVertex)
	s.AddVertex(3)
	if s.Count() != 1 || !s.HasVertex(3) {
		t.Error("vertex selection failed")
	}
	if s.ActiveVertex != 3 {
		t.Errorf("ActiveVertex failed: got %d", s.ActiveVertex)
	}

	s.Clear()
	if s.Count() != 0 || s.ActiveVertex != halfedge.NoVertex {
		t.Error("Clear failed")
	}
}

func TestConvertFaceToEdge(t *testing.T) {
	m := grid(t)
	s := New(ModeFace)
	s.AddFace(4)

	Convert(m, s, ModeEdge)
	if s.Mode != ModeEdge {
		t.Errorf("mode after convert: got %d", s.Mode)
	}
	if len(s.Edges) != 4 {
		t.Fatalf("boundary edge count failed: expected 4, got %d", len(s.Edges))
	}
	// The center face ring is half-edges 16 to 19.
	for h := halfedge.HalfEdgeID(16); h <= 19; h++ {
		if !s.HasEdge(h) {
			t.Errorf("edge %d missing from the boundary", h)
		}
	}
}

func TestConvertEdgeToVertex(t *testing.T) {
	m := grid(t)
	s := New(ModeEdge)
	s.AddEdge(16)

	Convert(m, s, ModeVertex)
	if len(s.Vertices) != 2 || !s.HasVertex(5) || !s.HasVertex(6) {
		t.Errorf("endpoint conversion failed: got %v", s.Vertices)
	}
}

func TestConvertVertexToFace(t *testing.T) {
	m := grid(t)
	s := New(ModeVertex)
	for _, v := range []halfedge.VertexID{5, 6, 10, 9} {
		s.AddVertex(v)
	}

	// Only the face with every corner selected converts.
	Convert(m, s, ModeFace)
	if len(s.Faces) != 1 || !s.HasFace(4) {
		t.Errorf("every-corner rule failed: got %v", s.Faces)
	}
}

func TestConvertVertexToFaceAll(t *testing.T) {
	m := grid(t)
	s := New(ModeVertex)
	for v := halfedge.VertexID(0); v < 16; v++ {
		s.AddVertex(v)
	}

	Convert(m, s, ModeFace)
	if len(s.Faces) != 9 {
		t.Errorf("full conversion failed: expected 9 faces, got %d", len(s.Faces))
	}
}
