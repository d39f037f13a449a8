package halfedge

import (
	"errors"
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

func TestFaceLoopClosure(t *testing.T) {
	m, _, _ := quadStrip(t)

	// Walking next from the seed returns to it in exactly the derived
	// side count of steps, for every live face.
	for _, f := range m.LiveFaces() {
		sides, err := m.FaceSides(f)
		if err != nil {
			t.Fatalf("FaceSides failed: %v", err)
		}
		h := m.Face(f).Edge
		for i := 0; i < sides; i++ {
			h = m.HalfEdge(h).Next
		}
		if h != m.Face(f).Edge {
			t.Errorf("ring of face %d did not close in %d steps", f, sides)
		}
	}
}

func TestFaceLoopCorrupt(t *testing.T) {
	m, f := unitQuad(t)

	// Break the ring so it can never return to the seed.
	m.halfEdges[3].Next = 3
	_, err := m.FaceLoop(f)
	if !errors.Is(err, ErrCorruptTopology) {
		t.Errorf("FaceLoop failed: expected ErrCorruptTopology, got %v", err)
	}
	_, err = m.Prev(0)
	if !errors.Is(err, ErrCorruptTopology) {
		t.Errorf("Prev failed: expected ErrCorruptTopology, got %v", err)
	}
}

func TestFaceArityAccessors(t *testing.T) {
	m, f := unitQuad(t)

	quad, err := m.FaceQuad(f)
	if err != nil {
		t.Fatalf("FaceQuad failed: %v", err)
	}
	if !sameCycle(quad[:], []VertexID{0, 1, 2, 3}) {
		t.Errorf("FaceQuad failed: got %v", quad)
	}
	if _, err := m.FaceTriangle(f); !errors.Is(err, ErrArityMismatch) {
		t.Errorf("FaceTriangle on a quad: expected ErrArityMismatch, got %v", err)
	}

	tri, err := m.MakeFace([]VertexID{0, 1, 2})
	if err != nil {
		t.Fatalf("MakeFace failed: %v", err)
	}
	if _, err := m.FaceQuad(tri); !errors.Is(err, ErrArityMismatch) {
		t.Errorf("FaceQuad on a triangle: expected ErrArityMismatch, got %v", err)
	}
}

func TestPrevAndOrigin(t *testing.T) {
	m, _ := unitQuad(t)

	prev, err := m.Prev(0)
	if err != nil {
		t.Fatalf("Prev failed: %v", err)
	}
	if prev != 3 {
		t.Errorf("Prev failed: expected 3, got %d", prev)
	}
	// No twins on an isolated face, so Origin resolves through the ring.
	if got := m.Origin(2); got != 2 {
		t.Errorf("Origin failed: expected 2, got %d", got)
	}
	if got := m.Origin(NoHalfEdge); got != NoVertex {
		t.Errorf("Origin of NoHalfEdge: expected NoVertex, got %d", got)
	}
}

func TestRingStep(t *testing.T) {
	m, _, _ := quadStrip(t)

	// Half-edge 3 (vertex 3 to 0) steps across the shared edge into the
	// second quad, landing on half-edge 7 (vertex 4 to 1).
	if got := m.RingStep(3); got != 7 {
		t.Errorf("RingStep failed: expected 7, got %d", got)
	}
	// From there the opposite edge lies on the open right side.
	if got := m.RingStep(7); got != NoHalfEdge {
		t.Errorf("RingStep at the boundary: expected NoHalfEdge, got %d", got)
	}
	// The opposite edge inside the first quad is unlinked.
	if got := m.RingStep(1); got != NoHalfEdge {
		t.Errorf("RingStep across an unlinked edge: expected NoHalfEdge, got %d", got)
	}
}

func TestRingStepNonQuad(t *testing.T) {
	m := NewMesh()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(0, 1, 0))
	if _, err := m.MakeFace([]VertexID{0, 1, 2}); err != nil {
		t.Fatalf("MakeFace failed: %v", err)
	}
	if got := m.RingStep(0); got != NoHalfEdge {
		t.Errorf("RingStep on a triangle: expected NoHalfEdge, got %d", got)
	}
}

func TestBoundaryEdgesIsolatedQuad(t *testing.T) {
	m, f := unitQuad(t)

	boundary := m.BoundaryEdges([]FaceID{f})
	if len(boundary) != 4 {
		t.Errorf("BoundaryEdges failed: expected 4, got %d", len(boundary))
	}
}

func TestBoundaryEdgesSubset(t *testing.T) {
	m, fa, fb := quadStrip(t)

	// The shared edge pair drops out when both faces are in the subset.
	if got := len(m.BoundaryEdges([]FaceID{fa, fb})); got != 6 {
		t.Errorf("BoundaryEdges of both quads: expected 6, got %d", got)
	}
	// With one face in the subset, its side of the shared edge counts.
	if got := len(m.BoundaryEdges([]FaceID{fa})); got != 4 {
		t.Errorf("BoundaryEdges of one quad: expected 4, got %d", got)
	}
}

func TestBoundaryLoopsIsolatedQuad(t *testing.T) {
	m, f := unitQuad(t)

	loops, err := m.BoundaryLoops([]FaceID{f})
	if err != nil {
		t.Fatalf("BoundaryLoops failed: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("BoundaryLoops failed: expected 1 loop, got %d", len(loops))
	}
	if !sameCycle(loops[0], []VertexID{0, 1, 2, 3}) {
		t.Errorf("BoundaryLoops failed: got %v", loops[0])
	}
}

func TestBoundaryLoopsStrip(t *testing.T) {
	m, fa, fb := quadStrip(t)

	loops, err := m.BoundaryLoops([]FaceID{fa, fb})
	if err != nil {
		t.Fatalf("BoundaryLoops failed: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("BoundaryLoops failed: expected 1 loop, got %d", len(loops))
	}
	if !sameCycle(loops[0], []VertexID{0, 1, 2, 5, 4, 3}) {
		t.Errorf("BoundaryLoops failed: got %v", loops[0])
	}
}

func TestVertexFaces(t *testing.T) {
	m, fa, fb := quadStrip(t)

	shared := m.VertexFaces(1)
	if len(shared) != 2 || shared[0] != fa || shared[1] != fb {
		t.Errorf("VertexFaces of the shared vertex: expected [%d %d], got %v", fa, fb, shared)
	}
	corner := m.VertexFaces(0)
	if len(corner) != 1 || corner[0] != fa {
		t.Errorf("VertexFaces of a corner: expected [%d], got %v", fa, corner)
	}
}

func TestVertexNeighbors(t *testing.T) {
	m, _, _ := quadStrip(t)

	neighbors := m.VertexNeighbors(1)
	if len(neighbors) != 3 {
		t.Fatalf("VertexNeighbors failed: expected 3, got %v", neighbors)
	}
	want := map[VertexID]bool{0: true, 2: true, 4: true}
	for _, v := range neighbors {
		if !want[v] {
			t.Errorf("VertexNeighbors failed: unexpected neighbor %d", v)
		}
	}
}

func TestFacesAroundFace(t *testing.T) {
	m, fa, fb := quadStrip(t)

	around, err := m.FacesAroundFace(fa)
	if err != nil {
		t.Fatalf("FacesAroundFace failed: %v", err)
	}
	if len(around) != 1 || around[0] != fb {
		t.Errorf("FacesAroundFace failed: expected [%d], got %v", fb, around)
	}

	// Deleting the neighbor leaves no live face across any edge.
	if _, err := m.DeleteFaces([]FaceID{fb}); err != nil {
		t.Fatalf("DeleteFaces failed: %v", err)
	}
	around, err = m.FacesAroundFace(fa)
	if err != nil {
		t.Fatalf("FacesAroundFace failed: %v", err)
	}
	if len(around) != 0 {
		t.Errorf("FacesAroundFace after delete: expected none, got %v", around)
	}
}
