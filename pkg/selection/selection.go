// Package selection implements mode-scoped element selections over a
// half-edge mesh: one id set per element kind with grow/shrink erosion,
// kind conversions and quad loop/ring walking.
package selection

import "github.com/philipparndt/gomesh/pkg/halfedge"

// Mode defines what kind of element a selection addresses.
type Mode int

// Selection modes.
const (
	ModeObject Mode = iota
	ModeVertex
	ModeEdge
	ModeFace
)

// Selection tracks selected elements of a mesh: disjoint id sets per
// element kind plus an optional active element per kind. Object is set
// when the mesh as a whole is selected.
type Selection struct {
	Mode     Mode
	Object   bool
	Vertices map[halfedge.VertexID]struct{}
	Edges    map[halfedge.HalfEdgeID]struct{}
	Faces    map[halfedge.FaceID]struct{}

	ActiveVertex halfedge.VertexID
	ActiveEdge   halfedge.HalfEdgeID
	ActiveFace   halfedge.FaceID
}

// New creates an empty selection in the given mode.
func New(mode Mode) *Selection {
	return &Selection{
		Mode:         mode,
		Vertices:     make(map[halfedge.VertexID]struct{}),
		Edges:        make(map[halfedge.HalfEdgeID]struct{}),
		Faces:        make(map[halfedge.FaceID]struct{}),
		ActiveVertex: halfedge.NoVertex,
		ActiveEdge:   halfedge.NoHalfEdge,
		ActiveFace:   halfedge.NoFace,
	}
}

// Clear removes all selected elements and active markers.
func (s *Selection) Clear() {
	s.Object = false
	clear(s.Vertices)
	clear(s.Edges)
	clear(s.Faces)
	s.ActiveVertex = halfedge.NoVertex
	s.ActiveEdge = halfedge.NoHalfEdge
	s.ActiveFace = halfedge.NoFace
}

// Count returns the number of selected elements in the current mode.
func (s *Selection) Count() int {
	switch s.Mode {
	case ModeObject:
		if s.Object {
			return 1
		}
		return 0
	case ModeVertex:
		return len(s.Vertices)
	case ModeEdge:
		return len(s.Edges)
	case ModeFace:
		return len(s.Faces)
	}
	return 0
}

// AddVertex selects a vertex and makes it the active vertex.
func (s *Selection) AddVertex(v halfedge.VertexID) {
	s.Vertices[v] = struct{}{}
	s.ActiveVertex = v
}

// AddEdge selects a half-edge and makes it the active edge.
func (s *Selection) AddEdge(h halfedge.HalfEdgeID) {
	s.Edges[h] = struct{}{}
	s.ActiveEdge = h
}

// AddFace selects a face and makes it the active face.
func (s *Selection) AddFace(f halfedge.FaceID) {
	s.Faces[f] = struct{}{}
	s.ActiveFace = f
}

// HasVertex reports whether a vertex is selected.
func (s *Selection) HasVertex(v halfedge.VertexID) bool {
	_, ok := s.Vertices[v]
	return ok
}

// HasEdge reports whether a half-edge is selected.
func (s *Selection) HasEdge(h halfedge.HalfEdgeID) bool {
	_, ok := s.Edges[h]
	return ok
}

// HasFace reports whether a face is selected.
func (s *Selection) HasFace(f halfedge.FaceID) bool {
	_, ok := s.Faces[f]
	return ok
}

// resetActives drops active markers that are no longer selected.
func (s *Selection) resetActives() {
	if s.ActiveVertex != halfedge.NoVertex && !s.HasVertex(s.ActiveVertex) {
		s.ActiveVertex = halfedge.NoVertex
	}
	if s.ActiveEdge != halfedge.NoHalfEdge && !s.HasEdge(s.ActiveEdge) {
		s.ActiveEdge = halfedge.NoHalfEdge
	}
	if s.ActiveFace != halfedge.NoFace && !s.HasFace(s.ActiveFace) {
		s.ActiveFace = halfedge.NoFace
	}
}
