package selection

import "github.com/philipparndt/gomesh/pkg/halfedge"

// Grow expands the selection by one adjacency step in the current mode.
// Vertex mode unions in every vertex of any face touching a selected
// vertex. Edge mode adds each selected edge's next and its twin's next.
// Face mode adds every face reachable across a non-boundary edge of a
// selected face.
func Grow(m *halfedge.Mesh, s *Selection) {
	switch s.Mode {
	case ModeVertex:
		add := make(map[halfedge.VertexID]struct{})
		for _, f := range m.LiveFaces() {
			ring, err := m.FaceVertices(f)
			if err != nil {
				continue
			}
			touched := false
			for _, v := range ring {
				if s.HasVertex(v) {
					touched = true
					break
				}
			}
			if !touched {
				continue
			}
			for _, v := range ring {
				add[v] = struct{}{}
			}
		}
		for v := range add {
			s.Vertices[v] = struct{}{}
		}
	case ModeEdge:
		add := make(map[halfedge.HalfEdgeID]struct{})
		for h := range s.Edges {
			if int(h) < 0 || int(h) >= m.NumHalfEdges() {
				continue
			}
			record := m.HalfEdge(h)
			add[record.Next] = struct{}{}
			if record.Twin != halfedge.NoHalfEdge {
				add[m.HalfEdge(record.Twin).Next] = struct{}{}
			}
		}
		for h := range add {
			s.Edges[h] = struct{}{}
		}
	case ModeFace:
		add := make(map[halfedge.FaceID]struct{})
		for f := range s.Faces {
			for _, neighbor := range edgeNeighbors(m, f) {
				add[neighbor] = struct{}{}
			}
		}
		for f := range add {
			s.Faces[f] = struct{}{}
		}
	}
}

// Shrink erodes the selection by one step: an element stays selected only
// if every neighbor Grow would reach from it is already selected.
// Neighbors that do not exist (a boundary edge's missing twin, a face
// edge with no other side) do not count against the element.
func Shrink(m *halfedge.Mesh, s *Selection) {
	switch s.Mode {
	case ModeVertex:
		keep := make(map[halfedge.VertexID]struct{}, len(s.Vertices))
		for v := range s.Vertices {
			if allFaceCornersSelected(m, s, v) {
				keep[v] = struct{}{}
			}
		}
		s.Vertices = keep
	case ModeEdge:
		keep := make(map[halfedge.HalfEdgeID]struct{}, len(s.Edges))
		for h := range s.Edges {
			if int(h) < 0 || int(h) >= m.NumHalfEdges() {
				continue
			}
			record := m.HalfEdge(h)
			if !s.HasEdge(record.Next) {
				continue
			}
			if record.Twin != halfedge.NoHalfEdge && !s.HasEdge(m.HalfEdge(record.Twin).Next) {
				continue
			}
			keep[h] = struct{}{}
		}
		s.Edges = keep
	case ModeFace:
		keep := make(map[halfedge.FaceID]struct{}, len(s.Faces))
		for f := range s.Faces {
			eroded := false
			for _, neighbor := range edgeNeighbors(m, f) {
				if !s.HasFace(neighbor) {
					eroded = true
					break
				}
			}
			if !eroded {
				keep[f] = struct{}{}
			}
		}
		s.Faces = keep
	}
	s.resetActives()
}

// allFaceCornersSelected reports whether every corner of every live face
// touching v is selected, the erosion dual of vertex-mode Grow.
func allFaceCornersSelected(m *halfedge.Mesh, s *Selection, v halfedge.VertexID) bool {
	for _, f := range m.VertexFaces(v) {
		ring, err := m.FaceVertices(f)
		if err != nil {
			continue
		}
		for _, corner := range ring {
			if !s.HasVertex(corner) {
				return false
			}
		}
	}
	return true
}

// edgeNeighbors returns the live faces sharing a non-boundary edge with f.
func edgeNeighbors(m *halfedge.Mesh, f halfedge.FaceID) []halfedge.FaceID {
	ring, err := m.FaceLoop(f)
	if err != nil {
		return nil
	}
	var neighbors []halfedge.FaceID
	seen := make(map[halfedge.FaceID]bool)
	for _, h := range ring {
		twin := m.HalfEdge(h).Twin
		if twin == halfedge.NoHalfEdge {
			continue
		}
		other := m.HalfEdge(twin).Face
		if other == halfedge.NoFace || other == f || seen[other] {
			continue
		}
		if !m.Face(other).Alive() {
			continue
		}
		seen[other] = true
		neighbors = append(neighbors, other)
	}
	return neighbors
}
