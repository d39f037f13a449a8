package selection

import "github.com/philipparndt/gomesh/pkg/halfedge"

// FacesToBoundaryEdges returns the half-edges bounding a face set: edges
// of set faces whose twin is absent or owned by a face outside the set.
func FacesToBoundaryEdges(m *halfedge.Mesh, faces map[halfedge.FaceID]struct{}) map[halfedge.HalfEdgeID]struct{} {
	subset := make([]halfedge.FaceID, 0, len(faces))
	for f := range faces {
		subset = append(subset, f)
	}
	edges := make(map[halfedge.HalfEdgeID]struct{})
	for _, h := range m.BoundaryEdges(subset) {
		edges[h] = struct{}{}
	}
	return edges
}

// EdgesToVertices returns both endpoints of every half-edge in the set.
func EdgesToVertices(m *halfedge.Mesh, edges map[halfedge.HalfEdgeID]struct{}) map[halfedge.VertexID]struct{} {
	verts := make(map[halfedge.VertexID]struct{})
	for h := range edges {
		if int(h) < 0 || int(h) >= m.NumHalfEdges() {
			continue
		}
		verts[m.HalfEdge(h).Vertex] = struct{}{}
		if origin := m.Origin(h); origin != halfedge.NoVertex {
			verts[origin] = struct{}{}
		}
	}
	return verts
}

// VerticesToFaces returns every live face all of whose ring corners are in
// the vertex set. A face with one unselected corner stays out.
func VerticesToFaces(m *halfedge.Mesh, verts map[halfedge.VertexID]struct{}) map[halfedge.FaceID]struct{} {
	faces := make(map[halfedge.FaceID]struct{})
	for _, f := range m.LiveFaces() {
		ring, err := m.FaceVertices(f)
		if err != nil {
			continue
		}
		all := true
		for _, v := range ring {
			if _, ok := verts[v]; !ok {
				all = false
				break
			}
		}
		if all {
			faces[f] = struct{}{}
		}
	}
	return faces
}

// Convert re-scopes a selection to a different mode. Face to edge takes
// the boundary of the face set, edge to vertex takes edge endpoints, and
// vertex to face applies the every-corner rule. Any other mode change
// keeps the existing sets untouched.
func Convert(m *halfedge.Mesh, s *Selection, target Mode) {
	switch {
	case s.Mode == ModeFace && target == ModeEdge:
		s.Edges = FacesToBoundaryEdges(m, s.Faces)
	case s.Mode == ModeEdge && target == ModeVertex:
		s.Vertices = EdgesToVertices(m, s.Edges)
	case s.Mode == ModeVertex && target == ModeFace:
		s.Faces = VerticesToFaces(m, s.Vertices)
	}
	s.Mode = target
	s.resetActives()
}
