package halfedge

import "fmt"

// MergeVertices merges vertex b into vertex a: every half-edge pointing at
// b is repointed at a, a's outgoing handle is repaired from b's if unset,
// and b's handle is cleared, leaving b isolated. Faces whose ring now
// repeats a vertex on consecutive corners are deleted. Returns the
// surviving and the retired vertex id.
//
// MergeVertices(a, a) is a no-op and returns {a, a}.
func (m *Mesh) MergeVertices(a, b VertexID) (VertexID, VertexID, error) {
	if !m.validVertex(a) {
		return NoVertex, NoVertex, fmt.Errorf("failed to merge vertices: %w: vertex %d", ErrInvalidHandle, a)
	}
	if !m.validVertex(b) {
		return NoVertex, NoVertex, fmt.Errorf("failed to merge vertices: %w: vertex %d", ErrInvalidHandle, b)
	}
	if a == b {
		return a, a, nil
	}

	for i := range m.halfEdges {
		if m.halfEdges[i].Vertex == b {
			m.halfEdges[i].Vertex = a
		}
	}
	if m.vertices[a].Edge == NoHalfEdge {
		m.vertices[a].Edge = m.vertices[b].Edge
	}
	m.vertices[b].Edge = NoHalfEdge

	degenerate, err := m.degenerateFaces()
	if err != nil {
		return NoVertex, NoVertex, fmt.Errorf("failed to merge vertices: %w", err)
	}
	if len(degenerate) > 0 {
		if _, err := m.DeleteFaces(degenerate); err != nil {
			return NoVertex, NoVertex, fmt.Errorf("failed to merge vertices: %w", err)
		}
		Logger().Debug("merge dropped degenerate faces",
			"kept", int(a), "retired", int(b), "faces", len(degenerate))
	}
	return a, b, nil
}

// degenerateFaces returns every live face whose ring holds the same vertex
// on two consecutive corners.
func (m *Mesh) degenerateFaces() ([]FaceID, error) {
	var degenerate []FaceID
	for i := range m.faces {
		f := FaceID(i)
		if !m.faces[i].Alive() {
			continue
		}
		ring, err := m.FaceLoop(f)
		if err != nil {
			return nil, err
		}
		for j, h := range ring {
			next := ring[(j+1)%len(ring)]
			if m.halfEdges[h].Vertex == m.halfEdges[next].Vertex {
				degenerate = append(degenerate, f)
				break
			}
		}
	}
	return degenerate, nil
}

// CollapseTarget selects which endpoint survives an edge collapse.
type CollapseTarget int

// Collapse targets.
const (
	// CollapseOrigin keeps the origin vertex in place.
	CollapseOrigin CollapseTarget = iota
	// CollapseDest keeps the destination vertex in place.
	CollapseDest
	// CollapseMidpoint keeps the origin vertex, moved to the edge midpoint.
	CollapseMidpoint
)

// CollapseEdge collapses the edge held by a half-edge into a single
// vertex, delegating the topology rewrite to MergeVertices. Returns the
// surviving and the retired vertex id.
func (m *Mesh) CollapseEdge(h HalfEdgeID, target CollapseTarget) (VertexID, VertexID, error) {
	if !m.validHalfEdge(h) {
		return NoVertex, NoVertex, fmt.Errorf("failed to collapse edge: %w: half-edge %d", ErrInvalidHandle, h)
	}
	dest := m.halfEdges[h].Vertex
	origin := m.Origin(h)
	if origin == NoVertex {
		return NoVertex, NoVertex, fmt.Errorf("failed to collapse edge: %w: ring of half-edge %d does not close", ErrCorruptTopology, h)
	}

	switch target {
	case CollapseOrigin:
		return m.MergeVertices(origin, dest)
	case CollapseDest:
		return m.MergeVertices(dest, origin)
	case CollapseMidpoint:
		m.positions[origin] = m.positions[origin].Lerp(m.positions[dest], 0.5)
		return m.MergeVertices(origin, dest)
	default:
		return NoVertex, NoVertex, fmt.Errorf("failed to collapse edge: unknown target %d", target)
	}
}
