package halfedge

import "fmt"

// Origin returns the vertex a half-edge originates at. It prefers the twin
// shortcut and falls back to walking the ring when the edge is on a
// boundary. Returns NoVertex if the ring never closes.
func (m *Mesh) Origin(h HalfEdgeID) VertexID {
	if !m.validHalfEdge(h) {
		return NoVertex
	}
	if twin := m.halfEdges[h].Twin; twin != NoHalfEdge {
		return m.halfEdges[twin].Vertex
	}
	prev, err := m.Prev(h)
	if err != nil {
		return NoVertex
	}
	return m.halfEdges[prev].Vertex
}

// Prev walks the ring to find the half-edge whose Next is h.
func (m *Mesh) Prev(h HalfEdgeID) (HalfEdgeID, error) {
	if !m.validHalfEdge(h) {
		return NoHalfEdge, fmt.Errorf("%w: half-edge %d", ErrInvalidHandle, h)
	}
	current := h
	for steps := 0; steps <= len(m.halfEdges); steps++ {
		next := m.halfEdges[current].Next
		if next == h {
			return current, nil
		}
		current = next
	}
	return NoHalfEdge, fmt.Errorf("%w: ring of half-edge %d does not close", ErrCorruptTopology, h)
}

// FaceLoop returns the ordered half-edge ring of a face, starting at its
// seed edge. The walk is bounded by the total half-edge count; exceeding
// it reports corrupt topology instead of looping forever.
func (m *Mesh) FaceLoop(f FaceID) ([]HalfEdgeID, error) {
	if !m.liveFace(f) {
		return nil, fmt.Errorf("%w: face %d", ErrInvalidHandle, f)
	}
	seed := m.faces[f].Edge
	ring := []HalfEdgeID{seed}
	current := m.halfEdges[seed].Next
	for current != seed {
		if len(ring) > len(m.halfEdges) {
			return nil, fmt.Errorf("%w: ring of face %d does not close", ErrCorruptTopology, f)
		}
		ring = append(ring, current)
		current = m.halfEdges[current].Next
	}
	return ring, nil
}

// FaceSides returns the derived side count of a face.
func (m *Mesh) FaceSides(f FaceID) (int, error) {
	ring, err := m.FaceLoop(f)
	if err != nil {
		return 0, err
	}
	return len(ring), nil
}

// FaceVertices returns the ordered vertex cycle of a face, as the
// destination of each ring half-edge starting at the seed.
func (m *Mesh) FaceVertices(f FaceID) ([]VertexID, error) {
	ring, err := m.FaceLoop(f)
	if err != nil {
		return nil, err
	}
	verts := make([]VertexID, len(ring))
	for i, h := range ring {
		verts[i] = m.halfEdges[h].Vertex
	}
	return verts, nil
}

// FaceTriangle returns the vertex cycle of a face that must be a triangle.
func (m *Mesh) FaceTriangle(f FaceID) ([3]VertexID, error) {
	verts, err := m.FaceVertices(f)
	if err != nil {
		return [3]VertexID{}, err
	}
	if len(verts) != 3 {
		return [3]VertexID{}, fmt.Errorf("%w: face %d has %d sides, want 3", ErrArityMismatch, f, len(verts))
	}
	return [3]VertexID{verts[0], verts[1], verts[2]}, nil
}

// FaceQuad returns the vertex cycle of a face that must be a quad.
func (m *Mesh) FaceQuad(f FaceID) ([4]VertexID, error) {
	verts, err := m.FaceVertices(f)
	if err != nil {
		return [4]VertexID{}, err
	}
	if len(verts) != 4 {
		return [4]VertexID{}, fmt.Errorf("%w: face %d has %d sides, want 4", ErrArityMismatch, f, len(verts))
	}
	return [4]VertexID{verts[0], verts[1], verts[2], verts[3]}, nil
}

// RingStep returns the twin of the ring-opposite edge on a quad face, the
// primitive for walking edge loops and rings on quad-dominant meshes.
// Returns NoHalfEdge if the half-edge does not sit on a live quad or the
// opposite edge is a boundary.
func (m *Mesh) RingStep(h HalfEdgeID) HalfEdgeID {
	if !m.validHalfEdge(h) {
		return NoHalfEdge
	}
	if !m.liveFace(m.halfEdges[h].Face) {
		return NoHalfEdge
	}
	n1 := m.halfEdges[h].Next
	n2 := m.halfEdges[n1].Next
	n3 := m.halfEdges[n2].Next
	if n1 == h || n2 == h || m.halfEdges[n3].Next != h {
		return NoHalfEdge
	}
	return m.halfEdges[n2].Twin
}

// BoundaryEdges returns, for a face subset, every half-edge owned by a
// subset face whose twin is absent or owned by a face outside the subset.
func (m *Mesh) BoundaryEdges(faces []FaceID) []HalfEdgeID {
	inSubset := make(map[FaceID]bool, len(faces))
	for _, f := range faces {
		if m.liveFace(f) {
			inSubset[f] = true
		}
	}
	var boundary []HalfEdgeID
	for i := range m.halfEdges {
		h := HalfEdgeID(i)
		if !inSubset[m.halfEdges[h].Face] {
			continue
		}
		twin := m.halfEdges[h].Twin
		if twin == NoHalfEdge || !inSubset[m.halfEdges[twin].Face] {
			boundary = append(boundary, h)
		}
	}
	return boundary
}

// BoundaryEdgeLoops groups the boundary half-edges of a face subset into
// ordered loops, one per connected boundary component. Each loop advances
// from a boundary edge to the next boundary edge originating at its
// destination, rotating through subset faces around the shared vertex so
// that loops touching at a single vertex stay separate.
func (m *Mesh) BoundaryEdgeLoops(faces []FaceID) ([][]HalfEdgeID, error) {
	boundary := m.BoundaryEdges(faces)
	inBoundary := make(map[HalfEdgeID]bool, len(boundary))
	for _, h := range boundary {
		inBoundary[h] = true
	}

	visited := make(map[HalfEdgeID]bool, len(boundary))
	var loops [][]HalfEdgeID
	for _, start := range boundary {
		if visited[start] {
			continue
		}
		var loop []HalfEdgeID
		current := start
		for {
			if visited[current] {
				return nil, fmt.Errorf("%w: boundary walk re-entered half-edge %d", ErrCorruptTopology, current)
			}
			visited[current] = true
			loop = append(loop, current)
			next, err := m.nextBoundary(current, inBoundary)
			if err != nil {
				return nil, err
			}
			if next == start {
				break
			}
			current = next
		}
		loops = append(loops, loop)
	}
	return loops, nil
}

// nextBoundary advances from one subset-boundary half-edge to the next,
// rotating around the destination vertex through subset faces.
func (m *Mesh) nextBoundary(h HalfEdgeID, inBoundary map[HalfEdgeID]bool) (HalfEdgeID, error) {
	current := m.halfEdges[h].Next
	for steps := 0; steps <= len(m.halfEdges); steps++ {
		if inBoundary[current] {
			return current, nil
		}
		twin := m.halfEdges[current].Twin
		if twin == NoHalfEdge {
			break
		}
		current = m.halfEdges[twin].Next
	}
	return NoHalfEdge, fmt.Errorf("%w: no boundary continuation after half-edge %d", ErrCorruptTopology, h)
}

// BoundaryLoops returns the ordered vertex loops bounding a face subset,
// one per connected boundary component. Each loop lists the origin of
// every boundary half-edge in walk order.
func (m *Mesh) BoundaryLoops(faces []FaceID) ([][]VertexID, error) {
	edgeLoops, err := m.BoundaryEdgeLoops(faces)
	if err != nil {
		return nil, err
	}
	loops := make([][]VertexID, len(edgeLoops))
	for i, edgeLoop := range edgeLoops {
		loop := make([]VertexID, len(edgeLoop))
		for j, h := range edgeLoop {
			loop[j] = m.Origin(h)
		}
		loops[i] = loop
	}
	return loops, nil
}

// VertexFaces returns the live faces whose ring references the vertex.
func (m *Mesh) VertexFaces(v VertexID) []FaceID {
	var faces []FaceID
	for i := range m.faces {
		f := FaceID(i)
		if !m.faces[i].Alive() {
			continue
		}
		verts, err := m.FaceVertices(f)
		if err != nil {
			continue
		}
		for _, fv := range verts {
			if fv == v {
				faces = append(faces, f)
				break
			}
		}
	}
	return faces
}

// VertexNeighbors returns the vertices connected to v by an edge of any
// live face, in no particular order.
func (m *Mesh) VertexNeighbors(v VertexID) []VertexID {
	seen := make(map[VertexID]bool)
	var neighbors []VertexID
	for i := range m.faces {
		if !m.faces[i].Alive() {
			continue
		}
		verts, err := m.FaceVertices(FaceID(i))
		if err != nil {
			continue
		}
		for j, fv := range verts {
			next := verts[(j+1)%len(verts)]
			var other VertexID
			switch v {
			case fv:
				other = next
			case next:
				other = fv
			default:
				continue
			}
			if !seen[other] {
				seen[other] = true
				neighbors = append(neighbors, other)
			}
		}
	}
	return neighbors
}

// FacesAroundFace returns the live faces sharing an edge with f, in ring
// order and without repeats. Boundary sides contribute nothing.
func (m *Mesh) FacesAroundFace(f FaceID) ([]FaceID, error) {
	loop, err := m.FaceLoop(f)
	if err != nil {
		return nil, err
	}
	seen := make(map[FaceID]bool)
	var faces []FaceID
	for _, h := range loop {
		twin := m.halfEdges[h].Twin
		if twin == NoHalfEdge {
			continue
		}
		other := m.halfEdges[twin].Face
		if other == NoFace || !m.faces[other].Alive() || seen[other] {
			continue
		}
		seen[other] = true
		faces = append(faces, other)
	}
	return faces, nil
}
