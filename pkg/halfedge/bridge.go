package halfedge

import "fmt"

// BridgeLoops connects two ordered half-edge loops of equal length with
// one quad per corresponding edge pair. Each quad spans the reversed span
// of both paired edges, so when the loops bound two open surfaces in their
// natural walk order the bridge attaches with consistent winding. Where a
// paired loop edge is still unlinked its rail edge is twinned to it
// directly; the rungs between neighboring quads are linked through the
// cache when one is given.
func (m *Mesh) BridgeLoops(cache *EdgeCache, loopA, loopB []HalfEdgeID) ([]FaceID, error) {
	if len(loopA) != len(loopB) {
		return nil, fmt.Errorf("failed to bridge loops: %w: %d vs %d edges", ErrLoopMismatch, len(loopA), len(loopB))
	}

	type span struct {
		origin, dest VertexID
	}
	resolve := func(loop []HalfEdgeID) ([]span, error) {
		spans := make([]span, len(loop))
		for i, h := range loop {
			if !m.validHalfEdge(h) {
				return nil, fmt.Errorf("failed to bridge loops: %w: half-edge %d", ErrInvalidHandle, h)
			}
			origin := m.Origin(h)
			if origin == NoVertex {
				return nil, fmt.Errorf("failed to bridge loops: %w: ring of half-edge %d does not close", ErrCorruptTopology, h)
			}
			spans[i] = span{origin: origin, dest: m.halfEdges[h].Vertex}
		}
		return spans, nil
	}
	spansA, err := resolve(loopA)
	if err != nil {
		return nil, err
	}
	spansB, err := resolve(loopB)
	if err != nil {
		return nil, err
	}

	quads := make([]FaceID, 0, len(loopA))
	for i := range loopA {
		sa, sb := spansA[i], spansB[i]
		f, err := m.MakeFace([]VertexID{sa.dest, sa.origin, sb.dest, sb.origin})
		if err != nil {
			return quads, fmt.Errorf("failed to bridge loops: %w", err)
		}
		ring, err := m.FaceLoop(f)
		if err != nil {
			return quads, fmt.Errorf("failed to bridge loops: %w", err)
		}
		// ring[0] runs against loopA[i], ring[2] against loopB[i].
		if m.halfEdges[loopA[i]].Twin == NoHalfEdge {
			m.halfEdges[loopA[i]].Twin = ring[0]
			m.halfEdges[ring[0]].Twin = loopA[i]
		}
		if m.halfEdges[loopB[i]].Twin == NoHalfEdge {
			m.halfEdges[loopB[i]].Twin = ring[2]
			m.halfEdges[ring[2]].Twin = loopB[i]
		}
		if cache != nil {
			if err := cache.AddFace(f); err != nil {
				return quads, fmt.Errorf("failed to bridge loops: %w", err)
			}
		}
		quads = append(quads, f)
	}
	Logger().Debug("bridged loops", "quads", len(quads))
	return quads, nil
}

// DuplicateBoundaryLoop adds a duplicate vertex for every distinct vertex
// the loop references, origins included, copying position and normal.
// Returns the old to new vertex mapping. No half-edges are created; a
// higher-level operation (an extrude, a bridge) wires the duplicates up.
func (m *Mesh) DuplicateBoundaryLoop(loop []HalfEdgeID) (map[VertexID]VertexID, error) {
	duplicates := make(map[VertexID]VertexID)
	for _, h := range loop {
		if !m.validHalfEdge(h) {
			return nil, fmt.Errorf("failed to duplicate loop: %w: half-edge %d", ErrInvalidHandle, h)
		}
		origin := m.Origin(h)
		if origin == NoVertex {
			return nil, fmt.Errorf("failed to duplicate loop: %w: ring of half-edge %d does not close", ErrCorruptTopology, h)
		}
		for _, v := range [2]VertexID{origin, m.halfEdges[h].Vertex} {
			if _, ok := duplicates[v]; ok {
				continue
			}
			duplicate := m.AddVertex(m.positions[v])
			if m.normals != nil {
				m.normals[duplicate] = m.normals[v]
			}
			duplicates[v] = duplicate
		}
	}
	return duplicates, nil
}
