package selection

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// SelectLoop walks an edge loop from seed, repeatedly stepping across
// quads with RingStep, and adds every visited half-edge to the selection.
// The walk stops at a boundary, at a non-quad face, or when it returns to
// the seed on a closed loop.
func SelectLoop(m *halfedge.Mesh, s *Selection, seed halfedge.HalfEdgeID) error {
	return walkEdges(m, s, seed, func(h halfedge.HalfEdgeID) halfedge.HalfEdgeID {
		return m.RingStep(h)
	})
}

// SelectRing walks an edge ring from seed using the double-next-then-twin
// rule and adds every visited half-edge to the selection. Unlike
// SelectLoop the step does not require quads, so on triangle fans the
// ring spirals until it revisits an edge or reaches a boundary.
func SelectRing(m *halfedge.Mesh, s *Selection, seed halfedge.HalfEdgeID) error {
	return walkEdges(m, s, seed, func(h halfedge.HalfEdgeID) halfedge.HalfEdgeID {
		record := m.HalfEdge(h)
		if record.Face == halfedge.NoFace {
			return halfedge.NoHalfEdge
		}
		n2 := m.HalfEdge(record.Next).Next
		return m.HalfEdge(n2).Twin
	})
}

func walkEdges(m *halfedge.Mesh, s *Selection, seed halfedge.HalfEdgeID, step func(halfedge.HalfEdgeID) halfedge.HalfEdgeID) error {
	if int(seed) < 0 || int(seed) >= m.NumHalfEdges() {
		return fmt.Errorf("failed to walk edges from %d: %w", seed, halfedge.ErrInvalidHandle)
	}
	visited := make(map[halfedge.HalfEdgeID]bool)
	current := seed
	for steps := 0; steps <= m.NumHalfEdges(); steps++ {
		if current == halfedge.NoHalfEdge || visited[current] {
			for h := range visited {
				s.Edges[h] = struct{}{}
			}
			s.ActiveEdge = seed
			return nil
		}
		visited[current] = true
		current = step(current)
	}
	return fmt.Errorf("failed to walk edges from %d: %w", seed, halfedge.ErrCorruptTopology)
}
