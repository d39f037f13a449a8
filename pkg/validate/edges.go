package validate

import (
	"fmt"
	"sort"

	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// EdgeKey identifies an undirected edge by its ordered vertex pair.
type EdgeKey struct {
	A, B halfedge.VertexID
}

// NewEdgeKey builds the canonical key for the edge between two vertices.
func NewEdgeKey(a, b halfedge.VertexID) EdgeKey {
	if b < a {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// EdgeUse records how many live faces run along one undirected edge.
type EdgeUse struct {
	Key   EdgeKey
	Count int
	Faces []halfedge.FaceID
}

// EdgeUses scans all live faces and returns the per-edge face incidence,
// sorted by edge key.
func EdgeUses(m *halfedge.Mesh) ([]EdgeUse, error) {
	byKey := make(map[EdgeKey]*EdgeUse)
	for _, f := range m.LiveFaces() {
		verts, err := m.FaceVertices(f)
		if err != nil {
			return nil, fmt.Errorf("failed to count edge uses: %w", err)
		}
		for i, v := range verts {
			key := NewEdgeKey(v, verts[(i+1)%len(verts)])
			use, ok := byKey[key]
			if !ok {
				use = &EdgeUse{Key: key}
				byKey[key] = use
			}
			use.Count++
			use.Faces = append(use.Faces, f)
		}
	}

	uses := make([]EdgeUse, 0, len(byKey))
	for _, use := range byKey {
		uses = append(uses, *use)
	}
	sort.Slice(uses, func(i, j int) bool {
		if uses[i].Key.A != uses[j].Key.A {
			return uses[i].Key.A < uses[j].Key.A
		}
		return uses[i].Key.B < uses[j].Key.B
	})
	return uses, nil
}

// EdgeStats counts undirected edges by their incident-face class.
type EdgeStats struct {
	Boundary    int
	Manifold    int
	NonManifold int
}

// Total returns the number of undirected edges.
func (s EdgeStats) Total() int {
	return s.Boundary + s.Manifold + s.NonManifold
}

// CountEdges classifies every undirected edge of the live faces: one
// incident face is a boundary edge, two is a manifold interior edge, and
// more than two is non-manifold.
func CountEdges(m *halfedge.Mesh) (EdgeStats, error) {
	uses, err := EdgeUses(m)
	if err != nil {
		return EdgeStats{}, err
	}
	var stats EdgeStats
	for _, use := range uses {
		switch {
		case use.Count == 1:
			stats.Boundary++
		case use.Count == 2:
			stats.Manifold++
		default:
			stats.NonManifold++
		}
	}
	return stats, nil
}

// IsWatertight reports whether the surface has no boundary edges.
func IsWatertight(m *halfedge.Mesh) (bool, error) {
	stats, err := CountEdges(m)
	if err != nil {
		return false, err
	}
	return stats.Boundary == 0, nil
}

// IsManifold reports whether no edge is shared by more than two faces.
func IsManifold(m *halfedge.Mesh) (bool, error) {
	stats, err := CountEdges(m)
	if err != nil {
		return false, err
	}
	return stats.NonManifold == 0, nil
}
