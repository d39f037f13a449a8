package validate

import (
	"fmt"
	"sort"

	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// Adjacency selects the face-graph rule used for component analysis.
type Adjacency int

// Adjacency rules.
const (
	// AdjacencyVertex connects faces sharing any vertex. Components that
	// only touch at a single point merge under this rule.
	AdjacencyVertex Adjacency = iota
	// AdjacencyEdge connects faces sharing an undirected edge, the
	// stricter rule matching manifold connectivity.
	AdjacencyEdge
)

// ConnectedComponents partitions the live faces into connected components
// under the given adjacency rule, using a depth-first search. Faces within
// a component and the components themselves are ordered by lowest face id.
func ConnectedComponents(m *halfedge.Mesh, rule Adjacency) ([][]halfedge.FaceID, error) {
	faces := m.LiveFaces()
	sharing := make(map[EdgeKey][]halfedge.FaceID)
	byVertex := make(map[halfedge.VertexID][]halfedge.FaceID)
	for _, f := range faces {
		verts, err := m.FaceVertices(f)
		if err != nil {
			return nil, fmt.Errorf("failed to find components: %w", err)
		}
		for i, v := range verts {
			if rule == AdjacencyEdge {
				key := NewEdgeKey(v, verts[(i+1)%len(verts)])
				sharing[key] = append(sharing[key], f)
			} else {
				byVertex[v] = append(byVertex[v], f)
			}
		}
	}

	groups := make([][]halfedge.FaceID, 0, len(sharing)+len(byVertex))
	for _, g := range sharing {
		groups = append(groups, g)
	}
	for _, g := range byVertex {
		groups = append(groups, g)
	}
	neighbors := make(map[halfedge.FaceID][]halfedge.FaceID)
	for _, group := range groups {
		for _, f := range group {
			for _, other := range group {
				if other != f {
					neighbors[f] = append(neighbors[f], other)
				}
			}
		}
	}

	visited := make(map[halfedge.FaceID]bool, len(faces))
	var components [][]halfedge.FaceID
	for _, start := range faces {
		if visited[start] {
			continue
		}
		var component []halfedge.FaceID
		stack := []halfedge.FaceID{start}
		visited[start] = true
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, f)
			for _, next := range neighbors[f] {
				if !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}
		sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
		components = append(components, component)
	}
	return components, nil
}
