package halfedge

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// edgeCacheKey identifies a directed edge by its vertex pair, optionally
// folding in the corner UVs at both ends.
type edgeCacheKey struct {
	from, to     VertexID
	fromUV, toUV geometry.Vector2
}

// EdgeCache links twin half-edges across independently constructed faces.
// MakeFace never deduplicates edges on its own; registering every face of
// a surface with one cache is what turns a pile of rings into a connected
// mesh. In seam-aware mode the corner UVs at both ends become part of the
// edge key, so edges whose UVs disagree across the shared span stay
// unlinked and the surface keeps an open seam there.
type EdgeCache struct {
	mesh      *Mesh
	seamAware bool
	edges     map[edgeCacheKey]HalfEdgeID
}

// NewEdgeCache creates a cache that links edges purely by vertex pair.
func NewEdgeCache(m *Mesh) *EdgeCache {
	return &EdgeCache{mesh: m, edges: make(map[edgeCacheKey]HalfEdgeID)}
}

// NewSeamEdgeCache creates a cache that folds corner UVs into the edge
// key, leaving UV seams as unlinked boundaries.
func NewSeamEdgeCache(m *Mesh) *EdgeCache {
	return &EdgeCache{mesh: m, seamAware: true, edges: make(map[edgeCacheKey]HalfEdgeID)}
}

func (c *EdgeCache) key(from, to VertexID, fromUV, toUV geometry.Vector2) edgeCacheKey {
	if !c.seamAware {
		return edgeCacheKey{from: from, to: to}
	}
	return edgeCacheKey{from: from, to: to, fromUV: fromUV, toUV: toUV}
}

// AddFace registers every ring edge of a face, linking each one to a
// previously registered reverse edge when that edge is still unlinked.
func (c *EdgeCache) AddFace(f FaceID) error {
	m := c.mesh
	ring, err := m.FaceLoop(f)
	if err != nil {
		return fmt.Errorf("failed to register face %d: %w", f, err)
	}
	n := len(ring)
	for i, h := range ring {
		prev := ring[(i-1+n)%n]
		from := m.halfEdges[prev].Vertex
		to := m.halfEdges[h].Vertex
		fromUV := m.UV(prev)
		toUV := m.UV(h)
		if m.halfEdges[h].Twin == NoHalfEdge {
			if reverse, ok := c.edges[c.key(to, from, toUV, fromUV)]; ok {
				if m.halfEdges[reverse].Twin == NoHalfEdge {
					m.halfEdges[h].Twin = reverse
					m.halfEdges[reverse].Twin = h
				} else {
					Logger().Warn("edge links more than two faces, twin left unset",
						"from", int(from), "to", int(to))
				}
			}
		}
		c.edges[c.key(from, to, fromUV, toUV)] = h
	}
	return nil
}
