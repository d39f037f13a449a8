// Package primitive builds standard meshes through the core construction
// surface: vertices and faces only, linked through an edge cache. Every
// generator takes an options struct whose zero fields fall back to named
// defaults, and returns a fresh mesh with per-corner UVs.
package primitive

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// addFace makes a face, registers it with the cache, and assigns the
// per-corner UVs given in the same order as the vertex ring.
func addFace(m *halfedge.Mesh, cache *halfedge.EdgeCache, verts []halfedge.VertexID, uvs []geometry.Vector2) (halfedge.FaceID, error) {
	f, err := m.MakeFace(verts)
	if err != nil {
		return halfedge.NoFace, err
	}
	ring, err := m.FaceLoop(f)
	if err != nil {
		return halfedge.NoFace, err
	}
	for k, h := range ring {
		m.SetUV(h, uvs[(k+1)%len(ring)])
	}
	if err := cache.AddFace(f); err != nil {
		return halfedge.NoFace, err
	}
	return f, nil
}

func checkSize(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("primitive: %s must be positive, got %v", name, v)
	}
	return nil
}

func checkSegments(name string, v, min int) error {
	if v < min {
		return fmt.Errorf("primitive: %s must be at least %d, got %d", name, min, v)
	}
	return nil
}
