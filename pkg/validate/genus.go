package validate

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// Genus preconditions.
var (
	// ErrOpenSurface indicates boundary edges on a surface that must be
	// watertight.
	ErrOpenSurface = errors.New("validate: surface is not watertight")
	// ErrNonManifold indicates edges shared by more than two faces.
	ErrNonManifold = errors.New("validate: surface is not manifold")
)

// EulerCharacteristic returns V - E + F, counting the vertices referenced
// by live faces, the undirected edges between them, and the live faces.
func EulerCharacteristic(m *halfedge.Mesh) (int, error) {
	uses, err := EdgeUses(m)
	if err != nil {
		return 0, fmt.Errorf("failed to compute Euler characteristic: %w", err)
	}
	referenced := make(map[halfedge.VertexID]struct{})
	faces := m.LiveFaces()
	for _, f := range faces {
		verts, err := m.FaceVertices(f)
		if err != nil {
			return 0, fmt.Errorf("failed to compute Euler characteristic: %w", err)
		}
		for _, v := range verts {
			referenced[v] = struct{}{}
		}
	}
	return len(referenced) - len(uses) + len(faces), nil
}

// Genus returns the topological genus of a closed manifold surface,
// derived from the Euler characteristic. A surface with boundary edges
// fails with ErrOpenSurface, a non-manifold one with ErrNonManifold;
// genus is never reported for a surface it does not apply to.
func Genus(m *halfedge.Mesh) (int, error) {
	stats, err := CountEdges(m)
	if err != nil {
		return 0, fmt.Errorf("failed to compute genus: %w", err)
	}
	if stats.Boundary > 0 {
		return 0, fmt.Errorf("failed to compute genus: %w: %d boundary edges", ErrOpenSurface, stats.Boundary)
	}
	if stats.NonManifold > 0 {
		return 0, fmt.Errorf("failed to compute genus: %w: %d non-manifold edges", ErrNonManifold, stats.NonManifold)
	}
	chi, err := EulerCharacteristic(m)
	if err != nil {
		return 0, err
	}
	genus := int(math.Round((2 - float64(chi)) / 2))
	if genus < 0 {
		genus = 0
	}
	return genus, nil
}
