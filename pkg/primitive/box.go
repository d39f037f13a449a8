package primitive

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// BoxOptions configures Box. Zero fields fall back to the defaults.
type BoxOptions struct {
	Width  float64 // extent along X
	Depth  float64 // extent along Y
	Height float64 // extent along Z
}

// DefaultBoxOptions returns a unit cube.
func DefaultBoxOptions() BoxOptions {
	return BoxOptions{Width: 1, Depth: 1, Height: 1}
}

// Box builds a closed axis-aligned cuboid of six quads centered at the
// origin, wound outward.
func Box(opts BoxOptions) (*halfedge.Mesh, error) {
	defaults := DefaultBoxOptions()
	if opts.Width == 0 {
		opts.Width = defaults.Width
	}
	if opts.Depth == 0 {
		opts.Depth = defaults.Depth
	}
	if opts.Height == 0 {
		opts.Height = defaults.Height
	}
	if err := checkSize("width", opts.Width); err != nil {
		return nil, err
	}
	if err := checkSize("depth", opts.Depth); err != nil {
		return nil, err
	}
	if err := checkSize("height", opts.Height); err != nil {
		return nil, err
	}

	m := halfedge.NewMesh()
	m.EnsureUVs()
	w, d, h := opts.Width/2, opts.Depth/2, opts.Height/2
	for _, z := range []float64{-h, h} {
		m.AddVertex(geometry.NewVector3(-w, -d, z))
		m.AddVertex(geometry.NewVector3(w, -d, z))
		m.AddVertex(geometry.NewVector3(w, d, z))
		m.AddVertex(geometry.NewVector3(-w, d, z))
	}

	square := []geometry.Vector2{
		geometry.NewVector2(0, 0),
		geometry.NewVector2(1, 0),
		geometry.NewVector2(1, 1),
		geometry.NewVector2(0, 1),
	}
	cache := halfedge.NewEdgeCache(m)
	for _, verts := range [][]halfedge.VertexID{
		{0, 3, 2, 1}, // bottom, -Z
		{4, 5, 6, 7}, // top, +Z
		{0, 1, 5, 4}, // front, -Y
		{1, 2, 6, 5}, // right, +X
		{2, 3, 7, 6}, // back, +Y
		{3, 0, 4, 7}, // left, -X
	} {
		if _, err := addFace(m, cache, verts, square); err != nil {
			return nil, err
		}
	}
	return m, nil
}
