package primitive

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// PlaneOptions configures Plane. Zero fields fall back to the defaults.
type PlaneOptions struct {
	Width     float64 // extent along X
	Depth     float64 // extent along Y
	SegmentsX int
	SegmentsY int
}

// DefaultPlaneOptions returns a unit plane with one quad.
func DefaultPlaneOptions() PlaneOptions {
	return PlaneOptions{Width: 1, Depth: 1, SegmentsX: 1, SegmentsY: 1}
}

// Plane builds a quad grid in the XY plane, centered at the origin, with
// normals facing +Z.
func Plane(opts PlaneOptions) (*halfedge.Mesh, error) {
	defaults := DefaultPlaneOptions()
	if opts.Width == 0 {
		opts.Width = defaults.Width
	}
	if opts.Depth == 0 {
		opts.Depth = defaults.Depth
	}
	if opts.SegmentsX == 0 {
		opts.SegmentsX = defaults.SegmentsX
	}
	if opts.SegmentsY == 0 {
		opts.SegmentsY = defaults.SegmentsY
	}
	if err := checkSize("width", opts.Width); err != nil {
		return nil, err
	}
	if err := checkSize("depth", opts.Depth); err != nil {
		return nil, err
	}
	if err := checkSegments("segments-x", opts.SegmentsX, 1); err != nil {
		return nil, err
	}
	if err := checkSegments("segments-y", opts.SegmentsY, 1); err != nil {
		return nil, err
	}

	m := halfedge.NewMesh()
	m.EnsureUVs()
	cols := opts.SegmentsX + 1
	rows := opts.SegmentsY + 1
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.AddVertex(geometry.NewVector3(
				opts.Width*(float64(x)/float64(opts.SegmentsX)-0.5),
				opts.Depth*(float64(y)/float64(opts.SegmentsY)-0.5),
				0,
			))
		}
	}

	uv := func(x, y int) geometry.Vector2 {
		return geometry.NewVector2(
			float64(x)/float64(opts.SegmentsX),
			float64(y)/float64(opts.SegmentsY),
		)
	}
	cache := halfedge.NewEdgeCache(m)
	for y := 0; y < opts.SegmentsY; y++ {
		for x := 0; x < opts.SegmentsX; x++ {
			a := halfedge.VertexID(y*cols + x)
			b := a + 1
			c := b + halfedge.VertexID(cols)
			d := a + halfedge.VertexID(cols)
			_, err := addFace(m, cache,
				[]halfedge.VertexID{a, b, c, d},
				[]geometry.Vector2{uv(x, y), uv(x+1, y), uv(x+1, y+1), uv(x, y+1)})
			if err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
