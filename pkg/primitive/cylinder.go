package primitive

import (
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// CylinderOptions configures Cylinder. Zero fields fall back to the
// defaults, so the zero value is a capped cylinder; an open tube is
// requested with NoCaps.
type CylinderOptions struct {
	Radius   float64
	Height   float64
	Segments int
	NoCaps   bool // leave both ends open
}

// DefaultCylinderOptions returns a capped unit cylinder.
func DefaultCylinderOptions() CylinderOptions {
	return CylinderOptions{Radius: 0.5, Height: 1, Segments: 24}
}

// Cylinder builds a cylinder around the Z axis, centered at the origin,
// wound outward. The caps are single n-gon faces; with NoCaps the wall is
// an open tube with two boundary loops.
func Cylinder(opts CylinderOptions) (*halfedge.Mesh, error) {
	defaults := DefaultCylinderOptions()
	if opts.Radius == 0 {
		opts.Radius = defaults.Radius
	}
	if opts.Height == 0 {
		opts.Height = defaults.Height
	}
	if opts.Segments == 0 {
		opts.Segments = defaults.Segments
	}
	if err := checkSize("radius", opts.Radius); err != nil {
		return nil, err
	}
	if err := checkSize("height", opts.Height); err != nil {
		return nil, err
	}
	if err := checkSegments("segments", opts.Segments, 3); err != nil {
		return nil, err
	}

	m := halfedge.NewMesh()
	m.EnsureUVs()
	segments := opts.Segments
	for _, z := range []float64{-opts.Height / 2, opts.Height / 2} {
		for i := 0; i < segments; i++ {
			azimuth := 2 * math.Pi * float64(i) / float64(segments)
			m.AddVertex(geometry.NewVector3(
				opts.Radius*math.Cos(azimuth),
				opts.Radius*math.Sin(azimuth),
				z,
			))
		}
	}
	bottom := func(i int) halfedge.VertexID { return halfedge.VertexID(i % segments) }
	top := func(i int) halfedge.VertexID { return halfedge.VertexID(segments + i%segments) }

	cache := halfedge.NewEdgeCache(m)
	for i := 0; i < segments; i++ {
		u0 := float64(i) / float64(segments)
		u1 := float64(i+1) / float64(segments)
		_, err := addFace(m, cache,
			[]halfedge.VertexID{bottom(i), bottom(i + 1), top(i + 1), top(i)},
			[]geometry.Vector2{
				geometry.NewVector2(u0, 0), geometry.NewVector2(u1, 0),
				geometry.NewVector2(u1, 1), geometry.NewVector2(u0, 1),
			})
		if err != nil {
			return nil, err
		}
	}
	if opts.NoCaps {
		return m, nil
	}

	capUV := func(i int) geometry.Vector2 {
		azimuth := 2 * math.Pi * float64(i) / float64(segments)
		return geometry.NewVector2(0.5+0.5*math.Cos(azimuth), 0.5+0.5*math.Sin(azimuth))
	}
	topRing := make([]halfedge.VertexID, segments)
	topUVs := make([]geometry.Vector2, segments)
	bottomRing := make([]halfedge.VertexID, segments)
	bottomUVs := make([]geometry.Vector2, segments)
	for i := 0; i < segments; i++ {
		topRing[i] = top(i)
		topUVs[i] = capUV(i)
		bottomRing[i] = bottom(segments - 1 - i)
		bottomUVs[i] = capUV(segments - 1 - i)
	}
	if _, err := addFace(m, cache, topRing, topUVs); err != nil {
		return nil, err
	}
	if _, err := addFace(m, cache, bottomRing, bottomUVs); err != nil {
		return nil, err
	}
	return m, nil
}
