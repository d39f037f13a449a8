package primitive

import (
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// TorusOptions configures Torus. Zero fields fall back to the defaults.
type TorusOptions struct {
	MajorRadius   float64 // distance from the axis to the tube center
	MinorRadius   float64 // tube radius
	MajorSegments int
	MinorSegments int
}

// DefaultTorusOptions returns a torus with a 1:4 tube ratio.
func DefaultTorusOptions() TorusOptions {
	return TorusOptions{MajorRadius: 1, MinorRadius: 0.25, MajorSegments: 24, MinorSegments: 12}
}

// Torus builds a closed quad torus around the Z axis, centered at the
// origin, wound outward. The result is the canonical genus-1 surface.
func Torus(opts TorusOptions) (*halfedge.Mesh, error) {
	defaults := DefaultTorusOptions()
	if opts.MajorRadius == 0 {
		opts.MajorRadius = defaults.MajorRadius
	}
	if opts.MinorRadius == 0 {
		opts.MinorRadius = defaults.MinorRadius
	}
	if opts.MajorSegments == 0 {
		opts.MajorSegments = defaults.MajorSegments
	}
	if opts.MinorSegments == 0 {
		opts.MinorSegments = defaults.MinorSegments
	}
	if err := checkSize("major radius", opts.MajorRadius); err != nil {
		return nil, err
	}
	if err := checkSize("minor radius", opts.MinorRadius); err != nil {
		return nil, err
	}
	if err := checkSegments("major segments", opts.MajorSegments, 3); err != nil {
		return nil, err
	}
	if err := checkSegments("minor segments", opts.MinorSegments, 3); err != nil {
		return nil, err
	}

	m := halfedge.NewMesh()
	m.EnsureUVs()
	major, minor := opts.MajorSegments, opts.MinorSegments
	for j := 0; j < major; j++ {
		around := 2 * math.Pi * float64(j) / float64(major)
		for i := 0; i < minor; i++ {
			tube := 2 * math.Pi * float64(i) / float64(minor)
			radial := opts.MajorRadius + opts.MinorRadius*math.Cos(tube)
			m.AddVertex(geometry.NewVector3(
				radial*math.Cos(around),
				radial*math.Sin(around),
				opts.MinorRadius*math.Sin(tube),
			))
		}
	}
	at := func(j, i int) halfedge.VertexID {
		return halfedge.VertexID((j%major)*minor + i%minor)
	}
	uv := func(j, i int) geometry.Vector2 {
		return geometry.NewVector2(float64(j)/float64(major), float64(i)/float64(minor))
	}

	cache := halfedge.NewEdgeCache(m)
	for j := 0; j < major; j++ {
		for i := 0; i < minor; i++ {
			_, err := addFace(m, cache,
				[]halfedge.VertexID{at(j, i), at(j+1, i), at(j+1, i+1), at(j, i+1)},
				[]geometry.Vector2{uv(j, i), uv(j+1, i), uv(j+1, i+1), uv(j, i+1)})
			if err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
