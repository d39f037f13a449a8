package primitive

import (
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// SphereOptions configures Sphere. Zero fields fall back to the defaults.
type SphereOptions struct {
	Radius   float64
	Segments int // around the Z axis
	Rings    int // latitude bands from pole to pole
}

// DefaultSphereOptions returns a unit-radius UV sphere.
func DefaultSphereOptions() SphereOptions {
	return SphereOptions{Radius: 1, Segments: 24, Rings: 12}
}

// Sphere builds a closed UV sphere centered at the origin: triangle fans
// at both poles and quad bands between, wound outward.
func Sphere(opts SphereOptions) (*halfedge.Mesh, error) {
	defaults := DefaultSphereOptions()
	if opts.Radius == 0 {
		opts.Radius = defaults.Radius
	}
	if opts.Segments == 0 {
		opts.Segments = defaults.Segments
	}
	if opts.Rings == 0 {
		opts.Rings = defaults.Rings
	}
	if err := checkSize("radius", opts.Radius); err != nil {
		return nil, err
	}
	if err := checkSegments("segments", opts.Segments, 3); err != nil {
		return nil, err
	}
	if err := checkSegments("rings", opts.Rings, 2); err != nil {
		return nil, err
	}

	m := halfedge.NewMesh()
	m.EnsureUVs()
	segments, rings := opts.Segments, opts.Rings
	north := m.AddVertex(geometry.NewVector3(0, 0, opts.Radius))
	for j := 1; j < rings; j++ {
		polar := math.Pi * float64(j) / float64(rings)
		for i := 0; i < segments; i++ {
			azimuth := 2 * math.Pi * float64(i) / float64(segments)
			m.AddVertex(geometry.NewVector3(
				opts.Radius*math.Sin(polar)*math.Cos(azimuth),
				opts.Radius*math.Sin(polar)*math.Sin(azimuth),
				opts.Radius*math.Cos(polar),
			))
		}
	}
	south := m.AddVertex(geometry.NewVector3(0, 0, -opts.Radius))

	// circle returns the vertex on latitude band j at segment i.
	circle := func(j, i int) halfedge.VertexID {
		return north + 1 + halfedge.VertexID((j-1)*segments+i%segments)
	}
	uv := func(i, j int) geometry.Vector2 {
		return geometry.NewVector2(
			float64(i)/float64(segments),
			1-float64(j)/float64(rings),
		)
	}

	cache := halfedge.NewEdgeCache(m)
	for i := 0; i < segments; i++ {
		_, err := addFace(m, cache,
			[]halfedge.VertexID{north, circle(1, i), circle(1, i+1)},
			[]geometry.Vector2{
				geometry.NewVector2((float64(i)+0.5)/float64(segments), 1),
				uv(i, 1), uv(i+1, 1),
			})
		if err != nil {
			return nil, err
		}
	}
	for j := 1; j < rings-1; j++ {
		for i := 0; i < segments; i++ {
			_, err := addFace(m, cache,
				[]halfedge.VertexID{circle(j, i), circle(j+1, i), circle(j+1, i+1), circle(j, i+1)},
				[]geometry.Vector2{uv(i, j), uv(i, j+1), uv(i+1, j+1), uv(i+1, j)})
			if err != nil {
				return nil, err
			}
		}
	}
	for i := 0; i < segments; i++ {
		_, err := addFace(m, cache,
			[]halfedge.VertexID{south, circle(rings-1, i+1), circle(rings-1, i)},
			[]geometry.Vector2{
				geometry.NewVector2((float64(i)+0.5)/float64(segments), 0),
				uv(i+1, rings-1), uv(i, rings-1),
			})
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}
