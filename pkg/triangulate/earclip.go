package triangulate

import "github.com/philipparndt/gomesh/pkg/geometry"

const earEpsilon = 1e-12

// fan returns the index triples of a fan triangulation out of corner 0.
func fan(n int) [][3]int {
	triples := make([][3]int, 0, n-2)
	for i := 1; i < n-1; i++ {
		triples = append(triples, [3]int{0, i, i + 1})
	}
	return triples
}

// earClip triangulates a simple polygon ring by ear clipping after
// projecting it onto the plane of its Newell normal. Concave rings are
// handled. When no ear exists (a self-intersecting or fully degenerate
// ring) the remainder is fanned instead, so the result always holds
// exactly n-2 triples.
func earClip(points []geometry.Vector3) [][3]int {
	n := len(points)
	flat := project(points)
	if flat == nil {
		return fan(n)
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	triples := make([][3]int, 0, n-2)
	for len(remaining) > 3 {
		ear := findEar(flat, remaining)
		if ear < 0 {
			for i := 1; i < len(remaining)-1; i++ {
				triples = append(triples, [3]int{remaining[0], remaining[i], remaining[i+1]})
			}
			return triples
		}
		k := len(remaining)
		triples = append(triples, [3]int{
			remaining[(ear-1+k)%k], remaining[ear], remaining[(ear+1)%k],
		})
		remaining = append(remaining[:ear], remaining[ear+1:]...)
	}
	return append(triples, [3]int{remaining[0], remaining[1], remaining[2]})
}

// project maps the ring onto 2D coordinates in its own plane, oriented so
// the ring winds counterclockwise. Returns nil when the ring has no usable
// normal.
func project(points []geometry.Vector3) []geometry.Vector2 {
	var normal geometry.Vector3
	n := len(points)
	for i, p := range points {
		q := points[(i+1)%n]
		normal.X += (p.Y - q.Y) * (p.Z + q.Z)
		normal.Y += (p.Z - q.Z) * (p.X + q.X)
		normal.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	if normal.Length() == 0 {
		return nil
	}
	normal = normal.Normalize()

	u := normal.Cross(geometry.NewVector3(1, 0, 0))
	if u.Length() < 1e-9 {
		u = normal.Cross(geometry.NewVector3(0, 1, 0))
	}
	u = u.Normalize()
	v := normal.Cross(u)

	flat := make([]geometry.Vector2, n)
	for i, p := range points {
		flat[i] = geometry.NewVector2(p.Dot(u), p.Dot(v))
	}
	return flat
}

// findEar returns the position in remaining of a clippable convex corner,
// or -1 when none exists.
func findEar(flat []geometry.Vector2, remaining []int) int {
	k := len(remaining)
	for i := 0; i < k; i++ {
		a := flat[remaining[(i-1+k)%k]]
		b := flat[remaining[i]]
		c := flat[remaining[(i+1)%k]]
		if b.Sub(a).Cross(c.Sub(b)) <= earEpsilon {
			continue
		}
		if anyInside(flat, remaining, (i-1+k)%k, i, (i+1)%k) {
			continue
		}
		return i
	}
	return -1
}

// anyInside reports whether any other remaining corner lies strictly
// inside the candidate ear triangle.
func anyInside(flat []geometry.Vector2, remaining []int, ia, ib, ic int) bool {
	a := flat[remaining[ia]]
	b := flat[remaining[ib]]
	c := flat[remaining[ic]]
	for j, idx := range remaining {
		if j == ia || j == ib || j == ic {
			continue
		}
		if pointInTriangle(flat[idx], a, b, c) {
			return true
		}
	}
	return false
}

// pointInTriangle keeps boundary points outside, so corners shared with
// the ear's own edges never block it.
func pointInTriangle(p, a, b, c geometry.Vector2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	return d1 > earEpsilon && d2 > earEpsilon && d3 > earEpsilon
}
