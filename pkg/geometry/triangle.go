package geometry

import "math"

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	A, B, C Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Normal computes the unit normal of the triangle using counter-clockwise winding
func (t Triangle) Normal() Vector3 {
	edge1 := t.B.Sub(t.A)
	edge2 := t.C.Sub(t.A)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.B.Sub(t.A)
	edge2 := t.C.Sub(t.A)
	cross := edge1.Cross(edge2)
	return cross.Length() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.A.Distance(t.B),
		t.B.Distance(t.C),
		t.C.Distance(t.A),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.A.X + t.B.X + t.C.X) / 3.0,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3.0,
		Z: (t.A.Z + t.B.Z + t.C.Z) / 3.0,
	}
}

// Angles returns the three interior angles in radians
func (t Triangle) Angles() [3]float64 {
	e1 := t.B.Sub(t.A)
	e2 := t.C.Sub(t.B)
	e3 := t.A.Sub(t.C)

	// Angle at A
	a1 := math.Acos(e1.Normalize().Dot(e3.Mul(-1).Normalize()))
	// Angle at B
	a2 := math.Acos(e1.Mul(-1).Normalize().Dot(e2.Normalize()))
	// Angle at C
	a3 := math.Acos(e2.Mul(-1).Normalize().Dot(e3.Normalize()))

	return [3]float64{a1, a2, a3}
}
