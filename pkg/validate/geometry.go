package validate

import (
	"fmt"
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// geometryWarnings runs the degenerate-geometry heuristics in a fixed
// order so reports stay stable across runs.
func geometryWarnings(m *halfedge.Mesh, opts Options) []string {
	var warns []string
	warns = append(warns, duplicateVertexWarnings(m, opts.PositionTolerance)...)
	warns = append(warns, orphanWarnings(m)...)
	warns = append(warns, faceGeometryWarnings(m, opts.AreaTolerance)...)
	warns = append(warns, normalWarnings(m)...)
	warns = append(warns, windingWarnings(m, opts.WindingThreshold)...)
	return warns
}

type gridCell struct {
	x, y, z int64
}

func cellOf(p geometry.Vector3, size float64) gridCell {
	return gridCell{
		x: int64(math.Floor(p.X / size)),
		y: int64(math.Floor(p.Y / size)),
		z: int64(math.Floor(p.Z / size)),
	}
}

// duplicateVertexWarnings reports vertex pairs closer than the tolerance,
// found through a uniform spatial hash so the scan stays near-linear.
func duplicateVertexWarnings(m *halfedge.Mesh, tolerance float64) []string {
	var warns []string
	cells := make(map[gridCell][]halfedge.VertexID)
	for i, p := range m.Positions() {
		v := halfedge.VertexID(i)
		center := cellOf(p, tolerance)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					cell := gridCell{x: center.x + dx, y: center.y + dy, z: center.z + dz}
					for _, other := range cells[cell] {
						if p.Distance(m.Position(other)) <= tolerance {
							warns = append(warns, fmt.Sprintf("duplicate vertices %d and %d", other, v))
						}
					}
				}
			}
		}
		cells[center] = append(cells[center], v)
	}
	return warns
}

// orphanWarnings reports vertices no live face references.
func orphanWarnings(m *halfedge.Mesh) []string {
	referenced := make(map[halfedge.VertexID]struct{})
	for _, f := range m.LiveFaces() {
		verts, err := m.FaceVertices(f)
		if err != nil {
			continue
		}
		for _, v := range verts {
			referenced[v] = struct{}{}
		}
	}
	var warns []string
	for i := 0; i < m.NumVertices(); i++ {
		if _, ok := referenced[halfedge.VertexID(i)]; !ok {
			warns = append(warns, fmt.Sprintf("orphaned vertex %d", i))
		}
	}
	return warns
}

// faceGeometryWarnings reports zero-area faces and faces with collinear
// consecutive corners (a redundant vertex on a straight edge).
func faceGeometryWarnings(m *halfedge.Mesh, tolerance float64) []string {
	var warns []string
	for _, f := range m.LiveFaces() {
		verts, err := m.FaceVertices(f)
		if err != nil {
			continue
		}
		if area, err := m.FaceArea(f); err == nil && area <= tolerance {
			warns = append(warns, fmt.Sprintf("zero-area face %d", f))
		}
		n := len(verts)
		for i := range verts {
			prev := m.Position(verts[(i-1+n)%n])
			curr := m.Position(verts[i])
			next := m.Position(verts[(i+1)%n])
			if curr.Sub(prev).Cross(next.Sub(curr)).Length() <= tolerance {
				warns = append(warns, fmt.Sprintf("collinear corner at vertex %d of face %d", verts[i], f))
			}
		}
	}
	return warns
}

// normalWarnings reports stored vertex normals that are not unit length.
func normalWarnings(m *halfedge.Mesh) []string {
	if !m.HasNormals() {
		return nil
	}
	var warns []string
	for i, n := range m.Normals() {
		length := n.Length()
		if length > 0 && math.Abs(length-1) > 1e-6 {
			warns = append(warns, fmt.Sprintf("non-normalized normal on vertex %d", i))
		}
	}
	return warns
}

// windingWarnings reports edge-adjacent face pairs whose unit normals
// point against each other, the usual sign of a flipped face. Curvature
// alone stays below the threshold on a sane closed surface, so this is a
// heuristic, not a proof.
func windingWarnings(m *halfedge.Mesh, threshold float64) []string {
	normals := make(map[halfedge.FaceID]geometry.Vector3)
	unitNormal := func(f halfedge.FaceID) (geometry.Vector3, bool) {
		if n, ok := normals[f]; ok {
			return n, n.Length() > 0
		}
		n, err := m.FaceNormal(f)
		if err != nil || n.Length() == 0 {
			normals[f] = geometry.Vector3{}
			return geometry.Vector3{}, false
		}
		n = n.Normalize()
		normals[f] = n
		return n, true
	}

	var warns []string
	for i, he := range m.HalfEdges() {
		h := halfedge.HalfEdgeID(i)
		if he.Twin == halfedge.NoHalfEdge || he.Twin < h {
			continue
		}
		fa := he.Face
		fb := m.HalfEdge(he.Twin).Face
		if fa == halfedge.NoFace || fb == halfedge.NoFace || fa == fb {
			continue
		}
		na, ok := unitNormal(fa)
		if !ok {
			continue
		}
		nb, ok := unitNormal(fb)
		if !ok {
			continue
		}
		if na.Dot(nb) < threshold {
			warns = append(warns, fmt.Sprintf("inconsistent winding between faces %d and %d", fa, fb))
		}
	}
	return warns
}
