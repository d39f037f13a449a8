// Package triangulate converts quad and n-gon faces into triangles for
// pipelines that only accept triangle meshes. New triangles inherit the
// source face's material and per-corner UVs, boundary twin links carry
// over to the replacement edges, and the result maps every replaced face
// to its triangles.
package triangulate

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// QuadMode selects how four-sided faces are split.
type QuadMode int

// Quad modes.
const (
	// QuadDiagonal always splits along the ring's corner 0 to corner 2
	// diagonal.
	QuadDiagonal QuadMode = iota
	// QuadOptimal measures both diagonals and splits along the shorter,
	// reducing sliver triangles on stretched quads.
	QuadOptimal
)

// NGonMode selects how faces with more than four sides are split.
type NGonMode int

// N-gon modes.
const (
	// NGonFan fans all triangles out of the ring's first corner. Fast,
	// but correct for convex faces only.
	NGonFan NGonMode = iota
	// NGonEarClip clips ears off the ring one by one and handles concave
	// simple polygons.
	NGonEarClip
)

// Options configures a triangulation pass.
type Options struct {
	Quads QuadMode
	NGons NGonMode
}

// DefaultOptions matches the interactive editing default: fixed-diagonal
// quads and fanned n-gons.
func DefaultOptions() Options {
	return Options{Quads: QuadDiagonal, NGons: NGonFan}
}

// Result reports what a triangulation pass created.
type Result struct {
	// Faces lists every new triangle in creation order.
	Faces []halfedge.FaceID
	// FaceMap maps each replaced source face to its triangles. Faces that
	// already were triangles stay untouched and do not appear here.
	FaceMap map[halfedge.FaceID][]halfedge.FaceID
}

// All triangulates every live face of the mesh.
func All(m *halfedge.Mesh, opts Options) (Result, error) {
	return Faces(m, m.LiveFaces(), opts)
}

// Faces triangulates the given faces. Each source face is tombstoned and
// replaced by fresh triangles; vertex positions never change, only new
// faces and edges appear.
func Faces(m *halfedge.Mesh, faces []halfedge.FaceID, opts Options) (Result, error) {
	result := Result{FaceMap: make(map[halfedge.FaceID][]halfedge.FaceID)}
	for _, f := range faces {
		created, err := triangulateFace(m, f, opts)
		if err != nil {
			return Result{}, err
		}
		if created == nil {
			continue
		}
		result.Faces = append(result.Faces, created...)
		result.FaceMap[f] = created
	}
	return result, nil
}

// span identifies a directed edge by its endpoints.
type span struct {
	from, to halfedge.VertexID
}

// triangulateFace replaces one face with triangles and returns them, or
// nil when the face already is a triangle.
func triangulateFace(m *halfedge.Mesh, f halfedge.FaceID, opts Options) ([]halfedge.FaceID, error) {
	ring, err := m.FaceLoop(f)
	if err != nil {
		return nil, fmt.Errorf("failed to triangulate face %d: %w", f, err)
	}
	n := len(ring)
	if n == 3 {
		return nil, nil
	}

	verts := make([]halfedge.VertexID, n)
	points := make([]geometry.Vector3, n)
	for i, h := range ring {
		verts[i] = m.HalfEdge(h).Vertex
		points[i] = m.Position(verts[i])
	}
	// Record the outside twin of every linked ring edge so the boundary
	// links survive the rebuild.
	outer := make(map[span]halfedge.HalfEdgeID, n)
	for i, h := range ring {
		twin := m.HalfEdge(h).Twin
		if twin == halfedge.NoHalfEdge || m.HalfEdge(twin).Face == halfedge.NoFace {
			continue
		}
		outer[span{from: verts[(i-1+n)%n], to: verts[i]}] = twin
	}
	var uvs []geometry.Vector2
	if m.HasUVs() {
		uvs = make([]geometry.Vector2, n)
		for i, h := range ring {
			uvs[i] = m.UV(h)
		}
	}
	material := 0
	if m.HasMaterials() {
		material = m.Material(f)
	}

	var triples [][3]int
	switch {
	case n == 4 && opts.Quads == QuadOptimal && points[1].Distance(points[3]) < points[0].Distance(points[2]):
		triples = [][3]int{{1, 2, 3}, {1, 3, 0}}
	case n == 4:
		triples = [][3]int{{0, 1, 2}, {0, 2, 3}}
	case opts.NGons == NGonEarClip:
		triples = earClip(points)
	default:
		triples = fan(n)
	}

	if _, err := m.DeleteFaces([]halfedge.FaceID{f}); err != nil {
		return nil, fmt.Errorf("failed to triangulate face %d: %w", f, err)
	}

	created := make([]halfedge.FaceID, 0, len(triples))
	inner := make(map[span]halfedge.HalfEdgeID, len(triples))
	for _, tri := range triples {
		nf, err := m.MakeFace([]halfedge.VertexID{verts[tri[0]], verts[tri[1]], verts[tri[2]]})
		if err != nil {
			return nil, fmt.Errorf("failed to triangulate face %d: %w", f, err)
		}
		created = append(created, nf)
		if m.HasMaterials() {
			m.SetMaterial(nf, material)
		}
		newRing, err := m.FaceLoop(nf)
		if err != nil {
			return nil, fmt.Errorf("failed to triangulate face %d: %w", f, err)
		}
		for j, h := range newRing {
			from, to := tri[j], tri[(j+1)%3]
			if uvs != nil {
				m.SetUV(h, uvs[to])
			}
			s := span{from: verts[from], to: verts[to]}
			if outside, ok := outer[s]; ok {
				if _, err := m.UnlinkTwin(outside); err != nil {
					return nil, fmt.Errorf("failed to triangulate face %d: %w", f, err)
				}
				if err := m.LinkTwins(h, outside); err != nil {
					return nil, fmt.Errorf("failed to triangulate face %d: %w", f, err)
				}
				continue
			}
			if reverse, ok := inner[span{from: verts[to], to: verts[from]}]; ok {
				if err := m.LinkTwins(h, reverse); err != nil {
					return nil, fmt.Errorf("failed to triangulate face %d: %w", f, err)
				}
				continue
			}
			inner[s] = h
		}
	}
	return created, nil
}
