package halfedge

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// SplitEdge inserts a new vertex at parameter t along the edge held by h
// (t = 0.5 is the midpoint) and rewires the edge into two colinear edges.
// One new half-edge is allocated per side; a boundary edge is split only
// on its visible side. Corner UVs, the new position and (when present)
// the new vertex normal are interpolated linearly. Returns the id of the
// inserted vertex.
func (m *Mesh) SplitEdge(h HalfEdgeID, t float64) (VertexID, error) {
	if !m.validHalfEdge(h) {
		return NoVertex, fmt.Errorf("failed to split edge: %w: half-edge %d", ErrInvalidHandle, h)
	}
	twin := m.halfEdges[h].Twin
	dest := m.halfEdges[h].Vertex
	origin := m.Origin(h)
	if origin == NoVertex {
		return NoVertex, fmt.Errorf("failed to split edge: %w: ring of half-edge %d does not close", ErrCorruptTopology, h)
	}

	// Corner UVs at the origin ends live on the ring predecessors; resolve
	// them before any pointer is rewired.
	var hPrev, twinPrev HalfEdgeID
	if m.uvs != nil {
		var err error
		hPrev, err = m.Prev(h)
		if err != nil {
			return NoVertex, fmt.Errorf("failed to split edge: %w", err)
		}
		if twin != NoHalfEdge {
			twinPrev, err = m.Prev(twin)
			if err != nil {
				return NoVertex, fmt.Errorf("failed to split edge: %w", err)
			}
		}
	}

	inserted := m.AddVertex(m.positions[origin].Lerp(m.positions[dest], t))
	if m.normals != nil {
		m.normals[inserted] = m.normals[origin].Lerp(m.normals[dest], t).Normalize()
	}

	// Visible side: h keeps the origin and now ends at the new vertex;
	// a fresh half-edge continues to the old destination.
	h2 := HalfEdgeID(len(m.halfEdges))
	m.halfEdges = append(m.halfEdges, HalfEdge{
		Vertex: dest,
		Next:   m.halfEdges[h].Next,
		Twin:   NoHalfEdge,
		Face:   m.halfEdges[h].Face,
	})
	m.halfEdges[h].Vertex = inserted
	m.halfEdges[h].Next = h2
	m.vertices[inserted].Edge = h2
	m.syncCorners()
	if m.uvs != nil {
		destUV := m.uvs[h]
		m.uvs[h2] = destUV
		m.uvs[h] = m.uvs[hPrev].Lerp(destUV, t)
	}

	if twin == NoHalfEdge {
		return inserted, nil
	}

	// Twin side mirrors the rewiring, then the four half-edges pair up as
	// (h, twin2) across origin-inserted and (h2, twin) across inserted-dest.
	twin2 := HalfEdgeID(len(m.halfEdges))
	m.halfEdges = append(m.halfEdges, HalfEdge{
		Vertex: origin,
		Next:   m.halfEdges[twin].Next,
		Twin:   h,
		Face:   m.halfEdges[twin].Face,
	})
	m.halfEdges[twin].Vertex = inserted
	m.halfEdges[twin].Next = twin2
	m.halfEdges[h].Twin = twin2
	m.halfEdges[h2].Twin = twin
	m.halfEdges[twin].Twin = h2
	m.syncCorners()
	if m.uvs != nil {
		originUV := m.uvs[twin]
		m.uvs[twin2] = originUV
		m.uvs[twin] = originUV.Lerp(m.uvs[twinPrev], t)
	}
	return inserted, nil
}

// SplitFace splits a face along the chord between two of its ring
// vertices, replacing it with two faces that share a new interior edge.
// Ring-edge twins and corner UVs carry over to the matching new edges, the
// two chord corners receive the average of the chord endpoints' corner
// UVs, and the original face is tombstoned.
//
// A chord whose endpoints are identical, adjacent on the ring, or not on
// the ring at all is a no-op: SplitFace returns (NoFace, NoFace, nil).
func (m *Mesh) SplitFace(f FaceID, a, b VertexID) (FaceID, FaceID, error) {
	if !m.liveFace(f) {
		return NoFace, NoFace, fmt.Errorf("failed to split face: %w: face %d", ErrInvalidHandle, f)
	}
	if !m.validVertex(a) || !m.validVertex(b) {
		return NoFace, NoFace, fmt.Errorf("failed to split face: %w: chord (%d, %d)", ErrInvalidHandle, a, b)
	}
	ring, err := m.FaceLoop(f)
	if err != nil {
		return NoFace, NoFace, fmt.Errorf("failed to split face: %w", err)
	}

	n := len(ring)
	verts := make([]VertexID, n)
	ia, ib := -1, -1
	for i, h := range ring {
		verts[i] = m.halfEdges[h].Vertex
		if verts[i] == a {
			ia = i
		}
		if verts[i] == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return NoFace, NoFace, nil
	}
	dist := (ib - ia + n) % n
	if dist == 0 || dist == 1 || dist == n-1 {
		return NoFace, NoFace, nil
	}

	// Capture ring state before the rewrite: corner UVs by ring index and
	// the outside twin of each directed ring edge.
	hasUV := m.uvs != nil
	cornerUV := make([]geometry.Vector2, n)
	twins := make([]HalfEdgeID, n)
	for i, h := range ring {
		if hasUV {
			cornerUV[i] = m.uvs[h]
		}
		twins[i] = m.halfEdges[h].Twin
	}
	material := m.Material(f)
	hasMaterial := m.materials != nil
	var chordUV geometry.Vector2
	if hasUV {
		chordUV = cornerUV[ia].Add(cornerUV[ib]).Mul(0.5)
	}

	vertsA := make([]VertexID, 0, dist+1)
	for k := 0; k <= dist; k++ {
		vertsA = append(vertsA, verts[(ia+k)%n])
	}
	vertsB := make([]VertexID, 0, n-dist+1)
	for k := 0; k <= n-dist; k++ {
		vertsB = append(vertsB, verts[(ib+k)%n])
	}

	faceA, err := m.MakeFace(vertsA)
	if err != nil {
		return NoFace, NoFace, fmt.Errorf("failed to split face: %w", err)
	}
	faceB, err := m.MakeFace(vertsB)
	if err != nil {
		return NoFace, NoFace, fmt.Errorf("failed to split face: %w", err)
	}
	chordA := m.rewireSubRing(faceA, ring, cornerUV, twins, ia, chordUV, hasUV)
	chordB := m.rewireSubRing(faceB, ring, cornerUV, twins, ib, chordUV, hasUV)
	m.halfEdges[chordA].Twin = chordB
	m.halfEdges[chordB].Twin = chordA
	if hasMaterial {
		m.SetMaterial(faceA, material)
		m.SetMaterial(faceB, material)
	}
	if _, err := m.DeleteFaces([]FaceID{f}); err != nil {
		return NoFace, NoFace, fmt.Errorf("failed to split face: %w", err)
	}
	return faceA, faceB, nil
}

// rewireSubRing transfers outside twins and corner UVs from the captured
// original ring onto the sub-ring of a freshly made face whose vertex path
// starts at original ring index start. The last sub-ring edge is the
// chord; its corner receives chordUV and its twin is left for the caller.
// Old ring edges lose their twin pointer as their span moves to the new
// edge. Returns the chord half-edge.
func (m *Mesh) rewireSubRing(f FaceID, ring []HalfEdgeID, cornerUV []geometry.Vector2, twins []HalfEdgeID, start int, chordUV geometry.Vector2, hasUV bool) HalfEdgeID {
	n := len(ring)
	seed := m.faces[f].Edge
	sides := 0
	for h := seed; ; h = m.halfEdges[h].Next {
		sides++
		if m.halfEdges[h].Next == seed {
			break
		}
	}

	h := seed
	for j := 0; j < sides; j, h = j+1, m.halfEdges[h].Next {
		if j == sides-1 {
			if hasUV {
				m.uvs[h] = chordUV
			}
			break
		}
		idx := (start + j + 1) % n
		old := ring[idx]
		if outside := twins[idx]; outside != NoHalfEdge {
			m.halfEdges[h].Twin = outside
			m.halfEdges[outside].Twin = h
		}
		m.halfEdges[old].Twin = NoHalfEdge
		if hasUV {
			m.uvs[h] = cornerUV[idx]
		}
	}
	return h
}
