// Package halfedge implements an editable half-edge mesh: vertex, half-edge
// and face records linked by next/twin/face adjacency, with per-vertex,
// per-corner and per-face attributes stored alongside the topology.
package halfedge

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// Vertex is a vertex record. Edge is one outgoing half-edge, or NoHalfEdge
// if the vertex is isolated.
type Vertex struct {
	Edge HalfEdgeID
}

// HalfEdge is a directed edge record. Vertex is the destination the edge
// points to; the origin is derived from the ring (or the twin). Next
// advances counter-clockwise around the owning face. Twin is the
// opposite-direction half-edge on the same undirected edge, or NoHalfEdge
// on a boundary. Face is the owning face, or NoFace once detached.
type HalfEdge struct {
	Vertex VertexID
	Next   HalfEdgeID
	Twin   HalfEdgeID
	Face   FaceID
}

// Face is a face record holding one half-edge of its ring. The side count
// is not stored; it is derived by walking Next until the ring closes.
// A tombstoned face keeps its slot but its Edge is NoHalfEdge.
type Face struct {
	Edge HalfEdgeID
}

// Alive reports whether the face still owns a ring.
func (f Face) Alive() bool { return f.Edge != NoHalfEdge }

// Mesh is an editable half-edge mesh. Ids are stable handles: deleted
// faces are tombstoned in place and slots are never reused, so a retained
// id keeps naming the same element for the lifetime of the mesh. A stale
// face id is detectable through Face.Alive rather than silently aliasing
// a newer element.
//
// A Mesh is not safe for concurrent mutation. Confine it to a single
// goroutine or serialize access at the call boundary; individual operators
// perform multiple dependent writes and are not atomic.
type Mesh struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face

	positions []geometry.Vector3
	normals   []geometry.Vector3
	uvs       []geometry.Vector2
	materials []int

	vertexMeta map[VertexID]map[string]MetaValue
	edgeMeta   map[HalfEdgeID]map[string]MetaValue
	faceMeta   map[FaceID]map[string]MetaValue
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// Vertices returns the live vertex container. The slice aliases the mesh
// storage; treat it as read-only.
func (m *Mesh) Vertices() []Vertex { return m.vertices }

// HalfEdges returns the live half-edge container. The slice aliases the
// mesh storage; treat it as read-only.
func (m *Mesh) HalfEdges() []HalfEdge { return m.halfEdges }

// Faces returns the live face container including tombstoned slots. The
// slice aliases the mesh storage; treat it as read-only.
func (m *Mesh) Faces() []Face { return m.faces }

// NumVertices returns the number of vertex slots.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumHalfEdges returns the number of half-edge slots.
func (m *Mesh) NumHalfEdges() int { return len(m.halfEdges) }

// NumFaces returns the number of face slots including tombstones.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// NumLiveFaces returns the number of faces that are not tombstoned.
func (m *Mesh) NumLiveFaces() int {
	n := 0
	for _, f := range m.faces {
		if f.Alive() {
			n++
		}
	}
	return n
}

// LiveFaces returns the ids of all faces that are not tombstoned.
func (m *Mesh) LiveFaces() []FaceID {
	ids := make([]FaceID, 0, len(m.faces))
	for i, f := range m.faces {
		if f.Alive() {
			ids = append(ids, FaceID(i))
		}
	}
	return ids
}

// Vertex returns the vertex record for id.
func (m *Mesh) Vertex(id VertexID) Vertex { return m.vertices[id] }

// HalfEdge returns the half-edge record for id.
func (m *Mesh) HalfEdge(id HalfEdgeID) HalfEdge { return m.halfEdges[id] }

// Face returns the face record for id.
func (m *Mesh) Face(id FaceID) Face { return m.faces[id] }

func (m *Mesh) validVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(m.vertices)
}

func (m *Mesh) validHalfEdge(id HalfEdgeID) bool {
	return id >= 0 && int(id) < len(m.halfEdges)
}

func (m *Mesh) validFace(id FaceID) bool {
	return id >= 0 && int(id) < len(m.faces)
}

func (m *Mesh) liveFace(id FaceID) bool {
	return m.validFace(id) && m.faces[id].Alive()
}

// AddVertex appends a new isolated vertex at the given position and
// returns its id.
func (m *Mesh) AddVertex(position geometry.Vector3) VertexID {
	id := VertexID(len(m.vertices))
	m.vertices = append(m.vertices, Vertex{Edge: NoHalfEdge})
	m.positions = append(m.positions, position)
	if m.normals != nil {
		m.normals = append(m.normals, geometry.Vector3{})
	}
	return id
}

// MakeFace allocates a face and its half-edge ring from an ordered vertex
// list of length >= 3. Half-edge i of the new ring originates at verts[i]
// and points to verts[i+1] (wrapping), so the ring follows the given
// winding. MakeFace never links twins against other faces; cross-face edge
// sharing is the job of an EdgeCache.
func (m *Mesh) MakeFace(verts []VertexID) (FaceID, error) {
	if len(verts) < 3 {
		return NoFace, fmt.Errorf("failed to make face: need at least 3 vertices, got %d", len(verts))
	}
	for _, v := range verts {
		if !m.validVertex(v) {
			return NoFace, fmt.Errorf("failed to make face: %w: vertex %d", ErrInvalidHandle, v)
		}
	}

	n := len(verts)
	base := HalfEdgeID(len(m.halfEdges))
	faceID := FaceID(len(m.faces))
	for i := 0; i < n; i++ {
		m.halfEdges = append(m.halfEdges, HalfEdge{
			Vertex: verts[(i+1)%n],
			Next:   base + HalfEdgeID((i+1)%n),
			Twin:   NoHalfEdge,
			Face:   faceID,
		})
	}
	m.faces = append(m.faces, Face{Edge: base})

	for i, v := range verts {
		if m.vertices[v].Edge == NoHalfEdge {
			m.vertices[v].Edge = base + HalfEdgeID(i)
		}
	}

	m.syncCorners()
	m.syncFaceAttrs()
	return faceID, nil
}

// LinkTwins registers two half-edges as the opposite directions of one
// edge. Both must be unlinked; spans are not geometry-checked, so callers
// own the invariant that the two actually run between the same vertices.
func (m *Mesh) LinkTwins(a, b HalfEdgeID) error {
	if !m.validHalfEdge(a) {
		return fmt.Errorf("failed to link twins: %w: half-edge %d", ErrInvalidHandle, a)
	}
	if !m.validHalfEdge(b) {
		return fmt.Errorf("failed to link twins: %w: half-edge %d", ErrInvalidHandle, b)
	}
	if a == b {
		return fmt.Errorf("failed to link twins: half-edge %d cannot twin itself", a)
	}
	if m.halfEdges[a].Twin != NoHalfEdge || m.halfEdges[b].Twin != NoHalfEdge {
		return fmt.Errorf("failed to link twins: half-edge already linked")
	}
	m.halfEdges[a].Twin = b
	m.halfEdges[b].Twin = a
	return nil
}

// UnlinkTwin severs the twin link of a half-edge on both sides and returns
// the former twin, or NoHalfEdge if there was none.
func (m *Mesh) UnlinkTwin(h HalfEdgeID) (HalfEdgeID, error) {
	if !m.validHalfEdge(h) {
		return NoHalfEdge, fmt.Errorf("failed to unlink twin: %w: half-edge %d", ErrInvalidHandle, h)
	}
	twin := m.halfEdges[h].Twin
	if twin == NoHalfEdge {
		return NoHalfEdge, nil
	}
	m.halfEdges[twin].Twin = NoHalfEdge
	m.halfEdges[h].Twin = NoHalfEdge
	return twin, nil
}
