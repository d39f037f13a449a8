package halfedge

// VertexID indexes a vertex record in a Mesh.
type VertexID int

// HalfEdgeID indexes a half-edge record in a Mesh.
type HalfEdgeID int

// FaceID indexes a face record in a Mesh.
type FaceID int

// Sentinel ids marking an absent reference.
const (
	NoVertex   VertexID   = -1
	NoHalfEdge HalfEdgeID = -1
	NoFace     FaceID     = -1
)
