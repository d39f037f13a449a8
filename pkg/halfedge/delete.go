package halfedge

import "fmt"

// DeleteFaces tombstones the given faces: each ring half-edge is detached
// (its Face becomes NoFace) and the face slot is emptied. Half-edges are
// retained, not reclaimed, so all other ids stay stable. Ids that do not
// resolve to a live face are skipped. Returns the number of faces removed.
func (m *Mesh) DeleteFaces(faces []FaceID) (int, error) {
	removed := 0
	for _, f := range faces {
		if !m.liveFace(f) {
			continue
		}
		ring, err := m.FaceLoop(f)
		if err != nil {
			return removed, fmt.Errorf("failed to delete face %d: %w", f, err)
		}
		for _, h := range ring {
			m.halfEdges[h].Face = NoFace
		}
		m.faces[f].Edge = NoHalfEdge
		removed++
	}
	if removed > 0 {
		Logger().Debug("deleted faces", "count", removed)
	}
	return removed, nil
}
