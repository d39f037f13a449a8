// Package validate analyzes half-edge meshes: structural integrity
// reports, edge classification, genus and connected components, plus
// degenerate-geometry heuristics. Validation never mutates the mesh and
// never blocks an edit; callers decide how to act on a report.
package validate

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// Default tolerances for the geometric checks.
const (
	DefaultPositionTolerance = 1e-9
	DefaultAreaTolerance     = 1e-12
	DefaultWindingThreshold  = -0.5
)

// Options configures the geometric side of CheckMesh. Zero fields fall
// back to the defaults.
type Options struct {
	// PositionTolerance is the distance under which two vertices count
	// as duplicates.
	PositionTolerance float64
	// AreaTolerance is the area under which a face counts as zero-area,
	// and the cross-product length under which corners count as
	// collinear.
	AreaTolerance float64
	// WindingThreshold flags edge-adjacent faces whose unit normal dot
	// product falls below it.
	WindingThreshold float64
}

// DefaultOptions returns the default check tolerances.
func DefaultOptions() Options {
	return Options{
		PositionTolerance: DefaultPositionTolerance,
		AreaTolerance:     DefaultAreaTolerance,
		WindingThreshold:  DefaultWindingThreshold,
	}
}

// Report is the structured result of a validation pass. Errors name
// structurally broken records that other operators would trip over;
// warnings name suspicious but legal geometry.
type Report struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// CheckMesh validates mesh structure and geometry. It always returns a
// report and never fails the run itself. Geometry warnings are only
// gathered once the structure checks pass, since they walk the very
// pointers those checks verify.
func CheckMesh(m *halfedge.Mesh, opts Options) Report {
	if opts.PositionTolerance == 0 {
		opts.PositionTolerance = DefaultPositionTolerance
	}
	if opts.AreaTolerance == 0 {
		opts.AreaTolerance = DefaultAreaTolerance
	}
	if opts.WindingThreshold == 0 {
		opts.WindingThreshold = DefaultWindingThreshold
	}

	var report Report
	report.Errors = structuralErrors(m)
	if len(report.Errors) == 0 {
		report.Warnings = geometryWarnings(m, opts)
	}
	report.Valid = len(report.Errors) == 0
	return report
}

// structuralErrors scans the records for broken invariants. Range errors
// are collected first; the pointer-chasing checks only run on a mesh whose
// ids are all in range, since walking a ring through an out-of-range id
// cannot be done safely.
func structuralErrors(m *halfedge.Mesh) []string {
	numVertices := m.NumVertices()
	numHalfEdges := m.NumHalfEdges()
	numFaces := m.NumFaces()

	var errs []string
	for i, he := range m.HalfEdges() {
		if he.Vertex < 0 || int(he.Vertex) >= numVertices {
			errs = append(errs, fmt.Sprintf("half-edge %d points to vertex %d of %d", i, he.Vertex, numVertices))
		}
		if he.Next < 0 || int(he.Next) >= numHalfEdges {
			errs = append(errs, fmt.Sprintf("half-edge %d next %d out of range", i, he.Next))
		}
		if he.Twin != halfedge.NoHalfEdge && (he.Twin < 0 || int(he.Twin) >= numHalfEdges) {
			errs = append(errs, fmt.Sprintf("half-edge %d twin %d out of range", i, he.Twin))
		}
		if he.Face != halfedge.NoFace && (he.Face < 0 || int(he.Face) >= numFaces) {
			errs = append(errs, fmt.Sprintf("half-edge %d owned by face %d of %d", i, he.Face, numFaces))
		}
	}
	for i, v := range m.Vertices() {
		if v.Edge != halfedge.NoHalfEdge && (v.Edge < 0 || int(v.Edge) >= numHalfEdges) {
			errs = append(errs, fmt.Sprintf("vertex %d outgoing edge %d out of range", i, v.Edge))
		}
	}
	for _, f := range m.LiveFaces() {
		edge := m.Face(f).Edge
		if edge < 0 || int(edge) >= numHalfEdges {
			errs = append(errs, fmt.Sprintf("face %d seed edge %d out of range", f, edge))
		}
	}
	if len(m.Positions()) != numVertices {
		errs = append(errs, fmt.Sprintf("position store holds %d entries for %d vertices", len(m.Positions()), numVertices))
	}
	if m.HasNormals() && len(m.Normals()) != numVertices {
		errs = append(errs, fmt.Sprintf("normal store holds %d entries for %d vertices", len(m.Normals()), numVertices))
	}
	if m.HasUVs() && len(m.UVs()) != numHalfEdges {
		errs = append(errs, fmt.Sprintf("UV store holds %d entries for %d half-edges", len(m.UVs()), numHalfEdges))
	}
	if m.HasMaterials() && len(m.Materials()) != numFaces {
		errs = append(errs, fmt.Sprintf("material store holds %d entries for %d faces", len(m.Materials()), numFaces))
	}
	if len(errs) > 0 {
		return errs
	}

	for i, he := range m.HalfEdges() {
		if he.Twin == halfedge.NoHalfEdge {
			continue
		}
		if m.HalfEdge(he.Twin).Twin != halfedge.HalfEdgeID(i) {
			errs = append(errs, fmt.Sprintf("half-edge %d twin %d does not point back", i, he.Twin))
		}
	}
	for _, f := range m.LiveFaces() {
		ring, err := m.FaceLoop(f)
		if err != nil {
			errs = append(errs, fmt.Sprintf("face %d ring does not close", f))
			continue
		}
		if len(ring) < 3 {
			errs = append(errs, fmt.Sprintf("face %d has %d sides", f, len(ring)))
		}
		for _, h := range ring {
			if m.HalfEdge(h).Face != f {
				errs = append(errs, fmt.Sprintf("face %d ring edge %d owned by face %d", f, h, m.HalfEdge(h).Face))
			}
		}
	}
	for i, v := range m.Vertices() {
		if v.Edge == halfedge.NoHalfEdge {
			continue
		}
		if origin := m.Origin(v.Edge); origin != halfedge.VertexID(i) {
			errs = append(errs, fmt.Sprintf("vertex %d outgoing edge %d originates at %d", i, v.Edge, origin))
		}
	}
	return errs
}
