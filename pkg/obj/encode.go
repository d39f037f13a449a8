package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// Save writes the model to a file.
func Save(filename string, model *Model) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, model); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// Encode writes the model as OBJ text. All vertices are written in id
// order, corner texture coordinates are deduplicated into the vt list,
// and normals are written one per vertex. A usemtl line is emitted
// whenever the material slot changes to a named one; unnamed slots
// produce no line, so faces on them inherit the previous material on
// re-import.
func Encode(w io.Writer, model *Model) error {
	mesh := model.Mesh
	bw := bufio.NewWriter(w)

	if model.Name != "" {
		fmt.Fprintf(bw, "o %s\n", model.Name)
	}

	for _, p := range mesh.Positions() {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}

	vtIndex := make(map[geometry.Vector2]int)
	if mesh.HasUVs() {
		for _, f := range mesh.LiveFaces() {
			loop, err := mesh.FaceLoop(f)
			if err != nil {
				return fmt.Errorf("failed to walk face %d: %w", f, err)
			}
			for _, h := range loop {
				uv := mesh.UV(h)
				if _, ok := vtIndex[uv]; !ok {
					vtIndex[uv] = len(vtIndex) + 1
					fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
				}
			}
		}
	}

	if mesh.HasNormals() {
		for _, n := range mesh.Normals() {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
	}

	material := 0
	for _, f := range mesh.LiveFaces() {
		if slot := mesh.Material(f); slot != material {
			material = slot
			if name := model.MaterialName(slot); name != "" {
				fmt.Fprintf(bw, "usemtl %s\n", name)
			}
		}

		loop, err := mesh.FaceLoop(f)
		if err != nil {
			return fmt.Errorf("failed to walk face %d: %w", f, err)
		}

		// Each ring edge points at its destination corner. Starting the
		// line at the closing edge makes it read from the seed edge's
		// origin, the order the ring was built with.
		bw.WriteString("f")
		for k := range loop {
			h := loop[(k+len(loop)-1)%len(loop)]
			bw.WriteByte(' ')
			bw.WriteString(encodeCorner(mesh, h, vtIndex))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// encodeCorner renders one face corner in the densest index form the
// mesh's attributes allow. Normals are per vertex, so the vn index
// always equals the v index.
func encodeCorner(mesh *halfedge.Mesh, h halfedge.HalfEdgeID, vtIndex map[geometry.Vector2]int) string {
	v := int(mesh.HalfEdge(h).Vertex) + 1
	switch {
	case mesh.HasUVs() && mesh.HasNormals():
		return fmt.Sprintf("%d/%d/%d", v, vtIndex[mesh.UV(h)], v)
	case mesh.HasUVs():
		return fmt.Sprintf("%d/%d", v, vtIndex[mesh.UV(h)])
	case mesh.HasNormals():
		return fmt.Sprintf("%d//%d", v, v)
	}
	return strconv.Itoa(v)
}
