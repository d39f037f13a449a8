package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
)

// Load reads an OBJ file from disk.
func Load(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	model, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return model, nil
}

// Decode parses OBJ text into a Model. All objects in the stream are
// flattened into one mesh. Faces are wired through an edge cache, so
// edges shared between faces come out twin-linked. Texture coordinates
// attach to corners, which keeps UV seams without splitting geometry.
func Decode(r io.Reader) (*Model, error) {
	model := NewModel()
	cache := halfedge.NewEdgeCache(model.Mesh)

	var (
		verts    []halfedge.VertexID
		uvs      []geometry.Vector2
		normals  []geometry.Vector3
		material int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVector3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			verts = append(verts, model.Mesh.AddVertex(p))

		case "vt":
			uv, err := parseVector2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: texture coordinate: %w", lineNo, err)
			}
			uvs = append(uvs, uv)

		case "vn":
			n, err := parseVector3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)

		case "f":
			if err := decodeFace(model, cache, fields[1:], verts, uvs, normals, material); err != nil {
				return nil, fmt.Errorf("line %d: face: %w", lineNo, err)
			}

		case "o":
			if model.Name == "" && len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "usemtl":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: usemtl without a name", lineNo)
			}
			material = model.MaterialSlot(fields[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return model, nil
}

// corner holds the 1-based indices of one face corner, zero where absent.
type corner struct {
	v, vt, vn int
}

func decodeFace(model *Model, cache *halfedge.EdgeCache, args []string, verts []halfedge.VertexID, uvs []geometry.Vector2, normals []geometry.Vector3, material int) error {
	if len(args) < 3 {
		return fmt.Errorf("needs at least 3 corners, got %d", len(args))
	}

	mesh := model.Mesh
	ring := make([]halfedge.VertexID, len(args))
	cornerUVs := make([]geometry.Vector2, len(args))
	hasUV := false

	for i, arg := range args {
		c, err := parseCorner(arg)
		if err != nil {
			return err
		}

		vi, err := resolveIndex(c.v, len(verts))
		if err != nil {
			return fmt.Errorf("corner %q: %w", arg, err)
		}
		ring[i] = verts[vi]

		if c.vt != 0 {
			ti, err := resolveIndex(c.vt, len(uvs))
			if err != nil {
				return fmt.Errorf("corner %q: %w", arg, err)
			}
			cornerUVs[i] = uvs[ti]
			hasUV = true
		}
		if c.vn != 0 {
			ni, err := resolveIndex(c.vn, len(normals))
			if err != nil {
				return fmt.Errorf("corner %q: %w", arg, err)
			}
			mesh.SetNormal(ring[i], normals[ni])
		}
	}

	f, err := mesh.MakeFace(ring)
	if err != nil {
		return err
	}
	if material != 0 {
		mesh.SetMaterial(f, material)
	}
	if hasUV {
		loop, err := mesh.FaceLoop(f)
		if err != nil {
			return err
		}
		for k, h := range loop {
			mesh.SetUV(h, cornerUVs[(k+1)%len(loop)])
		}
	}
	return cache.AddFace(f)
}

// parseCorner splits a face corner of the form v, v/vt, v//vn or
// v/vt/vn.
func parseCorner(s string) (corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return corner{}, fmt.Errorf("malformed corner %q", s)
	}

	var c corner
	var err error
	if c.v, err = strconv.Atoi(parts[0]); err != nil {
		return corner{}, fmt.Errorf("malformed corner %q", s)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = strconv.Atoi(parts[1]); err != nil {
			return corner{}, fmt.Errorf("malformed corner %q", s)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = strconv.Atoi(parts[2]); err != nil {
			return corner{}, fmt.Errorf("malformed corner %q", s)
		}
	}
	return c, nil
}

// resolveIndex turns a 1-based OBJ index into a 0-based slice index.
// Negative indices count back from the end of the list read so far.
func resolveIndex(idx, n int) (int, error) {
	switch {
	case idx > 0 && idx <= n:
		return idx - 1, nil
	case idx < 0 && n+idx >= 0:
		return n + idx, nil
	}
	return 0, fmt.Errorf("index %d out of range (have %d)", idx, n)
}

func parseVector3(fields []string) (geometry.Vector3, error) {
	if len(fields) < 3 {
		return geometry.Vector3{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	var coords [3]float64
	for i := range coords {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("bad coordinate %q", fields[i])
		}
		coords[i] = v
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

func parseVector2(fields []string) (geometry.Vector2, error) {
	if len(fields) == 0 {
		return geometry.Vector2{}, fmt.Errorf("expected at least 1 coordinate")
	}
	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geometry.Vector2{}, fmt.Errorf("bad coordinate %q", fields[0])
	}
	v := 0.0
	if len(fields) > 1 {
		if v, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return geometry.Vector2{}, fmt.Errorf("bad coordinate %q", fields[1])
		}
	}
	return geometry.NewVector2(u, v), nil
}
