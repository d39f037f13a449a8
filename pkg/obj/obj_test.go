package obj

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/halfedge"
	"github.com/philipparndt/gomesh/pkg/primitive"
	"github.com/philipparndt/gomesh/pkg/validate"
)

// sameCycle reports whether want and got describe the same vertex cycle,
// allowing for rotation but not reversal.
func sameCycle(want, got []halfedge.VertexID) bool {
	if len(want) != len(got) {
		return false
	}
	n := len(want)
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if got[(i+shift)%n] != want[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// cornerUVs maps each face corner's destination vertex to its UV.
func cornerUVs(t *testing.T, m *halfedge.Mesh, f halfedge.FaceID) map[halfedge.VertexID]geometry.Vector2 {
	t.Helper()
	loop, err := m.FaceLoop(f)
	require.NoError(t, err)
	out := make(map[halfedge.VertexID]geometry.Vector2, len(loop))
	for _, h := range loop {
		out[m.HalfEdge(h).Vertex] = m.UV(h)
	}
	return out
}

func TestDecodeQuadAndTriangle(t *testing.T) {
	input := `# a quad sharing an edge with a triangle
o shape
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 2 0 0
f 1 2 3 4
f 2 5 3
`
	model, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	m := model.Mesh

	assert.Equal(t, "shape", model.Name)
	assert.Equal(t, 5, m.NumVertices())
	assert.Equal(t, 2, m.NumLiveFaces())
	assert.Equal(t, geometry.NewVector3(2, 0, 0), m.Position(4))

	ring, err := m.FaceVertices(0)
	require.NoError(t, err)
	assert.True(t, sameCycle([]halfedge.VertexID{0, 1, 2, 3}, ring))

	// The shared edge 1-2 runs forward in the quad and backward in the
	// triangle, so the cache links the two rings.
	assert.Equal(t, halfedge.HalfEdgeID(6), m.HalfEdge(1).Twin)
	assert.Equal(t, halfedge.HalfEdgeID(1), m.HalfEdge(6).Twin)
}

func TestDecodeCornerForms(t *testing.T) {
	input := `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f -3/-3/-1 -2/-2/-1 -1/-1/-1
`
	model, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	m := model.Mesh

	require.Equal(t, 1, m.NumLiveFaces())
	require.True(t, m.HasUVs())
	require.True(t, m.HasNormals())

	uvs := cornerUVs(t, m, 0)
	assert.Equal(t, geometry.NewVector2(0, 0), uvs[0])
	assert.Equal(t, geometry.NewVector2(1, 0), uvs[1])
	assert.Equal(t, geometry.NewVector2(0, 1), uvs[2])

	for v := halfedge.VertexID(0); v < 3; v++ {
		assert.Equal(t, geometry.NewVector3(0, 0, 1), m.Normal(v))
	}
}

func TestDecodeNormalsWithoutUVs(t *testing.T) {
	input := `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`
	model, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.False(t, model.Mesh.HasUVs())
	assert.True(t, model.Mesh.HasNormals())
}

func TestDecodeMaterials(t *testing.T) {
	input := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
usemtl red
f 1 2 3
usemtl blue
f 1 3 4
`
	model, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"", "red", "blue"}, model.Materials)
	assert.Equal(t, 1, model.Mesh.Material(0))
	assert.Equal(t, 2, model.Mesh.Material(1))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short vertex", "v 1 2", "line 1"},
		{"bad float", "v a b c", "bad coordinate"},
		{"short face", "f 1 2", "at least 3"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4", "line 4"},
		{"malformed corner", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1/1 2 3", "malformed corner"},
		{"bare usemtl", "usemtl", "usemtl"},
		{"empty vt", "vt", "coordinate"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestEncodeBareMesh(t *testing.T) {
	model := NewModel()
	m := model.Mesh
	for _, p := range []geometry.Vector3{{X: 0}, {X: 1}, {Y: 1}} {
		m.AddVertex(p)
	}
	_, err := m.MakeFace([]halfedge.VertexID{0, 1, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, model))
	out := buf.String()

	assert.Contains(t, out, "v 1 0 0\n")
	assert.Contains(t, out, "f 1 2 3\n")
	assert.NotContains(t, out, "vt")
	assert.NotContains(t, out, "vn")
	assert.NotContains(t, out, "usemtl")
}

func TestEncodeDeduplicatesUVs(t *testing.T) {
	model := NewModel()
	m := model.Mesh
	for _, p := range []geometry.Vector3{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}} {
		m.AddVertex(p)
	}
	cache := halfedge.NewEdgeCache(m)
	for _, ring := range [][]halfedge.VertexID{{0, 1, 2}, {0, 2, 3}} {
		f, err := m.MakeFace(ring)
		require.NoError(t, err)
		loop, err := m.FaceLoop(f)
		require.NoError(t, err)
		for k, h := range loop {
			v := ring[(k+1)%len(ring)]
			m.SetUV(h, geometry.NewVector2(m.Position(v).X, m.Position(v).Y))
		}
		require.NoError(t, cache.AddFace(f))
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, model))

	// Four distinct corner UVs across six corners.
	assert.Equal(t, 4, strings.Count(buf.String(), "\nvt "))
}

func TestRoundTripMaterialsAndNormals(t *testing.T) {
	model := NewModel()
	m := model.Mesh
	for _, p := range []geometry.Vector3{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}} {
		v := m.AddVertex(p)
		m.SetNormal(v, geometry.NewVector3(0, 0, 1))
	}
	f0, err := m.MakeFace([]halfedge.VertexID{0, 1, 2})
	require.NoError(t, err)
	f1, err := m.MakeFace([]halfedge.VertexID{0, 2, 3})
	require.NoError(t, err)
	m.SetMaterial(f0, model.MaterialSlot("red"))
	m.SetMaterial(f1, model.MaterialSlot("blue"))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, model))
	decoded, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "red", "blue"}, decoded.Materials)
	assert.Equal(t, 1, decoded.Mesh.Material(0))
	assert.Equal(t, 2, decoded.Mesh.Material(1))
	require.True(t, decoded.Mesh.HasNormals())
	assert.Equal(t, geometry.NewVector3(0, 0, 1), decoded.Mesh.Normal(3))
}

func TestRoundTripTorus(t *testing.T) {
	mesh, err := primitive.Torus(primitive.TorusOptions{MajorSegments: 6, MinorSegments: 4})
	require.NoError(t, err)
	model := &Model{Name: "ring", Mesh: mesh}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, model))
	decoded, err := Decode(&buf)
	require.NoError(t, err)
	got := decoded.Mesh

	assert.Equal(t, "ring", decoded.Name)
	require.Equal(t, mesh.NumVertices(), got.NumVertices())
	require.Equal(t, mesh.NumLiveFaces(), got.NumLiveFaces())
	assert.Equal(t, mesh.Positions(), got.Positions())

	// Faces come back in encode order; rings may be rotated.
	for _, f := range mesh.LiveFaces() {
		want, err := mesh.FaceVertices(f)
		require.NoError(t, err)
		ring, err := got.FaceVertices(f)
		require.NoError(t, err)
		assert.True(t, sameCycle(want, ring), "face %d: want cycle %v, got %v", f, want, ring)

		// Corner UVs survive, including the wrap seam where one vertex
		// carries different UVs on different faces.
		assert.Equal(t, cornerUVs(t, mesh, f), cornerUVs(t, got, f))
	}

	genus, err := validate.Genus(got)
	require.NoError(t, err)
	assert.Equal(t, 1, genus)
}

func TestSaveAndLoad(t *testing.T) {
	mesh, err := primitive.Box(primitive.BoxOptions{})
	require.NoError(t, err)
	model := &Model{Name: "box", Mesh: mesh}

	path := filepath.Join(t.TempDir(), "box.obj")
	require.NoError(t, Save(path, model))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "box", loaded.Name)
	assert.Equal(t, 8, loaded.Mesh.NumVertices())
	assert.Equal(t, 6, loaded.Mesh.NumLiveFaces())

	watertight, err := validate.IsWatertight(loaded.Mesh)
	require.NoError(t, err)
	assert.True(t, watertight)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.obj"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}
