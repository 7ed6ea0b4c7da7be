package openglhelper

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestParseOBJTriangle(t *testing.T) {
	src := `
# one triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`
	meshes, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}

	m := meshes[0]
	if !reflect.DeepEqual(m.Indices, []uint32{0, 1, 2}) {
		t.Errorf("Indices = %v, want [0 1 2]", m.Indices)
	}
	wantVertices := []float32{
		0, 0, 0, 0, 0, 1, 0, 0,
		1, 0, 0, 0, 0, 1, 1, 0,
		0, 1, 0, 0, 0, 1, 0, 1,
	}
	if !reflect.DeepEqual(m.Vertices, wantVertices) {
		t.Errorf("Vertices = %v, want %v", m.Vertices, wantVertices)
	}
}

func TestParseOBJQuadIsTriangulated(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	meshes, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}

	m := meshes[0]
	if len(m.Indices) != 6 {
		t.Errorf("got %d indices, want 6 (two triangles)", len(m.Indices))
	}
	if m.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4 (shared corners de-duplicated)", m.VertexCount())
	}
	for _, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Errorf("index %d out of range for %d vertices", idx, m.VertexCount())
		}
	}
}

func TestParseOBJNormalOnlyCorners(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 -1
f 1//1 2//1 3//1
`
	meshes, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}

	m := meshes[0]
	if m.VertexCount() != 3 {
		t.Fatalf("VertexCount() = %d, want 3", m.VertexCount())
	}
	// Second vertex: position (1,0,0), normal (0,0,-1), no texture coordinates
	got := m.Vertices[FloatsPerVertex : 2*FloatsPerVertex]
	want := []float32{1, 0, 0, 0, 0, -1, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("vertex 1 = %v, want %v", got, want)
	}
}

func TestParseOBJGroupsSplitMeshes(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
g first
f 1 2 3
g second
f 2 4 3
f 1 2 4
g empty
`
	meshes, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("got %d meshes, want 2 (empty groups are dropped)", len(meshes))
	}
	if meshes[0].Name != "first" || meshes[1].Name != "second" {
		t.Errorf("names = %q, %q, want first, second", meshes[0].Name, meshes[1].Name)
	}
	if len(meshes[1].Indices) != 6 {
		t.Errorf("second mesh has %d indices, want 6", len(meshes[1].Indices))
	}
	// Indices restart per mesh
	if meshes[1].Indices[0] != 0 {
		t.Errorf("second mesh starts at index %d, want 0", meshes[1].Indices[0])
	}
	if meshes[1].VertexCount() != 4 {
		t.Errorf("second mesh has %d vertices, want 4", meshes[1].VertexCount())
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"no faces", "v 0 0 0\nv 1 0 0\nv 0 1 0\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nf 1 2 3\n"},
		{"bad number", "v 0 x 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if meshes, err := ParseOBJ(strings.NewReader(tt.src)); err == nil {
				t.Fatalf("ParseOBJ() = %d meshes, want error", len(meshes))
			}
		})
	}
}

func TestParseOBJBundledCube(t *testing.T) {
	f, err := os.Open("../../assets/models/cube.obj")
	if err != nil {
		t.Skipf("cube asset not available: %v", err)
	}
	defer f.Close()

	meshes, err := ParseOBJ(f)
	if err != nil {
		t.Fatalf("ParseOBJ() error = %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}
	if got := len(meshes[0].Indices); got != 36 {
		t.Errorf("cube has %d indices, want 36", got)
	}
	if got := meshes[0].VertexCount(); got != 24 {
		t.Errorf("cube has %d vertices, want 24", got)
	}
}
