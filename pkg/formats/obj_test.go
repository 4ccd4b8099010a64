package formats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const cubeFaceOBJ = `# a single quad split into two triangles
o panel
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJ_Quad(t *testing.T) {
	mesh, err := ParseOBJ([]byte(cubeFaceOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if mesh.Name != "panel" {
		t.Errorf("expected name 'panel', got %q", mesh.Name)
	}
	if len(mesh.Positions) != 4 {
		t.Errorf("expected 4 positions, got %d", len(mesh.Positions))
	}
	if len(mesh.Faces) != 2 {
		t.Fatalf("expected quad to fan into 2 faces, got %d", len(mesh.Faces))
	}

	second := mesh.Faces[1]
	if second.V != [3]int{0, 2, 3} {
		t.Errorf("expected second face V = [0 2 3], got %v", second.V)
	}
	if second.VT != [3]int{0, 2, 3} {
		t.Errorf("expected second face VT = [0 2 3], got %v", second.VT)
	}
	if second.VN != [3]int{0, 0, 0} {
		t.Errorf("expected second face VN = [0 0 0], got %v", second.VN)
	}
}

func TestParseOBJ_PositionOnlyAndNegativeIndices(t *testing.T) {
	data := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	mesh, err := ParseOBJ([]byte(data))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	f := mesh.Faces[0]
	if f.V != [3]int{0, 1, 2} {
		t.Errorf("expected V = [0 1 2], got %v", f.V)
	}
	if f.VT != [3]int{-1, -1, -1} || f.VN != [3]int{-1, -1, -1} {
		t.Errorf("expected absent VT/VN, got %v / %v", f.VT, f.VN)
	}
}

func TestParseOBJ_SkippedNormalSlot(t *testing.T) {
	data := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf 1//1 2//1 3//1\n"
	mesh, err := ParseOBJ([]byte(data))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	f := mesh.Faces[0]
	if f.VT != [3]int{-1, -1, -1} {
		t.Errorf("expected absent VT, got %v", f.VT)
	}
	if f.VN != [3]int{0, 0, 0} {
		t.Errorf("expected VN = [0 0 0], got %v", f.VN)
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"bad number", "v 0 zero 0\n", ErrInvalidOBJNumber},
		{"short vertex", "v 0 0\n", ErrInvalidOBJNumber},
		{"index out of range", "v 0 0 0\nf 1 2 3\n", ErrIndexOutOfRange},
		{"degenerate face", "v 0 0 0\nv 1 0 0\nf 1 2\n", ErrInvalidOBJFace},
		{"garbage index", "v 0 0 0\nf a b c\n", ErrInvalidOBJFace},
		{"no geometry", "# nothing here\n", ErrEmptyMesh},
		{"vertices without faces", "v 0 0 0\nv 1 0 0\nv 0 1 0\n", ErrEmptyMesh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseOBJFile_NamesFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teapot.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	mesh, err := ParseOBJFile(path)
	if err != nil {
		t.Fatalf("ParseOBJFile failed: %v", err)
	}
	if mesh.Name != "teapot" {
		t.Errorf("expected name 'teapot', got %q", mesh.Name)
	}
}

func TestParseOBJFile_Missing(t *testing.T) {
	_, err := ParseOBJFile(filepath.Join(t.TempDir(), "missing.obj"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestParseOBJ_LegacyEncodedName(t *testing.T) {
	data := "\xef\xbb\xbfo caf\xc3\xa9\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	mesh, err := ParseOBJ([]byte(data))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if mesh.Name != "café" {
		t.Errorf("expected name 'café', got %q", mesh.Name)
	}

	mesh, err = ParseOBJ([]byte("o caf\xe9\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if mesh.Name != "café" {
		t.Errorf("expected Windows-1252 name decoded to 'café', got %q", mesh.Name)
	}
}
