package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lumenlab/pkg/formats"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// quadMesh is a unit square in the XY plane made of two triangles sharing
// the diagonal, with no normals or texture coordinates.
func quadMesh() *formats.Mesh {
	none := [3]int{-1, -1, -1}
	return &formats.Mesh{
		Name: "quad",
		Positions: []math.Vec3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
		Faces: []formats.Face{
			{V: [3]int{0, 1, 2}, VT: none, VN: none},
			{V: [3]int{0, 2, 3}, VT: none, VN: none},
		},
	}
}

func TestFromMesh_SharesVerticesAndSmoothsNormals(t *testing.T) {
	m := FromMesh(quadMesh())

	assert.Equal(t, "quad", m.Name)
	assert.Len(t, m.Vertices, 4)
	assert.Len(t, m.Faces, 2)
	assert.False(t, m.HasTexCoords)
	for _, v := range m.Vertices {
		assert.InDelta(t, 1, v.Normal.Z, 1e-6)
		assert.Equal(t, v.Position, v.World)
	}
}

func TestFromMesh_KeepsExplicitNormals(t *testing.T) {
	mesh := quadMesh()
	mesh.Normals = []math.Vec3{{X: 0, Y: 0, Z: 2}}
	for i := range mesh.Faces {
		mesh.Faces[i].VN = [3]int{0, 0, 0}
	}

	m := FromMesh(mesh)
	for _, v := range m.Vertices {
		assert.Equal(t, math.V3(0, 0, 1), v.Normal)
	}
}

func TestFaceNormal_HonoursWinding(t *testing.T) {
	m := FromMesh(quadMesh())
	f := m.Faces[0]

	assert.InDelta(t, 1, m.FaceNormal(f).Z, 1e-6)
	m.SetClockwise(true)
	assert.InDelta(t, -1, m.FaceNormal(f).Z, 1e-6)
}

func TestBuildTextureCoords(t *testing.T) {
	m := FromMesh(quadMesh())
	m.BuildTextureCoords()

	assert.True(t, m.HasTexCoords)
	for _, v := range m.Vertices {
		assert.GreaterOrEqual(t, v.TexCoord.X, float32(0))
		assert.LessOrEqual(t, v.TexCoord.X, float32(1))
		assert.GreaterOrEqual(t, v.TexCoord.Y, float32(0))
		assert.LessOrEqual(t, v.TexCoord.Y, float32(1))
	}
}

func TestBuildTextureCoords_KeepsExisting(t *testing.T) {
	mesh := quadMesh()
	mesh.TexCoords = []math.Vec2{{X: 0.1, Y: 0.2}}
	for i := range mesh.Faces {
		mesh.Faces[i].VT = [3]int{0, 0, 0}
	}
	m := FromMesh(mesh)
	require.True(t, m.HasTexCoords)

	m.BuildTextureCoords()
	for _, v := range m.Vertices {
		assert.Equal(t, math.Vec2{X: 0.1, Y: 0.2}, v.TexCoord)
	}
}

func TestMultiplyAll_ReturnsTransformedCopy(t *testing.T) {
	m := FromMesh(quadMesh())
	m.SetMaterial(Material{SpecularExponent: 7})

	moved := m.MultiplyAll(math.Translate(2, 1, 0))

	assert.Equal(t, math.V3(0, 0, 0), m.Vertices[0].Position, "input untouched")
	assert.Equal(t, math.V3(2, 1, 0), moved.Vertices[0].Position)
	assert.Equal(t, math.V3(2, 1, 0), moved.Vertices[0].World)
	assert.Equal(t, m.Vertices[0].Normal, moved.Vertices[0].Normal)
	assert.Equal(t, 7, moved.Material().SpecularExponent)
}

func TestBounds(t *testing.T) {
	b := FromMesh(quadMesh()).Bounds()
	assert.Equal(t, math.V3(0, 0, 0), b.Min)
	assert.Equal(t, math.V3(1, 1, 0), b.Max)
	assert.Equal(t, math.V3(0.5, 0.5, 0), b.Center())
}

func TestParser_ParseFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(good, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644))

	m, err := Parser{}.ParseFile(good)
	require.NoError(t, err)
	assert.Equal(t, "tri", m.Name)
	assert.Len(t, m.Faces, 1)
}

func TestParser_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.obj")
	require.NoError(t, os.WriteFile(bad, []byte("v 1 one 1\n"), 0644))

	_, err := Parser{}.ParseFile(bad)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, bad, perr.Path)
	assert.ErrorIs(t, err, formats.ErrInvalidOBJNumber)

	_, err = Parser{}.ParseFile(filepath.Join(dir, "scene.fbx"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
