package shading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/lumenlab/internal/engine/lighting"
	"github.com/Faultbox/lumenlab/internal/engine/model"
	"github.com/Faultbox/lumenlab/pkg/formats"
	"github.com/Faultbox/lumenlab/pkg/math"
)

func TestParseMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Mode
	}{
		{"flat", Flat},
		{"Gouraud", Gouraud},
		{" PHONG ", Phong},
	} {
		got, err := ParseMode(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.want, mustParse(t, got.String()))
	}

	_, err := ParseMode("toon")
	assert.Error(t, err)
}

func mustParse(t *testing.T, s string) Mode {
	t.Helper()
	m, err := ParseMode(s)
	require.NoError(t, err)
	return m
}

func TestModeYAML(t *testing.T) {
	var holder struct {
		Shading Mode `yaml:"shading"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("shading: phong\n"), &holder))
	assert.Equal(t, Phong, holder.Shading)

	out, err := yaml.Marshal(holder)
	require.NoError(t, err)
	assert.Equal(t, "shading: phong\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("shading: cel\n"), &holder))
}

func TestPhongIllumination_Terms(t *testing.T) {
	white := lighting.New(math.V3(0, 0, 10), math.V3(1, 1, 1))
	mat := model.Material{
		Ka:               math.V3(0.1, 0.1, 0.1),
		Kd:               math.V3(0.5, 0.5, 0.5),
		Ks:               math.V3(0.4, 0.4, 0.4),
		SpecularExponent: 8,
	}

	// Light, camera and normal aligned: full diffuse and full specular.
	got := PhongIllumination{}.Illuminate(Sample{
		Normal: math.V3(0, 0, 1), Camera: math.V3(0, 0, 5), Light: white, Material: mat,
	})
	assert.InDelta(t, 1.0, got.X, 1e-5)

	// Light behind the surface: ambient only.
	behind := lighting.New(math.V3(0, 0, -10), math.V3(1, 1, 1))
	got = PhongIllumination{}.Illuminate(Sample{
		Normal: math.V3(0, 0, 1), Camera: math.V3(0, 0, 5), Light: behind, Material: mat,
	})
	assert.InDelta(t, 0.1, got.X, 1e-5)
}

func triangleModel() *model.Model {
	none := [3]int{-1, -1, -1}
	m := model.FromMesh(&formats.Mesh{
		Positions: []math.Vec3{{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Faces:     []formats.Face{{V: [3]int{0, 1, 2}, VT: none, VN: none}},
	})
	m.SetMaterial(model.Material{Ka: math.V3(0.2, 0.2, 0.2), Kd: math.V3(0.8, 0.8, 0.8)})
	return m
}

func TestNewFactory_Modes(t *testing.T) {
	assert.Equal(t, Flat, NewFactory(PhongIllumination{}, Flat).Mode())
	assert.Equal(t, Gouraud, NewFactory(PhongIllumination{}, Gouraud).Mode())
	assert.Equal(t, Phong, NewFactory(PhongIllumination{}, Phong).Mode())
	assert.Equal(t, Flat, NewFactory(PhongIllumination{}, Mode(42)).Mode())
}

func TestShaders_UseModelLightVector(t *testing.T) {
	m := triangleModel()
	sceneLight := lighting.New(math.V3(0, 0, -100), math.V3(1, 1, 1))
	camera := math.V3(0, 0, 10)

	// The model's own light vector is in front of the face.
	m.SetLightVector(math.V3(0, 0, 100))

	for _, mode := range []Mode{Flat, Gouraud, Phong} {
		shader := NewFactory(PhongIllumination{}, mode)
		c := shader.Shade(m, m.Faces[0], CornerWeights(0), sceneLight, camera)
		assert.Greater(t, c.X, float32(0.2), "%s should see diffuse light", mode)
	}
}

func TestShaders_FlatIsConstantAcrossFace(t *testing.T) {
	m := triangleModel()
	m.SetLightVector(math.V3(5, 0, 5))
	light := lighting.New(math.Vec3{}, math.V3(1, 1, 1))
	shader := NewFactory(PhongIllumination{}, Flat)

	a := shader.Shade(m, m.Faces[0], CornerWeights(0), light, math.V3(0, 0, 10))
	b := shader.Shade(m, m.Faces[0], CornerWeights(2), light, math.V3(0, 0, 10))
	assert.Equal(t, a, b)
}
