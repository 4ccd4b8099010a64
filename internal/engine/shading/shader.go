package shading

import (
	"github.com/Faultbox/lumenlab/internal/engine/lighting"
	"github.com/Faultbox/lumenlab/internal/engine/model"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// Shader colors points on a model's faces.
type Shader interface {
	// Mode reports the strategy in use.
	Mode() Mode
	// Shade returns the color at barycentric coordinates bary on face f.
	// The light position comes from the model's light vector; light
	// supplies the color.
	Shade(m *model.Model, f model.Face, bary math.Vec3, light lighting.Light, camera math.Vec3) math.Vec3
}

// NewFactory returns the shading strategy for mode, backed by illum.
// Unknown modes fall back to flat shading.
func NewFactory(illum Illumination, mode Mode) Shader {
	switch mode {
	case Gouraud:
		return gouraudShader{illum}
	case Phong:
		return phongShader{illum}
	default:
		return flatShader{illum}
	}
}

// CornerWeights returns the barycentric weights of a face's i-th corner.
func CornerWeights(i int) math.Vec3 {
	switch i {
	case 0:
		return math.V3(1, 0, 0)
	case 1:
		return math.V3(0, 1, 0)
	default:
		return math.V3(0, 0, 1)
	}
}

// litBy returns the light as the model sees it: the model's own light
// vector with the scene light's color.
func litBy(m *model.Model, light lighting.Light) lighting.Light {
	return lighting.Light{Position: m.LightVector(), Color: light.Color}
}

func interpolate(a, b, c math.Vec3, w math.Vec3) math.Vec3 {
	return a.Scale(w.X).Add(b.Scale(w.Y)).Add(c.Scale(w.Z))
}

func interpolateUV(a, b, c math.Vec2, w math.Vec3) math.Vec2 {
	return a.Scale(w.X).Add(b.Scale(w.Y)).Add(c.Scale(w.Z))
}

type flatShader struct{ illum Illumination }

func (flatShader) Mode() Mode { return Flat }

func (s flatShader) Shade(m *model.Model, f model.Face, _ math.Vec3, light lighting.Light, camera math.Vec3) math.Vec3 {
	c := m.Corners(f)
	third := math.V3(1.0/3, 1.0/3, 1.0/3)
	return s.illum.Illuminate(Sample{
		Point:    interpolate(c[0].World, c[1].World, c[2].World, third),
		Normal:   m.FaceNormal(f),
		UV:       interpolateUV(c[0].TexCoord, c[1].TexCoord, c[2].TexCoord, third),
		Camera:   camera,
		Light:    litBy(m, light),
		Material: m.Material(),
	})
}

type gouraudShader struct{ illum Illumination }

func (gouraudShader) Mode() Mode { return Gouraud }

func (s gouraudShader) Shade(m *model.Model, f model.Face, bary math.Vec3, light lighting.Light, camera math.Vec3) math.Vec3 {
	c := m.Corners(f)
	var colors [3]math.Vec3
	for i, v := range c {
		colors[i] = s.illum.Illuminate(Sample{
			Point:    v.World,
			Normal:   v.Normal,
			UV:       v.TexCoord,
			Camera:   camera,
			Light:    litBy(m, light),
			Material: m.Material(),
		})
	}
	return interpolate(colors[0], colors[1], colors[2], bary)
}

type phongShader struct{ illum Illumination }

func (phongShader) Mode() Mode { return Phong }

func (s phongShader) Shade(m *model.Model, f model.Face, bary math.Vec3, light lighting.Light, camera math.Vec3) math.Vec3 {
	c := m.Corners(f)
	return s.illum.Illuminate(Sample{
		Point:    interpolate(c[0].World, c[1].World, c[2].World, bary),
		Normal:   interpolate(c[0].Normal, c[1].Normal, c[2].Normal, bary).Normalize(),
		UV:       interpolateUV(c[0].TexCoord, c[1].TexCoord, c[2].TexCoord, bary),
		Camera:   camera,
		Light:    litBy(m, light),
		Material: m.Material(),
	})
}
