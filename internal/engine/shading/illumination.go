package shading

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/lumenlab/internal/engine/lighting"
	"github.com/Faultbox/lumenlab/internal/engine/model"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// Sample is everything the illumination model needs at one surface point.
type Sample struct {
	Point    math.Vec3 // world space
	Normal   math.Vec3 // unit, world space
	UV       math.Vec2
	Camera   math.Vec3
	Light    lighting.Light
	Material model.Material
}

// Illumination computes the color leaving a surface point.
type Illumination interface {
	Illuminate(s Sample) math.Vec3
}

// PhongIllumination is the classic ambient + diffuse + specular model.
// The diffuse term is modulated by the texture when the material has one.
type PhongIllumination struct{}

// Illuminate returns the RGB color at s, clamped to 0..1.
func (PhongIllumination) Illuminate(s Sample) math.Vec3 {
	m := s.Material
	kd := m.Kd
	if m.Texture != nil {
		kd = kd.Mul(m.Texture.Sample(s.UV.X, s.UV.Y))
	}

	color := m.Ka.Mul(s.Light.Color)

	l := s.Light.Position.Sub(s.Point).Normalize()
	n := s.Normal
	ndotl := n.Dot(l)
	if ndotl > 0 {
		color = color.Add(kd.Mul(s.Light.Color).Scale(ndotl))

		v := s.Camera.Sub(s.Point).Normalize()
		r := n.Scale(2 * ndotl).Sub(l)
		if rdotv := r.Dot(v); rdotv > 0 {
			spec := math32.Pow(rdotv, float32(m.SpecularExponent))
			color = color.Add(m.Ks.Mul(s.Light.Color).Scale(spec))
		}
	}

	return color.Clamp(0, 1)
}
