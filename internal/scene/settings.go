// Package scene is the scene-state controller: it owns the settings of a
// viewing session and the loaded models, keeps per-model state in step with
// the settings, and notifies observers when a new frame is ready.
package scene

import (
	"github.com/Faultbox/lumenlab/internal/engine/lighting"
	"github.com/Faultbox/lumenlab/internal/engine/model"
	"github.com/Faultbox/lumenlab/internal/engine/shading"
	"github.com/Faultbox/lumenlab/internal/engine/texture"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// Settings describes how a frame should look.
//
// Settings is a value: every change produces a new copy, and the copies
// handed to observers are never written to. Texture is shared between
// copies and must not be modified.
type Settings struct {
	Camera    math.Vec3
	Reference math.Vec3
	Up        math.Vec3
	Light     lighting.Light

	Ka               math.Vec3
	Kd               math.Vec3
	Ks               math.Vec3
	SpecularExponent int

	// d, h and f of the viewing frustum.
	ViewDistance float32
	ViewHeight   float32
	FarPlane     float32

	Shading shading.Mode
	Texture *texture.Texture
}

// Material returns the per-model subset of the settings.
func (s Settings) Material() model.Material {
	return model.Material{
		Ka:               s.Ka,
		Kd:               s.Kd,
		Ks:               s.Ks,
		Texture:          s.Texture,
		SpecularExponent: s.SpecularExponent,
	}
}

// WithCamera returns a copy with the camera moved to pos.
func (s Settings) WithCamera(pos math.Vec3) Settings {
	s.Camera = pos
	return s
}

// WithReference returns a copy looking at pos.
func (s Settings) WithReference(pos math.Vec3) Settings {
	s.Reference = pos
	return s
}

// WithLight returns a copy with the light replaced.
func (s Settings) WithLight(l lighting.Light) Settings {
	s.Light = l
	return s
}

// WithTexture returns a copy using tex.
func (s Settings) WithTexture(tex *texture.Texture) Settings {
	s.Texture = tex
	return s
}

// WithMaterial returns a copy with new reflectance coefficients.
// Negative exponents are raised to 0.
func (s Settings) WithMaterial(ka, kd, ks math.Vec3, specularExponent int) Settings {
	if specularExponent < 0 {
		specularExponent = 0
	}
	s.Ka, s.Kd, s.Ks, s.SpecularExponent = ka, kd, ks, specularExponent
	return s
}

// WithShading returns a copy using mode.
func (s Settings) WithShading(mode shading.Mode) Settings {
	s.Shading = mode
	return s
}
