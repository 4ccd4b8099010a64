// Package model provides the in-scene model: geometry built from parsed
// meshes plus the per-model material, light vector and winding flag.
package model

import (
	"github.com/Faultbox/lumenlab/internal/engine/texture"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// Vertex is a model vertex.
// Position is the current coordinate (world space after placement, or
// normalised device coordinates after the transform pipeline has run);
// World always holds the world-space position used for lighting.
type Vertex struct {
	Position math.Vec3
	World    math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// Face is a triangle of vertex indices.
type Face struct {
	Indices [3]int
}

// Material holds the per-model shading coefficients.
type Material struct {
	Ka               math.Vec3
	Kd               math.Vec3
	Ks               math.Vec3
	Texture          *texture.Texture
	SpecularExponent int
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
