// Package lighting provides the scene light and its orbit-style positioning.
package lighting

import "github.com/Faultbox/lumenlab/pkg/math"

// Light is a point light source.
type Light struct {
	Position math.Vec3 `yaml:"position"`
	Color    math.Vec3 `yaml:"color"` // RGB (0-1 range)
}

// New creates a light at pos with the given color.
func New(pos, color math.Vec3) Light {
	return Light{Position: pos, Color: color}
}

// Translate returns the light moved by delta, color unchanged.
func (l Light) Translate(delta math.Vec3) Light {
	return Light{Position: l.Position.Add(delta), Color: l.Color}
}

// Orbit returns the light repositioned by MovePolar, color unchanged.
func (l Light) Orbit(az, el float64) Light {
	return Light{Position: MovePolar(l.Position, az, el), Color: l.Color}
}
