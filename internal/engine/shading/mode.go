// Package shading computes surface colors from light, material and geometry.
package shading

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects how often the illumination model is evaluated across a face.
type Mode int

// Shading modes.
const (
	Flat    Mode = iota // once per face
	Gouraud             // once per vertex, colors interpolated
	Phong               // once per sample, normals interpolated
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Flat:
		return "flat"
	case Gouraud:
		return "gouraud"
	case Phong:
		return "phong"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a name to a Mode. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat":
		return Flat, nil
	case "gouraud":
		return Gouraud, nil
	case "phong":
		return Phong, nil
	default:
		return Flat, fmt.Errorf("unknown shading mode %q", s)
	}
}

// MarshalYAML encodes the mode as its name.
func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML decodes a mode name.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseMode(node.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
