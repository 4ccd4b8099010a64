// Package pipeline maps models from world space to normalized device
// coordinates using the camera and frustum in the scene settings.
package pipeline

import (
	"github.com/Faultbox/lumenlab/internal/engine/lighting"
	"github.com/Faultbox/lumenlab/internal/engine/model"
	"github.com/Faultbox/lumenlab/internal/scene"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// defaultUp is used when the settings carry a zero up vector.
var defaultUp = math.V3(0, 1, 0)

// Pipeline holds the view and projection matrices of the latest settings.
type Pipeline struct {
	settings   scene.Settings
	view       math.Mat4
	projection math.Mat4
	viewProj   math.Mat4
}

// New creates a pipeline with identity matrices.
func New() *Pipeline {
	return &Pipeline{
		view:       math.Identity(),
		projection: math.Identity(),
		viewProj:   math.Identity(),
	}
}

// UpdateSettings rebuilds the matrices from s.
func (p *Pipeline) UpdateSettings(s scene.Settings) {
	up := s.Up
	if up == (math.Vec3{}) {
		up = defaultUp
	}

	p.settings = s
	p.view = math.LookAt(s.Camera, s.Reference, up)
	p.projection = math.Frustum(s.ViewDistance, s.ViewHeight, s.FarPlane)
	p.viewProj = p.projection.Mul(p.view)
}

// RenderModel returns a copy of m whose positions are in normalized device
// coordinates. World positions, normals, texture coordinates and the
// registry-owned state are carried over unchanged.
func (p *Pipeline) RenderModel(m *model.Model) *model.Model {
	out := m.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i].Position = p.viewProj.TransformPoint(v.World)
	}
	return out
}

// View returns the current view matrix.
func (p *Pipeline) View() math.Mat4 { return p.view }

// Camera returns the camera position of the latest settings.
func (p *Pipeline) Camera() math.Vec3 { return p.settings.Camera }

// Reference returns the point the camera looks at.
func (p *Pipeline) Reference() math.Vec3 { return p.settings.Reference }

// Light returns the light of the latest settings.
func (p *Pipeline) Light() lighting.Light { return p.settings.Light }
