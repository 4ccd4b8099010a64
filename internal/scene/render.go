package scene

import (
	"github.com/Faultbox/lumenlab/internal/engine/lighting"
	"github.com/Faultbox/lumenlab/internal/engine/model"
	"github.com/Faultbox/lumenlab/internal/engine/shading"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// Frame is everything a presenter needs to draw one frame.
type Frame struct {
	Models   []*model.Model // transformed by the pipeline, in draw order
	Light    lighting.Light
	Camera   math.Vec3
	Shader   shading.Shader
	Viewport Size
}

// Presenter draws frames.
type Presenter interface {
	Present(f Frame) error
}

// RenderedModels runs every model through the pipeline, in registry order.
// The registry itself is not modified.
func (c *Controller) RenderedModels() []*model.Model {
	models := c.registry.Models()
	rendered := make([]*model.Model, 0, len(models))
	for _, m := range models {
		rendered = append(rendered, c.pipeline.RenderModel(m))
	}
	return rendered
}

// RenderModels hands the current frame to p.
func (c *Controller) RenderModels(p Presenter) error {
	return p.Present(Frame{
		Models:   c.RenderedModels(),
		Light:    c.pipeline.Light(),
		Camera:   c.pipeline.Camera(),
		Shader:   shading.NewFactory(c.illum, c.settings.Shading),
		Viewport: c.viewport,
	})
}
