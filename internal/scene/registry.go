package scene

import (
	"github.com/Faultbox/lumenlab/internal/engine/model"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// Registry is the ordered set of loaded models. Order is load order and
// draw order. It is the only code that writes model material, light vector
// and winding.
type Registry struct {
	models []*model.Model
}

// NewRegistry creates a registry holding models in the given order.
func NewRegistry(models ...*model.Model) *Registry {
	return &Registry{models: append([]*model.Model(nil), models...)}
}

// Replace swaps the whole contents for models.
func (r *Registry) Replace(models []*model.Model) {
	r.models = append(r.models[:0:0], models...)
}

// Clear removes every model.
func (r *Registry) Clear() {
	r.models = nil
}

// Len returns the number of models.
func (r *Registry) Len() int {
	return len(r.models)
}

// Models returns the models in order. The slice is a copy.
func (r *Registry) Models() []*model.Model {
	return append([]*model.Model(nil), r.models...)
}

// ApplyMaterial assigns mat to every model.
func (r *Registry) ApplyMaterial(mat model.Material) {
	for _, m := range r.models {
		m.SetMaterial(mat)
	}
}

// ApplyLightVector points every model's light vector at pos.
func (r *Registry) ApplyLightVector(pos math.Vec3) {
	for _, m := range r.models {
		m.SetLightVector(pos)
	}
}

// ApplyClockwise sets the winding flag on every model.
func (r *Registry) ApplyClockwise(cw bool) {
	for _, m := range r.models {
		m.SetClockwise(cw)
	}
}
