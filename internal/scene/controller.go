package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lumenlab/internal/engine/lighting"
	"github.com/Faultbox/lumenlab/internal/engine/model"
	"github.com/Faultbox/lumenlab/internal/engine/shading"
	"github.com/Faultbox/lumenlab/internal/engine/texture"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// Pipeline is the transform pipeline the controller drives. It is the
// source of truth for the current camera, reference point and light.
type Pipeline interface {
	UpdateSettings(s Settings)
	RenderModel(m *model.Model) *model.Model
	Camera() math.Vec3
	Reference() math.Vec3
	Light() lighting.Light
}

// ModelParser turns a file into a Model.
type ModelParser interface {
	ParseFile(path string) (*model.Model, error)
}

// ImageDecoder turns an image file into a Texture.
type ImageDecoder interface {
	Decode(path string) (*texture.Texture, error)
}

// Size is a viewport size in pixels.
type Size struct {
	Width  int
	Height int
}

// Options configures a Controller.
type Options struct {
	Logger   *zap.Logger
	Parser   ModelParser
	Decoder  ImageDecoder
	Viewport Size
	// Stagger is the offset between consecutive models of a bulk load.
	Stagger math.Vec3
	// Models is the initial registry contents.
	Models []*model.Model
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		Parser:   model.Parser{},
		Decoder:  texture.Decoder{},
		Viewport: Size{Width: 500, Height: 500},
		Stagger:  math.V3(2, 1, 0),
	}
}

// Controller owns the live Settings and the model Registry of a session.
//
// Mutating methods must be called from a single goroutine. Listener
// registration is safe from any goroutine, including from inside a
// listener callback.
type Controller struct {
	pipeline Pipeline
	illum    shading.Illumination
	parser   ModelParser
	decoder  ImageDecoder
	log      *zap.Logger

	registry  *Registry
	listeners listeners

	settings  Settings
	viewport  Size
	stagger   math.Vec3
	clockwise bool
}

// NewController creates a controller with initial settings. The settings
// are forwarded to the pipeline and applied to the initial models; no
// notification is sent.
func NewController(pipeline Pipeline, illum shading.Illumination, settings Settings, opts Options) *Controller {
	def := DefaultOptions()
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}
	if opts.Parser == nil {
		opts.Parser = def.Parser
	}
	if opts.Decoder == nil {
		opts.Decoder = def.Decoder
	}
	if opts.Viewport == (Size{}) {
		opts.Viewport = def.Viewport
	}
	if opts.Stagger == (math.Vec3{}) {
		opts.Stagger = def.Stagger
	}

	c := &Controller{
		pipeline: pipeline,
		illum:    illum,
		parser:   opts.Parser,
		decoder:  opts.Decoder,
		log:      opts.Logger.Named("scene"),
		registry: NewRegistry(opts.Models...),
		settings: settings,
		viewport: opts.Viewport,
		stagger:  opts.Stagger,
	}

	pipeline.UpdateSettings(settings)
	c.registry.ApplyMaterial(settings.Material())
	c.registry.ApplyLightVector(settings.Light.Position)
	return c
}

// Settings returns a snapshot of the live settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Viewport returns the size passed to the latest UpdateView.
func (c *Controller) Viewport() Size {
	return c.viewport
}

// Pipeline returns the transform pipeline, for reading current values.
func (c *Controller) Pipeline() Pipeline {
	return c.pipeline
}

// Models returns the registry contents in draw order.
func (c *Controller) Models() []*model.Model {
	return c.registry.Models()
}

// ModelName returns the name of the first model, or "" when none are loaded.
func (c *Controller) ModelName() string {
	models := c.registry.Models()
	if len(models) == 0 {
		return ""
	}
	return models[0].Name
}

// AddListener subscribes l to scene changes.
func (c *Controller) AddListener(l Listener) ListenerID {
	return c.listeners.add(l)
}

// RemoveListener unsubscribes a listener. It reports whether id was
// registered.
func (c *Controller) RemoveListener(id ListenerID) bool {
	return c.listeners.remove(id)
}

func (c *Controller) notifyListeners() {
	c.listeners.notify(c.settings)
}

// SetClockwise sets the winding order of every model. Observers are not
// notified.
func (c *Controller) SetClockwise(cw bool) {
	c.clockwise = cw
	c.registry.ApplyClockwise(cw)
}

// UpdateView makes s the live settings: it forwards them to the pipeline,
// gives every model the material they describe, records the viewport and
// notifies listeners. Every other update goes through here.
func (c *Controller) UpdateView(s Settings, viewport Size) {
	c.viewport = viewport
	c.pipeline.UpdateSettings(s)
	c.registry.ApplyMaterial(s.Material())
	c.settings = s

	c.log.Debug("view updated",
		zap.Stringer("shading", s.Shading),
		zap.Any("camera", s.Camera),
		zap.Any("light", s.Light.Position),
		zap.Int("models", c.registry.Len()))

	c.notifyListeners()
}

// UpdateCamera moves the camera to pos.
func (c *Controller) UpdateCamera(pos math.Vec3) {
	c.UpdateView(c.settings.WithCamera(pos), c.viewport)
}

// UpdateReference points the camera at pos.
func (c *Controller) UpdateReference(pos math.Vec3) {
	c.UpdateView(c.settings.WithReference(pos), c.viewport)
}

// UpdateLight replaces the light and re-aims every model's light vector.
func (c *Controller) UpdateLight(l lighting.Light) {
	c.registry.ApplyLightVector(l.Position)
	c.UpdateView(c.settings.WithLight(l), c.viewport)
}

// UpdateMaterial replaces the reflectance coefficients.
func (c *Controller) UpdateMaterial(ka, kd, ks math.Vec3, specularExponent int) {
	c.UpdateView(c.settings.WithMaterial(ka, kd, ks, specularExponent), c.viewport)
}

// UpdateShading switches the shading mode.
func (c *Controller) UpdateShading(mode shading.Mode) {
	c.UpdateView(c.settings.WithShading(mode), c.viewport)
}

// MoveCamera moves the camera by a delta from its current position.
func (c *Controller) MoveCamera(dx, dy, dz float32) {
	c.UpdateCamera(c.pipeline.Camera().Add(math.V3(dx, dy, dz)))
}

// MoveReference moves the reference point by a delta.
func (c *Controller) MoveReference(dx, dy, dz float32) {
	c.UpdateReference(c.pipeline.Reference().Add(math.V3(dx, dy, dz)))
}

// MoveLight moves the light by a delta, keeping its color.
func (c *Controller) MoveLight(dx, dy, dz float32) {
	c.UpdateLight(c.pipeline.Light().Translate(math.V3(dx, dy, dz)))
}

// MoveLightPolar orbits the light by angular deltas; see lighting.MovePolar.
func (c *Controller) MoveLightPolar(az, el float64) {
	c.UpdateLight(c.pipeline.Light().Orbit(az, el))
}
