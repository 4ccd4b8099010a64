// Package config handles labctl configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"

	"github.com/Faultbox/lumenlab/internal/engine/lighting"
	"github.com/Faultbox/lumenlab/internal/engine/shading"
	"github.com/Faultbox/lumenlab/internal/scene"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// Config holds all labctl settings.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Scene    SceneConfig    `yaml:"scene"`
	Assets   AssetsConfig   `yaml:"assets"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewportConfig is the size of rendered frames.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SceneConfig holds the initial scene settings.
type SceneConfig struct {
	Camera    math.Vec3      `yaml:"camera"`
	Reference math.Vec3      `yaml:"reference"`
	Up        math.Vec3      `yaml:"up"`
	Light     lighting.Light `yaml:"light"`

	Ka               math.Vec3 `yaml:"ka"`
	Kd               math.Vec3 `yaml:"kd"`
	Ks               math.Vec3 `yaml:"ks"`
	SpecularExponent int       `yaml:"specular_exponent"`

	ViewDistance float32 `yaml:"view_distance"`
	ViewHeight   float32 `yaml:"view_height"`
	FarPlane     float32 `yaml:"far_plane"`

	Shading   shading.Mode `yaml:"shading"`
	Clockwise bool         `yaml:"clockwise"`
	// Stagger is the offset between consecutive models of a load.
	Stagger math.Vec3 `yaml:"stagger"`
}

// AssetsConfig holds the files a session starts with.
type AssetsConfig struct {
	Models      []string `yaml:"models"`
	Texture     string   `yaml:"texture"`
	FlipTexture bool     `yaml:"flip_texture"` // image rows run top-down, texture v runs up
}

// OutputConfig controls rendered output.
type OutputConfig struct {
	Path          string        `yaml:"path"`
	PointRadius   int           `yaml:"point_radius"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Width:  500,
			Height: 500,
		},
		Scene: SceneConfig{
			Camera:           math.V3(0, 0, 10),
			Reference:        math.V3(0, 0, 0),
			Up:               math.V3(0, 1, 0),
			Light:            lighting.New(math.V3(10, 10, 10), math.V3(1, 1, 1)),
			Ka:               math.V3(0.1, 0.1, 0.1),
			Kd:               math.V3(0.7, 0.7, 0.7),
			Ks:               math.V3(0.5, 0.5, 0.5),
			SpecularExponent: 16,
			ViewDistance:     1,
			ViewHeight:       0.5,
			FarPlane:         100,
			Shading:          shading.Gouraud,
			Stagger:          math.V3(2, 1, 0),
		},
		Assets: AssetsConfig{
			FlipTexture: true,
		},
		Output: OutputConfig{
			Path:          "frame.png",
			PointRadius:   0,
			WatchDebounce: 200 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Settings converts the scene section to controller settings. The texture
// is not part of the config; load it with the controller.
func (s SceneConfig) Settings() (scene.Settings, error) {
	var out scene.Settings
	if err := copier.Copy(&out, &s); err != nil {
		return scene.Settings{}, fmt.Errorf("converting scene config: %w", err)
	}
	return out.WithMaterial(out.Ka, out.Kd, out.Ks, out.SpecularExponent), nil
}

// Size returns the viewport as a scene size.
func (v ViewportConfig) Size() scene.Size {
	return scene.Size{Width: v.Width, Height: v.Height}
}
