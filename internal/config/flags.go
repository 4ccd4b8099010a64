package config

import (
	"flag"
	"fmt"

	"github.com/Faultbox/lumenlab/internal/engine/shading"
)

// Flags are the command-line overrides shared by labctl commands.
type Flags struct {
	config  *string
	debug   *bool
	width   *int
	height  *int
	texture *string
	out     *string
	shading *string
}

// RegisterFlags defines the config flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		config:  fs.String("config", "", "Path to config file"),
		debug:   fs.Bool("debug", false, "Enable debug logging"),
		width:   fs.Int("width", 0, "Viewport width"),
		height:  fs.Int("height", 0, "Viewport height"),
		texture: fs.String("texture", "", "Texture image"),
		out:     fs.String("out", "", "Output PNG path"),
		shading: fs.String("shading", "", "Shading mode (flat, gouraud, phong)"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) error {
	if f == nil {
		return nil
	}
	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if *f.width > 0 {
		cfg.Viewport.Width = *f.width
	}
	if *f.height > 0 {
		cfg.Viewport.Height = *f.height
	}
	if *f.texture != "" {
		cfg.Assets.Texture = *f.texture
	}
	if *f.out != "" {
		cfg.Output.Path = *f.out
	}
	if *f.shading != "" {
		mode, err := shading.ParseMode(*f.shading)
		if err != nil {
			return fmt.Errorf("-shading: %w", err)
		}
		cfg.Scene.Shading = mode
	}
	return nil
}
