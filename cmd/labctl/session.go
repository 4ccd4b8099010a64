package main

import (
	"errors"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lumenlab/internal/config"
	"github.com/Faultbox/lumenlab/internal/engine/display"
	"github.com/Faultbox/lumenlab/internal/engine/pipeline"
	"github.com/Faultbox/lumenlab/internal/engine/shading"
	"github.com/Faultbox/lumenlab/internal/engine/texture"
	"github.com/Faultbox/lumenlab/internal/logger"
	"github.com/Faultbox/lumenlab/internal/scene"
)

// session is a configured controller plus the files it was loaded from.
type session struct {
	cfg    *config.Config
	ctrl   *scene.Controller
	models []string
	log    *zap.Logger
}

// parseConfig parses args on fs (which must already carry any
// command-specific flags), loads the config and initializes logging.
func parseConfig(fs *flag.FlagSet, args []string) (*config.Config, error) {
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return nil, err
	}

	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.Init(cfg.Logging.Level, fileCfg, true); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return cfg, nil
}

// newSession builds the controller and loads the models named on the
// command line, or those in the config when there are none.
func newSession(cfg *config.Config, args []string) (*session, error) {
	settings, err := cfg.Scene.Settings()
	if err != nil {
		return nil, err
	}

	ctrl := scene.NewController(pipeline.New(), shading.PhongIllumination{}, settings, scene.Options{
		Logger:   logger.Log,
		Decoder:  texture.Decoder{FlipVertical: cfg.Assets.FlipTexture},
		Viewport: cfg.Viewport.Size(),
		Stagger:  cfg.Scene.Stagger,
	})
	ctrl.SetClockwise(cfg.Scene.Clockwise)

	s := &session{cfg: cfg, ctrl: ctrl, models: args, log: logger.Named("labctl")}
	if len(s.models) == 0 {
		s.models = cfg.Assets.Models
	}
	if len(s.models) == 0 {
		return nil, errors.New("no models given")
	}

	s.reloadModels()
	if cfg.Assets.Texture != "" {
		if err := ctrl.LoadTexture(cfg.Assets.Texture); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// reloadModels loads the session's models, logging what could not be read.
func (s *session) reloadModels() {
	report := s.ctrl.LoadModels(s.models)
	if err := report.Err(); err != nil {
		s.log.Warn("some models were not loaded", zap.Error(err))
	}
	s.log.Info("scene ready",
		zap.String("model", s.ctrl.ModelName()),
		zap.Int("models", len(s.ctrl.Models())))
}

// presenter returns the PNG presenter for path chained with a log summary.
func (s *session) presenter(path string) scene.Presenter {
	points := display.NewPointPresenter(path)
	points.Radius = s.cfg.Output.PointRadius
	return display.Chain{points, display.NewLogPresenter(logger.Log)}
}
