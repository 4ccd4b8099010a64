package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/lumenlab/internal/config"
	"github.com/Faultbox/lumenlab/internal/engine/display"
	"github.com/Faultbox/lumenlab/internal/engine/watch"
	"github.com/Faultbox/lumenlab/internal/logger"
	"github.com/Faultbox/lumenlab/internal/scene"
)

func cmdRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	cfg, err := parseConfig(fs, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	s, err := newSession(cfg, fs.Args())
	if err != nil {
		return err
	}

	p := s.presenter(cfg.Output.Path)
	if err := s.ctrl.RenderModels(p); err != nil {
		return err
	}
	fmt.Println(cfg.Output.Path)
	return nil
}

func cmdOrbit(args []string) error {
	fs := flag.NewFlagSet("orbit", flag.ExitOnError)
	steps := fs.Int("steps", 8, "Number of light moves")
	az := fs.Float64("az", 0.25, "Azimuth delta per step (radians)")
	el := fs.Float64("el", 0, "Elevation delta per step (radians)")
	cfg, err := parseConfig(fs, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	s, err := newSession(cfg, fs.Args())
	if err != nil {
		return err
	}

	// Every light move notifies; each notification becomes one frame.
	var (
		frame     int
		renderErr error
	)
	id := s.ctrl.AddListener(scene.ListenerFunc(func(scene.Settings) {
		frame++
		path := display.NumberedPath(cfg.Output.Path, frame)
		p := s.presenter(path)
		if err := s.ctrl.RenderModels(p); err != nil {
			if renderErr == nil {
				renderErr = err
			}
			return
		}
		fmt.Println(path)
	}))
	defer s.ctrl.RemoveListener(id)

	for i := 0; i < *steps && renderErr == nil; i++ {
		s.ctrl.MoveLightPolar(*az, *el)
	}
	return renderErr
}

func cmdSettings(args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	save := fs.String("save", "", "Also write the config to this path")
	saveUser := fs.Bool("save-user", false, "Also write the config to the per-user config file")
	cfg, err := parseConfig(fs, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if _, err := cfg.WriteTo(os.Stdout); err != nil {
		return err
	}
	if *save != "" {
		if err := cfg.SaveTo(*save); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Log.Info("config saved", zap.String("path", *save))
	}
	if *saveUser {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving user config: %w", err)
		}
		logger.Log.Info("config saved", zap.String("path", config.UserConfigPath()))
	}
	return nil
}

func cmdWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	cfg, err := parseConfig(fs, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	s, err := newSession(cfg, fs.Args())
	if err != nil {
		return err
	}

	p := s.presenter(cfg.Output.Path)
	render := func() {
		if err := s.ctrl.RenderModels(p); err != nil {
			s.log.Error("render failed", zap.Error(err))
		}
	}
	s.ctrl.AddListener(scene.ListenerFunc(func(scene.Settings) { render() }))
	render()

	w, err := watch.New(logger.Log)
	if err != nil {
		return err
	}
	defer w.Close()
	w.Debounce = cfg.Output.WatchDebounce

	if err := w.Add(s.models...); err != nil {
		return err
	}
	textureAbs := ""
	if cfg.Assets.Texture != "" {
		if textureAbs, err = filepath.Abs(cfg.Assets.Texture); err != nil {
			return err
		}
		if err := w.Add(cfg.Assets.Texture); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s.log.Info("watching for changes", zap.Strings("models", s.models), zap.String("texture", cfg.Assets.Texture))
	err = w.Run(ctx, func(path string) {
		if path == textureAbs {
			if err := s.ctrl.LoadTexture(path); err != nil {
				s.log.Debug("keeping previous texture", zap.String("path", path), zap.Error(err))
			}
			return
		}
		s.reloadModels()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
