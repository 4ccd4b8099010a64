package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/lumenlab/internal/engine/model"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// ErrMissingFile marks the path that ended a bulk load.
var ErrMissingFile = errors.New("model file does not exist")

// LoadFailure is a file skipped during a bulk load.
type LoadFailure struct {
	Path string
	Err  error
}

// LoadReport describes the outcome of LoadModels.
type LoadReport struct {
	Loaded []string      // paths that became models, in registry order
	Failed []LoadFailure // paths that could not be parsed
	// Missing is the non-existent path that ended the batch; Stopped is
	// true when that happened.
	Missing string
	Stopped bool
}

// Err combines every failure of the batch, or returns nil.
func (r LoadReport) Err() error {
	var err error
	for _, f := range r.Failed {
		err = multierr.Append(err, f.Err)
	}
	if r.Stopped {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrMissingFile, r.Missing))
	}
	return err
}

// LoadModels replaces the registry with the models parsed from paths.
//
// Files that fail to parse are skipped and reported. A path that does not
// exist ends the batch; models loaded before it are kept. Each model gets
// texture coordinates and is placed one stagger step further from the
// origin than the previous successful load. When the batch is done the
// current settings are re-applied, which notifies listeners.
func (c *Controller) LoadModels(paths []string) LoadReport {
	c.registry.Clear()

	var (
		report LoadReport
		loaded []*model.Model
	)
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			report.Missing, report.Stopped = path, true
			c.log.Warn("model file missing, stopping load", zap.String("path", path))
			break
		}

		m, err := c.parser.ParseFile(path)
		if err != nil {
			report.Failed = append(report.Failed, LoadFailure{Path: path, Err: err})
			c.log.Warn("could not parse model", zap.String("path", path), zap.Error(err))
			continue
		}

		m.BuildTextureCoords()
		offset := c.stagger.Scale(float32(len(loaded)))
		loaded = append(loaded, m.MultiplyAll(math.TranslateVec(offset)))
		report.Loaded = append(report.Loaded, path)
	}

	c.registry.Replace(loaded)
	c.registry.ApplyLightVector(c.settings.Light.Position)
	c.registry.ApplyClockwise(c.clockwise)

	c.log.Info("models loaded",
		zap.Int("loaded", len(report.Loaded)),
		zap.Int("failed", len(report.Failed)),
		zap.Bool("stopped", report.Stopped))

	c.UpdateView(c.settings, c.viewport)
	return report
}

// LoadTexture decodes the image at path and makes it the scene texture.
// On failure the error is logged and returned, and nothing changes.
func (c *Controller) LoadTexture(path string) error {
	tex, err := c.decoder.Decode(path)
	if err != nil {
		c.log.Warn("could not load texture", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("loading texture: %w", err)
	}

	c.log.Info("texture loaded", zap.String("path", path), zap.Int("width", tex.Width), zap.Int("height", tex.Height))
	c.UpdateView(c.settings.WithTexture(tex), c.viewport)
	return nil
}
