// Package display presents scene frames: as a log summary or as a PNG
// point cloud.
package display

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lumenlab/internal/scene"
)

// LogPresenter logs a one-line summary of each frame.
type LogPresenter struct {
	log *zap.Logger
}

// NewLogPresenter creates a presenter logging at info level to log.
func NewLogPresenter(log *zap.Logger) *LogPresenter {
	return &LogPresenter{log: log.Named("display")}
}

// Present logs f.
func (p *LogPresenter) Present(f scene.Frame) error {
	var vertices, faces int
	for _, m := range f.Models {
		vertices += len(m.Vertices)
		faces += len(m.Faces)
	}
	p.log.Info("frame",
		zap.Int("models", len(f.Models)),
		zap.Int("vertices", vertices),
		zap.Int("faces", faces),
		zap.Stringer("shading", f.Shader.Mode()),
		zap.Any("camera", f.Camera),
		zap.Any("light", f.Light.Position),
		zap.Int("width", f.Viewport.Width),
		zap.Int("height", f.Viewport.Height))
	return nil
}
