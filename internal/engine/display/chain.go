package display

import (
	"go.uber.org/multierr"

	"github.com/Faultbox/lumenlab/internal/scene"
)

// Chain presents each frame to every presenter in order. All presenters
// run even when one fails; the errors are combined.
type Chain []scene.Presenter

// Present hands f to every presenter.
func (c Chain) Present(f scene.Frame) error {
	var err error
	for _, p := range c {
		err = multierr.Append(err, p.Present(f))
	}
	return err
}
