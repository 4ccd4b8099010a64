// Package texture provides image decoding and UV sampling for model surfaces.
package texture

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/chewxy/math32"

	"github.com/Faultbox/lumenlab/pkg/math"
)

// Texture is an immutable decoded image addressed by texture coordinates.
// u grows to the right and v grows upwards, with (0, 0) at the bottom-left
// texel of the image as stored.
type Texture struct {
	Name   string
	Width  int
	Height int
	img    *image.RGBA
}

// New wraps an image as a texture. The image is copied to RGBA.
func New(name string, img image.Image) *Texture {
	rgba := ImageToRGBA(img)
	b := rgba.Bounds()
	return &Texture{Name: name, Width: b.Dx(), Height: b.Dy(), img: rgba}
}

// Image returns the underlying pixels. Callers must not modify them.
func (t *Texture) Image() *image.RGBA {
	return t.img
}

// Sample returns the nearest texel to (u, v) as an RGB triple in 0..1.
// Coordinates outside 0..1 wrap around.
func (t *Texture) Sample(u, v float32) math.Vec3 {
	if t == nil || t.Width == 0 || t.Height == 0 {
		return math.Vec3{X: 1, Y: 1, Z: 1}
	}
	x := wrap(int(math32.Floor(u*float32(t.Width))), t.Width)
	y := t.Height - 1 - wrap(int(math32.Floor(v*float32(t.Height))), t.Height)

	b := t.img.Bounds()
	c := t.img.RGBAAt(b.Min.X+x, b.Min.Y+y)
	return math.Vec3{
		X: float32(c.R) / 255,
		Y: float32(c.G) / 255,
		Z: float32(c.B) / 255,
	}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// ImageToRGBA returns img as *image.RGBA, copying unless it already is one.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	return clone.AsRGBA(img)
}
