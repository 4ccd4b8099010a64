package display

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/chewxy/math32"

	"github.com/Faultbox/lumenlab/internal/engine/shading"
	"github.com/Faultbox/lumenlab/internal/scene"
	"github.com/Faultbox/lumenlab/pkg/math"
)

// PointPresenter splats every visible projected vertex into an image and
// writes it as PNG. Each vertex is colored by the frame's shader at that
// face corner; the nearest vertex wins where several land on one pixel.
type PointPresenter struct {
	Path       string
	Background color.RGBA
	// Radius is the splat size in pixels around the vertex; 0 draws a
	// single pixel.
	Radius int

	last *image.RGBA
}

// NewPointPresenter creates a presenter writing to path on a black
// background.
func NewPointPresenter(path string) *PointPresenter {
	return &PointPresenter{Path: path, Background: color.RGBA{A: 255}}
}

// Image returns the most recently drawn frame, or nil.
func (p *PointPresenter) Image() *image.RGBA {
	return p.last
}

// Present draws f and saves it to Path.
func (p *PointPresenter) Present(f scene.Frame) error {
	img := p.Draw(f)
	p.last = img

	if dir := filepath.Dir(p.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := imgio.Save(p.Path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("saving frame: %w", err)
	}
	return nil
}

// Draw renders f into a new image without saving it.
func (p *PointPresenter) Draw(f scene.Frame) *image.RGBA {
	w, h := f.Viewport.Width, f.Viewport.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = p.Background.R
		img.Pix[i+1] = p.Background.G
		img.Pix[i+2] = p.Background.B
		img.Pix[i+3] = p.Background.A
	}
	depth := make([]float32, w*h)
	for i := range depth {
		depth[i] = math32.Inf(1)
	}

	for _, m := range f.Models {
		for _, face := range m.Faces {
			corners := m.Corners(face)
			for i, v := range corners {
				ndc := v.Position
				if !visible(ndc) {
					continue
				}
				px, py := toViewport(ndc, w, h)
				c := toRGBA(f.Shader.Shade(m, face, shading.CornerWeights(i), f.Light, f.Camera))
				p.splat(img, depth, px, py, ndc.Z, c)
			}
		}
	}
	return img
}

func (p *PointPresenter) splat(img *image.RGBA, depth []float32, cx, cy int, z float32, c color.RGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := cy - p.Radius; y <= cy+p.Radius; y++ {
		for x := cx - p.Radius; x <= cx+p.Radius; x++ {
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			if z >= depth[y*w+x] {
				continue
			}
			depth[y*w+x] = z
			img.SetRGBA(x, y, c)
		}
	}
}

// visible reports whether an NDC point lies inside the view volume.
func visible(v math.Vec3) bool {
	if v.IsNaN() {
		return false
	}
	return v.X >= -1 && v.X <= 1 && v.Y >= -1 && v.Y <= 1 && v.Z >= 0 && v.Z <= 1
}

// toViewport maps NDC x and y to pixel coordinates with y pointing down.
func toViewport(v math.Vec3, w, h int) (int, int) {
	x := int(math32.Round((v.X + 1) / 2 * float32(w-1)))
	y := int(math32.Round((1 - v.Y) / 2 * float32(h-1)))
	return x, y
}

func toRGBA(c math.Vec3) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(c.X*255 + 0.5),
		G: uint8(c.Y*255 + 0.5),
		B: uint8(c.Z*255 + 0.5),
		A: 255,
	}
}

// NumberedPath inserts a zero-padded frame number before the extension:
// NumberedPath("out/frame.png", 3) is "out/frame_0003.png".
func NumberedPath(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(path, ext), n, ext)
}
