package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when a file's content is not a supported image.
var ErrNotImage = errors.New("not a supported image")

// Decoder reads texture images from disk.
type Decoder struct {
	// FlipVertical mirrors rows after decoding, for images authored with
	// the v axis pointing down.
	FlipVertical bool
}

// Decode reads and decodes the image at path.
// TGA has no magic number, so it is recognised by extension; every other
// format is identified from its content.
func (d Decoder) Decode(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}

	img, err := decodeBytes(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	if d.FlipVertical {
		img = transform.FlipV(img)
	}
	return New(filepath.Base(path), img), nil
}

func decodeBytes(data []byte, ext string) (image.Image, error) {
	if strings.EqualFold(ext, ".tga") {
		return DecodeTGA(data)
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return nil, err
	}
	if kind == filetype.Unknown || !filetype.IsImage(data) {
		return nil, ErrNotImage
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind.Extension, err)
	}
	return img, nil
}
