package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA format errors.
var (
	ErrTruncatedTGA   = errors.New("truncated TGA data")
	ErrUnsupportedTGA = errors.New("unsupported TGA variant")
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

type tgaHeader struct {
	idLength     int
	colorMapType byte
	imageType    byte
	width        int
	height       int
	bytesPerPx   int
	topToBottom  bool
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, ErrTruncatedTGA
	}
	h := tgaHeader{
		idLength:     int(data[0]),
		colorMapType: data[1],
		imageType:    data[2],
		width:        int(data[12]) | int(data[13])<<8,
		height:       int(data[14]) | int(data[15])<<8,
		bytesPerPx:   int(data[16]) / 8,
		topToBottom:  data[17]&0x20 != 0,
	}

	if h.colorMapType != 0 {
		return h, fmt.Errorf("%w: color-mapped", ErrUnsupportedTGA)
	}
	if h.imageType != TGATypeUncompressed && h.imageType != TGATypeRLE {
		return h, fmt.Errorf("%w: image type %d", ErrUnsupportedTGA, h.imageType)
	}
	if h.bytesPerPx != 3 && h.bytesPerPx != 4 {
		return h, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedTGA, data[16])
	}
	if h.width == 0 || h.height == 0 {
		return h, fmt.Errorf("%w: empty image", ErrUnsupportedTGA)
	}
	return h, nil
}

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color TGA
// data with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (image.Image, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}

	offset := tgaHeaderSize + h.idLength
	if offset > len(data) {
		return nil, ErrTruncatedTGA
	}
	src := data[offset:]

	img := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	total := h.width * h.height
	next := 0

	// put writes one BGR(A) pixel at the next position in file order.
	put := func(px []byte) {
		x, y := next%h.width, next/h.width
		if !h.topToBottom {
			y = h.height - 1 - y
		}
		a := uint8(255)
		if h.bytesPerPx == 4 {
			a = px[3]
		}
		img.SetRGBA(x, y, color.RGBA{R: px[2], G: px[1], B: px[0], A: a})
		next++
	}

	if h.imageType == TGATypeUncompressed {
		if len(src) < total*h.bytesPerPx {
			return nil, ErrTruncatedTGA
		}
		for i := 0; i < total; i++ {
			put(src[i*h.bytesPerPx:])
		}
		return img, nil
	}

	i := 0
	for next < total {
		if i >= len(src) {
			return nil, ErrTruncatedTGA
		}
		packet := src[i]
		i++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if i+h.bytesPerPx > len(src) {
				return nil, ErrTruncatedTGA
			}
			px := src[i : i+h.bytesPerPx]
			i += h.bytesPerPx
			for n := 0; n < count && next < total; n++ {
				put(px)
			}
			continue
		}

		if i+count*h.bytesPerPx > len(src) {
			return nil, ErrTruncatedTGA
		}
		for n := 0; n < count && next < total; n++ {
			put(src[i:])
			i += h.bytesPerPx
		}
	}

	return img, nil
}
