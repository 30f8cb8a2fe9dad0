// Package assets loads raster image assets (company logo, signature scan)
// for embedding in a rendered report.
//
// An asset is "a byte source producing a decodable image": the caller does
// not care whether the bytes came from disk, an upload, or an embedded
// default. Oversized bitmaps are downscaled before embedding so a 4000px
// phone photo of a signature does not bloat the output document.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// maxEmbedWidth is the pixel width above which a decoded asset is
// downscaled before embedding.
const maxEmbedWidth = 1600

// Image is a decoded raster asset ready to embed in a document.
type Image struct {
	Data   []byte // encoded bytes handed to the renderer
	Format string // encoding of Data: "PNG" or "JPG"
	Width  int    // pixel width of Data
	Height int    // pixel height of Data
}

// Load decodes an image asset from r. PNG, JPEG, and GIF sources are
// accepted; GIF is re-encoded as PNG since renderers rarely embed it
// directly. Sources wider than maxEmbedWidth pixels are downscaled.
func Load(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("decoding image: empty %dx%d image", w, h)
	}

	if w > maxEmbedWidth {
		return reencode(scale(img, maxEmbedWidth))
	}

	switch name {
	case "png":
		return &Image{Data: data, Format: "PNG", Width: w, Height: h}, nil
	case "jpeg":
		return &Image{Data: data, Format: "JPG", Width: w, Height: h}, nil
	default:
		return reencode(img)
	}
}

// LoadFile opens and decodes an image asset from disk.
func LoadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// FitBox returns the dimensions that fit the image inside a boxW x boxH
// box while preserving aspect ratio. Units are whatever the caller's layout
// uses; only the ratio of the image matters.
func (im *Image) FitBox(boxW, boxH float64) (w, h float64) {
	if im.Width <= 0 || im.Height <= 0 {
		return 0, 0
	}
	scaleX := boxW / float64(im.Width)
	scaleY := boxH / float64(im.Height)
	s := scaleX
	if scaleY < s {
		s = scaleY
	}
	return float64(im.Width) * s, float64(im.Height) * s
}

// scale resizes img to the given pixel width, preserving aspect ratio.
func scale(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

// reencode writes img as PNG and wraps it as an Image.
func reencode(img image.Image) (*Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	bounds := img.Bounds()
	return &Image{
		Data:   buf.Bytes(),
		Format: "PNG",
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
