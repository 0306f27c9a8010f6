package rowan

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	// Registered decode formats for LoadImage/DecodeImage.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Image is an in-memory pixel surface: a contiguous row-major []uint32
// of packed ARGB pixels. It implements [Surface] and the bulk-fill
// upgrade used by [Clear].
type Image struct {
	pixels []uint32
	size   Point
}

// NewImage allocates a width×height image filled with c.
// Panics if either dimension is negative.
func NewImage(width, height int, c Color) *Image {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("rowan: NewImage with negative size %dx%d", width, height))
	}
	img := &Image{
		pixels: make([]uint32, width*height),
		size:   Pt(width, height),
	}
	if c != 0 {
		img.Fill(c)
	}
	return img
}

// At returns the pixel at pos. Out-of-bounds access panics.
func (m *Image) At(pos Point) Color {
	return Color(m.pixels[Index(pos, m.size.X)])
}

// Set writes the pixel at pos. Out-of-bounds access panics.
func (m *Image) Set(pos Point, c Color) {
	m.pixels[Index(pos, m.size.X)] = uint32(c)
}

// Size returns the image dimensions in pixels.
func (m *Image) Size() Point {
	return m.size
}

// Fill sets every pixel to c in one pass over the backing array.
func (m *Image) Fill(c Color) {
	for i := range m.pixels {
		m.pixels[i] = uint32(c)
	}
}

// LoadImage decodes the PNG, JPEG, or BMP file at path into an Image.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rowan: load image: %w", err)
	}
	defer f.Close()
	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("rowan: load image %s: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes PNG, JPEG, or BMP data from r into an Image.
// Pixels are stored with straight (non-premultiplied) alpha, origin
// top-left, row-major.
func DecodeImage(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return fromStdImage(src), nil
}

// fromStdImage converts any image.Image into a packed-ARGB Image.
func fromStdImage(src image.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewImage(w, h, Transparent)

	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*w]
			for x := 0; x < w; x++ {
				p := row[4*x : 4*x+4]
				out.pixels[y*w+x] = uint32(RGBA(p[0], p[1], p[2], p[3]))
			}
		}
		return out
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.pixels[y*w+x] = uint32(RGBA(c.R, c.G, c.B, c.A))
		}
	}
	return out
}

// EncodePNG writes the image to w as a PNG with straight alpha.
func (m *Image) EncodePNG(w io.Writer) error {
	out := image.NewNRGBA(image.Rect(0, 0, m.size.X, m.size.Y))
	for i, p := range m.pixels {
		c := Color(p)
		out.Pix[4*i] = c.R()
		out.Pix[4*i+1] = c.G()
		out.Pix[4*i+2] = c.B()
		out.Pix[4*i+3] = c.A()
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to a PNG file at path.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rowan: save png: %w", err)
	}
	if err := m.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("rowan: save png %s: %w", path, err)
	}
	return f.Close()
}
