package rgbx

import (
	"image"
	"image/color"
)

// PixelBytes is the size of one packed pixel.
const PixelBytes = 4

// RGBX represents an opaque 24-bit color.
type RGBX struct {
	R, G, B uint8
}

// RGBA implements color.Color. Alpha is always fully opaque.
func (c RGBX) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

func toRGBX(c color.Color) color.Color {
	if x, ok := c.(RGBX); ok {
		return x
	}
	// Premultiplied components composite onto black.
	r, g, b, _ := c.RGBA()
	return RGBX{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Model converts colors to RGBX.
var Model = color.ModelFunc(toRGBX)

// Image is an in-memory image of RGBX pixels.
type Image struct {
	Pix    []byte          // Pixel data, 4 bytes per pixel
	Stride int             // Bytes per row, at least 4*Rect.Dx()
	Rect   image.Rectangle // Image bounds
}

// New allocates an Image with a tightly packed stride.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, w*h*PixelBytes),
		Stride: w * PixelBytes,
		Rect:   r,
	}
}

// NewFromBuffer wraps pix without copying. It panics if stride is shorter
// than a row of pixels or pix cannot hold r.
func NewFromBuffer(pix []byte, stride int, r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	if stride < w*PixelBytes {
		panic("rgbx: stride shorter than row")
	}
	if len(pix) < stride*h {
		panic("rgbx: buffer too small")
	}
	return &Image{Pix: pix, Stride: stride, Rect: r}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
func (p *Image) At(x, y int) color.Color {
	return p.RGBXAt(x, y)
}

// RGBXAt returns the RGBX color of the pixel at (x, y).
func (p *Image) RGBXAt(x, y int) RGBX {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGBX{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return RGBX{R: s[0], G: s[1], B: s[2]}
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGBX(x, y, Model.Convert(c).(RGBX))
}

// SetRGBX sets the pixel at (x, y) without color conversion.
func (p *Image) SetRGBX(x, y int, c RGBX) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+4 : i+4]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
	s[3] = 0xFF
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*PixelBytes
}

// Fill paints every pixel with c. Row padding is left untouched.
func (p *Image) Fill(c RGBX) {
	w, h := p.Rect.Dx(), p.Rect.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	row := p.Pix[:w*PixelBytes]
	for x := 0; x < w; x++ {
		o := x * PixelBytes
		row[o], row[o+1], row[o+2], row[o+3] = c.R, c.G, c.B, 0xFF
	}
	for y := 1; y < h; y++ {
		copy(p.Pix[y*p.Stride:], row)
	}
}
