package fbdev

import (
	"fmt"
	"image"

	"periph.io/x/devices/v3/fbdev/rgbx"
)

// Surface describes one rectangular pixel buffer.
//
// Rows are stored top to bottom, RowBytes apart, each pixel PixelBytes
// contiguous bytes. Data is exactly Height*RowBytes long.
type Surface struct {
	Width      int
	Height     int
	RowBytes   int
	PixelBytes int
	Data       []byte
}

// Len returns the byte extent of the surface, Height*RowBytes.
func (s *Surface) Len() int {
	return s.Height * s.RowBytes
}

// Bounds returns the pixel rectangle of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// Clear zero-fills the surface.
func (s *Surface) Clear() {
	clear(s.Data)
}

// Image returns a draw.Image writing directly into Data. It returns nil
// unless PixelBytes is 4.
func (s *Surface) Image() *rgbx.Image {
	if s.PixelBytes != rgbx.PixelBytes {
		return nil
	}
	return rgbx.NewFromBuffer(s.Data, s.RowBytes, s.Bounds())
}

// Validate checks the geometry invariants of s.
func (s *Surface) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrGeometry, s.Width, s.Height)
	case s.PixelBytes <= 0:
		return fmt.Errorf("%w: %d bytes per pixel", ErrGeometry, s.PixelBytes)
	case s.RowBytes < s.Width*s.PixelBytes:
		return fmt.Errorf("%w: row of %d bytes cannot hold %d pixels of %d bytes", ErrGeometry, s.RowBytes, s.Width, s.PixelBytes)
	case len(s.Data) != s.Len():
		return fmt.Errorf("%w: buffer of %d bytes, want %d", ErrGeometry, len(s.Data), s.Len())
	}
	return nil
}

// String returns the geometry of the surface.
func (s *Surface) String() string {
	return fmt.Sprintf("%dx%d stride=%d bpp=%d", s.Width, s.Height, s.RowBytes, s.PixelBytes*8)
}
