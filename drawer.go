package fbdev

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"

	"periph.io/x/devices/v3/fbdev/rgbx"
)

// Drawer exposes an initialized backend as a periph.io display.Drawer.
//
// Each Draw renders into the current surface and flips it.
type Drawer struct {
	d *Dev
}

var _ display.Drawer = (*Drawer)(nil)

// Drawer returns a display.Drawer backed by d. d must be initialized before
// the Drawer is used.
func (d *Dev) Drawer() *Drawer {
	return &Drawer{d: d}
}

// String implements conn.Resource.
func (dr *Drawer) String() string {
	return dr.d.String()
}

// Halt blanks the display. It does not release the backend; call Exit for
// that.
func (dr *Drawer) Halt() error {
	if dr.d.draw == nil {
		return ErrNotInitialized
	}
	dr.d.Blank(true)
	return nil
}

// ColorModel implements display.Drawer.
func (dr *Drawer) ColorModel() color.Model {
	return rgbx.Model
}

// Bounds implements display.Drawer.
func (dr *Drawer) Bounds() image.Rectangle {
	if dr.d.draw == nil {
		return image.Rectangle{}
	}
	return dr.d.draw.Bounds()
}

// Draw renders src at sp into dstRect of the display and publishes the
// frame. Pixels outside dstRect, or outside the part of src that maps into
// it, keep what is currently displayed.
func (dr *Drawer) Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	s := dr.d.draw
	if s == nil {
		return ErrNotInitialized
	}
	img := s.Image()
	if img == nil {
		return fmt.Errorf("%w: %d bits per pixel", ErrPixelFormat, s.PixelBytes*8)
	}
	// draw.Draw clips to both images; r is what it actually writes.
	r := dstRect.Intersect(s.Bounds()).Intersect(src.Bounds().Add(dstRect.Min.Sub(sp)))
	if dr.d.pair != nil && !r.Eq(s.Bounds()) {
		// The back buffer holds the frame before last.
		copy(s.Data, dr.d.pair.displayed().Data)
	}
	draw.Draw(img, dstRect, src, sp, draw.Src)
	dr.d.Flip()
	return nil
}
