// Package fbdev drives a Linux framebuffer device for a boot or recovery UI.
//
// See the examples for how to use this package.
package fbdev

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// PixelOrder selects how shadow frames are copied into video memory.
type PixelOrder int

const (
	// RGBA copies frames byte for byte.
	RGBA PixelOrder = iota
	// BGRA swaps the first and third byte of every pixel while copying, for
	// devices whose channel order is reversed relative to the surface.
	BGRA
)

func (o PixelOrder) String() string {
	switch o {
	case RGBA:
		return "rgba"
	case BGRA:
		return "bgra"
	default:
		return fmt.Sprintf("PixelOrder(%d)", int(o))
	}
}

// ParsePixelOrder parses "rgba" or "bgra".
func ParsePixelOrder(s string) (PixelOrder, error) {
	switch s {
	case "rgba", "RGBA", "":
		return RGBA, nil
	case "bgra", "BGRA":
		return BGRA, nil
	}
	return RGBA, fmt.Errorf("fbdev: unknown pixel order %q", s)
}

// Strategy is the buffering scheme chosen by Init.
type Strategy int

const (
	// Unset means Init has not succeeded.
	Unset Strategy = iota
	// DoubleBuffered pages between two buffers in video memory.
	DoubleBuffered
	// ShadowBuffered draws into RAM and copies each frame to video memory.
	ShadowBuffered
)

func (s Strategy) String() string {
	switch s {
	case DoubleBuffered:
		return "double"
	case ShadowBuffered:
		return "shadow"
	default:
		return "unset"
	}
}

// Opts is the configuration for the backend.
type Opts struct {
	// Device node to open (default: /dev/fb0)
	Path string

	// Channel order used by the shadow copy. Ignored when double buffered.
	PixelOrder PixelOrder

	// Logger for diagnostics and device command failures (default: the
	// charmbracelet default logger prefixed "fbdev")
	Logger *log.Logger

	// Open returns the device for Path (default: OpenDevice)
	Open func(path string) (Device, error)

	// Alloc returns n bytes of shadow buffer storage (default: make)
	Alloc func(n int) ([]byte, error)
}

// Dev is the framebuffer backend. The zero value is not usable; use New.
type Dev struct {
	opts Opts
	log  *log.Logger

	dev Device
	vi  VarScreenInfo

	strategy Strategy
	primary  Surface  // Presented region at the start of video memory
	pair     *pair    // Set when DoubleBuffered
	shadow   *Surface // Set when ShadowBuffered
	draw     *Surface
	blanked  bool
}

// New returns a backend that opens its device on Init.
//
// opts can be nil to use defaults.
func New(opts *Opts) *Dev {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.Path == "" {
		o.Path = DefaultPath
	}
	if o.Logger == nil {
		o.Logger = log.Default().WithPrefix("fbdev")
	}
	if o.Open == nil {
		o.Open = OpenDevice
	}
	if o.Alloc == nil {
		o.Alloc = func(n int) ([]byte, error) { return make([]byte, n), nil }
	}
	return &Dev{opts: o, log: o.Logger}
}

// Init opens the device, selects a buffering strategy and returns the zeroed
// surface to draw into. On failure nothing stays open and Exit is not needed.
//
// Calling Init again before Exit returns the current surface.
func (d *Dev) Init() (*Surface, error) {
	if d.draw != nil {
		return d.draw, nil
	}
	dev, err := d.opts.Open(d.opts.Path)
	if err != nil {
		return nil, err
	}
	if err := d.setup(dev); err != nil {
		d.reset()
		if cerr := dev.Close(); cerr != nil {
			d.log.Warn("close after failed init", "path", d.opts.Path, "err", cerr)
		}
		return nil, err
	}

	d.log.Info("framebuffer", "width", d.draw.Width, "height", d.draw.Height, "strategy", d.strategy)

	// Force a known power state before the first frame.
	d.Blank(true)
	d.Blank(false)
	return d.draw, nil
}

func (d *Dev) setup(dev Device) error {
	fi, err := dev.FixScreenInfo()
	if err != nil {
		return err
	}
	vi, err := dev.VarScreenInfo()
	if err != nil {
		return err
	}

	// The surface is always treated as RGBX whatever the driver claims; some
	// drivers report XBGR and still display RGBX correctly.
	d.log.Info("device reports (possibly inaccurate)",
		"id", fi.Name(),
		"bpp", vi.BitsPerPixel,
		"red", fmt.Sprintf("%d/%d", vi.Red.Offset, vi.Red.Length),
		"green", fmt.Sprintf("%d/%d", vi.Green.Offset, vi.Green.Length),
		"blue", fmt.Sprintf("%d/%d", vi.Blue.Offset, vi.Blue.Length))

	d.log.Debug("mode", "var", &vi, "smem_len", fi.SMemLen, "line_length", fi.LineLength)

	if vi.BitsPerPixel == 0 || vi.BitsPerPixel%8 != 0 {
		return fmt.Errorf("%w: %d bits per pixel", ErrGeometry, vi.BitsPerPixel)
	}
	mem := dev.Memory()
	primary := Surface{
		Width:      int(vi.XRes),
		Height:     int(vi.YRes),
		RowBytes:   int(fi.LineLength),
		PixelBytes: int(vi.BitsPerPixel / 8),
	}
	n := primary.Len()
	if n <= 0 || n > len(mem) {
		return fmt.Errorf("%w: %s needs %d bytes, device maps %d", ErrGeometry, primary.String(), n, len(mem))
	}
	primary.Data = mem[:n:n]
	if err := primary.Validate(); err != nil {
		return err
	}

	clear(mem)
	primary.Clear()

	if uint64(vi.YRes)*uint64(fi.LineLength)*2 <= uint64(fi.SMemLen) {
		p, err := newPair(mem, primary)
		if err != nil {
			return err
		}
		d.pair = p
		d.draw = p.drawable()
		d.strategy = DoubleBuffered
	} else {
		buf, err := d.opts.Alloc(n)
		if err != nil {
			return fmt.Errorf("%w: %d bytes: %w", ErrAlloc, n, err)
		}
		if len(buf) < n {
			return fmt.Errorf("%w: got %d of %d bytes", ErrAlloc, len(buf), n)
		}
		shadow := primary
		shadow.Data = buf[:n:n]
		d.shadow = &shadow
		d.draw = d.shadow
		d.strategy = ShadowBuffered
	}
	d.draw.Clear()

	d.dev = dev
	d.vi = vi
	d.primary = primary
	d.commit()
	return nil
}

func (d *Dev) reset() {
	d.dev = nil
	d.vi = VarScreenInfo{}
	d.strategy = Unset
	d.primary = Surface{}
	d.pair = nil
	d.shadow = nil
	d.draw = nil
}

// Flip publishes the surface returned by the previous Init or Flip and
// returns the surface to draw the next frame into.
//
// When double buffered the returned surface alternates between the two
// hardware buffers. When shadow buffered the frame is copied to video memory
// and the same surface is returned every time.
//
// Flip returns nil before Init.
func (d *Dev) Flip() *Surface {
	if d.draw == nil {
		d.log.Warn("flip before init")
		return nil
	}
	switch d.strategy {
	case DoubleBuffered:
		d.pair.flip()
		d.draw = d.pair.drawable()
		d.commit()
	case ShadowBuffered:
		copyFrame(d.primary.Data, d.shadow.Data, d.opts.PixelOrder)
	}
	d.log.Debug("flip", "strategy", d.strategy, "displayed", d.Displayed())
	return d.draw
}

// Blank powers the display down when on is true and unblanks it otherwise.
// Failures are logged and otherwise ignored.
func (d *Dev) Blank(on bool) {
	if d.dev == nil {
		d.log.Warn("blank before init", "on", on)
		return
	}
	mode := BlankUnblank
	if on {
		mode = BlankPowerdown
	}
	if err := d.dev.Blank(mode); err != nil {
		d.log.Error("blank failed", "mode", mode, "err", err)
	}
	d.blanked = on
}

// Exit releases the shadow buffer if one was allocated and closes the
// device. Video memory keeps its last frame. Calls after the first are no-ops.
//
// When double buffered, surfaces returned by Init and Flip point into the
// unmapped video memory and must not be used after Exit.
func (d *Dev) Exit() {
	if d.dev == nil {
		return
	}
	dev := d.dev
	if d.shadow != nil {
		d.shadow.Data = nil
	}
	d.reset()
	if err := dev.Close(); err != nil {
		d.log.Error("close", "path", d.opts.Path, "err", err)
	}
}

// Strategy returns the buffering strategy chosen by Init.
func (d *Dev) Strategy() Strategy {
	return d.strategy
}

// Displayed returns the index of the hardware buffer being presented, 0 or 1.
// It is always 0 unless double buffered.
func (d *Dev) Displayed() int {
	if d.pair == nil {
		return 0
	}
	return d.pair.shown.index()
}

// Blanked reports whether the last Blank call powered the display down.
func (d *Dev) Blanked() bool {
	return d.blanked
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	if d.draw == nil {
		return "fbdev.Dev{" + d.opts.Path + "}"
	}
	return fmt.Sprintf("fbdev.Dev{%dx%d}", d.draw.Width, d.draw.Height)
}
