package fbdev

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-errors/errors"
)

// geometry describes what a fake device reports.
type geometry struct {
	xres, yres int
	stride     int // line_length
	bpp        int
	mem        int // smem_len and mapped size
}

// fakeDevice is an in-memory framebuffer that records every command.
type fakeDevice struct {
	fix  FixScreenInfo
	vars VarScreenInfo
	mem  []byte

	puts   []VarScreenInfo
	blanks []BlankMode
	closed int

	fixErr   error
	varErr   error
	putErr   error
	blankErr error
	closeErr error
}

// newFakeDevice returns a device whose video memory is filled with garbage.
func newFakeDevice(g geometry) *fakeDevice {
	f := &fakeDevice{mem: bytes.Repeat([]byte{0xAA}, g.mem)}
	copy(f.fix.ID[:], "fakefb")
	f.fix.SMemLen = uint32(g.mem)
	f.fix.LineLength = uint32(g.stride)
	f.vars = VarScreenInfo{
		XRes:         uint32(g.xres),
		YRes:         uint32(g.yres),
		XResVirtual:  uint32(g.xres),
		YResVirtual:  uint32(g.yres),
		BitsPerPixel: uint32(g.bpp),
		Red:          BitField{Offset: 0, Length: 8},
		Green:        BitField{Offset: 8, Length: 8},
		Blue:         BitField{Offset: 16, Length: 8},
	}
	return f
}

func (f *fakeDevice) FixScreenInfo() (FixScreenInfo, error) {
	return f.fix, f.fixErr
}

func (f *fakeDevice) VarScreenInfo() (VarScreenInfo, error) {
	return f.vars, f.varErr
}

func (f *fakeDevice) PutVarScreenInfo(v *VarScreenInfo) error {
	f.puts = append(f.puts, *v)
	if f.putErr != nil {
		return f.putErr
	}
	f.vars = *v
	return nil
}

func (f *fakeDevice) Blank(mode BlankMode) error {
	f.blanks = append(f.blanks, mode)
	return f.blankErr
}

func (f *fakeDevice) Memory() []byte {
	return f.mem
}

func (f *fakeDevice) Close() error {
	f.closed++
	return f.closeErr
}

// newTestDev returns a backend bound to f that logs into the returned buffer.
func newTestDev(t *testing.T, f *fakeDevice, order PixelOrder) (*Dev, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	d := New(&Opts{
		Path:       "/dev/fake",
		PixelOrder: order,
		Logger:     logger,
		Open: func(path string) (Device, error) {
			if f == nil {
				return nil, errors.Errorf("%s: %w", path, ErrNoDevice)
			}
			return f, nil
		},
	})
	return d, &buf
}

// Common geometries: 4x3 pixels, 32bpp, 16 byte rows, so 48 bytes per frame.
var (
	roomForTwo = geometry{xres: 4, yres: 3, stride: 16, bpp: 32, mem: 96}
	roomForOne = geometry{xres: 4, yres: 3, stride: 16, bpp: 32, mem: 95}
)
