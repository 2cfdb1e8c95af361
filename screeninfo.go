package fbdev

import "fmt"

// <linux/fb.h> ioctl requests. 0x46 is 'F'.
const (
	fbioGetVScreenInfo = 0x4600
	fbioPutVScreenInfo = 0x4601
	fbioGetFScreenInfo = 0x4602
	fbioBlank          = 0x4611
)

// BlankMode is an FBIOBLANK argument.
type BlankMode int

// Subset of <linux/fb.h> FB_BLANK_* levels used by the backend.
const (
	BlankUnblank   BlankMode = 0
	BlankPowerdown BlankMode = 4
)

func (m BlankMode) String() string {
	switch m {
	case BlankUnblank:
		return "unblank"
	case BlankPowerdown:
		return "powerdown"
	default:
		return fmt.Sprintf("BlankMode(%d)", int(m))
	}
}

// FixScreenInfo mirrors struct fb_fix_screeninfo.
type FixScreenInfo struct {
	ID           [16]byte
	SMemStart    uintptr // Start of frame buffer mem (physical address)
	SMemLen      uint32  // Length of frame buffer mem
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32 // Length of a line in bytes
	MMIOStart    uintptr
	MMIOLen      uint32
	Accel        uint32
	Capabilities uint16
	_            [2]uint16
}

// Name returns the driver identification string, e.g. "simplefb".
func (f *FixScreenInfo) Name() string {
	n := 0
	for n < len(f.ID) && f.ID[n] != 0 {
		n++
	}
	return string(f.ID[:n])
}

// BitField mirrors struct fb_bitfield.
type BitField struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// VarScreenInfo mirrors struct fb_var_screeninfo.
type VarScreenInfo struct {
	XRes, YRes               uint32 // Visible resolution
	XResVirtual, YResVirtual uint32 // Virtual resolution
	XOffset, YOffset         uint32 // Offset from virtual to visible
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp BitField
	NonStd                   uint32
	Activate                 uint32
	Height, Width            uint32 // Picture size in mm
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin               uint32
	RightMargin              uint32
	UpperMargin              uint32
	LowerMargin              uint32
	HSyncLen                 uint32
	VSyncLen                 uint32
	Sync                     uint32
	VMode                    uint32
	Rotate                   uint32
	ColorSpace               uint32
	_                        [4]uint32
}

// String reports the pixel layout as claimed by the driver.
func (v *VarScreenInfo) String() string {
	return fmt.Sprintf("%dx%d %dbpp r=%d/%d g=%d/%d b=%d/%d",
		v.XRes, v.YRes, v.BitsPerPixel,
		v.Red.Offset, v.Red.Length,
		v.Green.Offset, v.Green.Length,
		v.Blue.Offset, v.Blue.Length)
}
