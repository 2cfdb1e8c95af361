package fbdev

// Device is the driver side of a framebuffer: screen info queries, the
// commit of a new variable screen info, power control, and raw video memory.
//
// *File implements it for /dev/fbN. Tests substitute an in-memory device.
type Device interface {
	FixScreenInfo() (FixScreenInfo, error)
	VarScreenInfo() (VarScreenInfo, error)
	PutVarScreenInfo(v *VarScreenInfo) error
	Blank(mode BlankMode) error
	// Memory returns the mapped video memory, SMemLen bytes long.
	Memory() []byte
	Close() error
}

// DefaultPath is the device opened when Opts.Path is empty.
const DefaultPath = "/dev/fb0"
