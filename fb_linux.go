//go:build linux

package fbdev

import (
	"fmt"
	"unsafe"

	"github.com/go-errors/errors"
	"golang.org/x/sys/unix"
)

// File is an opened and memory mapped /dev/fbN device.
type File struct {
	path string
	fd   int
	mem  []byte
}

// OpenDevice opens the framebuffer device at path and maps its entire video
// memory. A missing device is reported as ErrNoDevice.
func OpenDevice(path string) (Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		if errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ENODEV) || errors.Is(err, unix.ENXIO) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNoDevice, path, err)
		}
		return nil, errors.WrapPrefix(err, "fbdev: open "+path, 0)
	}
	f := &File{path: path, fd: fd}

	fi, err := f.FixScreenInfo()
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	if fi.SMemLen == 0 {
		unix.Close(fd)
		return nil, fmt.Errorf("%w: %s reports no video memory", ErrGeometry, path)
	}

	f.mem, err = unix.Mmap(fd, 0, int(fi.SMemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, errors.WrapPrefix(err, "fbdev: mmap "+path, 0)
	}
	return f, nil
}

// FixScreenInfo issues FBIOGET_FSCREENINFO.
func (f *File) FixScreenInfo() (FixScreenInfo, error) {
	var fi FixScreenInfo
	if err := ioctl(f.fd, fbioGetFScreenInfo, unsafe.Pointer(&fi)); err != nil {
		return fi, errors.WrapPrefix(err, "fbdev: FBIOGET_FSCREENINFO", 0)
	}
	return fi, nil
}

// VarScreenInfo issues FBIOGET_VSCREENINFO.
func (f *File) VarScreenInfo() (VarScreenInfo, error) {
	var vi VarScreenInfo
	if err := ioctl(f.fd, fbioGetVScreenInfo, unsafe.Pointer(&vi)); err != nil {
		return vi, errors.WrapPrefix(err, "fbdev: FBIOGET_VSCREENINFO", 0)
	}
	return vi, nil
}

// PutVarScreenInfo issues FBIOPUT_VSCREENINFO. The driver may adjust v.
func (f *File) PutVarScreenInfo(v *VarScreenInfo) error {
	if err := ioctl(f.fd, fbioPutVScreenInfo, unsafe.Pointer(v)); err != nil {
		return errors.WrapPrefix(err, "fbdev: FBIOPUT_VSCREENINFO", 0)
	}
	return nil
}

// Blank issues FBIOBLANK.
func (f *File) Blank(mode BlankMode) error {
	if err := unix.IoctlSetInt(f.fd, fbioBlank, int(mode)); err != nil {
		return errors.WrapPrefix(err, "fbdev: FBIOBLANK "+mode.String(), 0)
	}
	return nil
}

// Memory returns the mapped video memory.
func (f *File) Memory() []byte {
	return f.mem
}

// Close unmaps the video memory and closes the device. The content of the
// video memory is left as is.
func (f *File) Close() error {
	var err error
	if f.mem != nil {
		err = unix.Munmap(f.mem)
		f.mem = nil
	}
	if f.fd >= 0 {
		if e := unix.Close(f.fd); e != nil && err == nil {
			err = e
		}
		f.fd = -1
	}
	if err != nil {
		return errors.WrapPrefix(err, "fbdev: close "+f.path, 0)
	}
	return nil
}

func (f *File) String() string {
	return f.path
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
