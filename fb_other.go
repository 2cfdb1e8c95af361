//go:build !linux

package fbdev

import "fmt"

// OpenDevice always fails: framebuffer devices are a Linux interface.
func OpenDevice(path string) (Device, error) {
	return nil, fmt.Errorf("%w: %s: framebuffer devices require linux", ErrNoDevice, path)
}
