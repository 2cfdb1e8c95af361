package fbdev

import "github.com/go-errors/errors"

var (
	// ErrNoDevice is returned by Init when no framebuffer device can be opened.
	ErrNoDevice error = errors.New("fbdev: no display device")
	// ErrAlloc is returned by Init when the shadow buffer cannot be allocated.
	ErrAlloc error = errors.New("fbdev: failed to allocate in-memory surface")
	// ErrGeometry is returned when the device reports unusable geometry.
	ErrGeometry error = errors.New("fbdev: invalid geometry")
	// ErrNotInitialized is returned when the backend is used before Init.
	ErrNotInitialized error = errors.New("fbdev: not initialized")
	// ErrPixelFormat is returned when the surface is not 32 bits per pixel.
	ErrPixelFormat error = errors.New("fbdev: unsupported pixel size")
)
