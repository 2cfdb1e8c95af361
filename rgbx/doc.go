// Package rgbx provides the packed 32-bit RGBX image format written to Linux
// framebuffer devices by the fbdev backend.
//
// Every pixel occupies 4 contiguous bytes in R, G, B, X order. The X byte is
// padding: it is written as 0xFF and ignored on read, so every pixel is
// opaque. Rows are Stride bytes apart, and Stride may exceed 4*width when the
// device pads its scanlines.
//
// Memory layout example for a 2-pixel row with a 12-byte stride:
//
//	Pixels:  0            1            (padding)
//	Bytes:   R G B X      R G B X      . . . .
//
// This package provides:
//
// - RGBX: an opaque 24-bit color stored in 4 bytes
// - Model: a color model converting standard Go colors to RGBX
// - Image: a draw.Image implementation over an existing byte buffer
//
// Example usage:
//
//	// Wrap a framebuffer surface
//	img := rgbx.NewFromBuffer(surface.Data, surface.RowBytes, surface.Bounds())
//
//	// Paint it red
//	img.Fill(rgbx.RGBX{R: 0xFF})
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)
package rgbx
