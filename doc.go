// Package fbdev drives a Linux framebuffer device for a boot or recovery UI.
//
// The backend owns one /dev/fbN device. It hands the caller a zeroed Surface
// to draw into and publishes each finished frame with Flip. A recovery UI
// typically renders text and progress bars into the Surface directly.
//
// # Buffering
//
// Init picks one of two strategies from the geometry the device reports:
//
// - Double buffered: when video memory holds two full frames
// (yres*line_length*2 <= smem_len), the second frame sits right after the
// first. Flip pans the display with FBIOPUT_VSCREENINFO and hands back the
// buffer that was just hidden.
//
// - Shadow buffered: otherwise frames are drawn into RAM, and Flip copies the
// full frame into video memory. The same Surface is returned every time.
//
// Either way the Surface returned by Init is zeroed. The whole of video memory
// is cleared once before the first frame.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/devices/v3/fbdev"
//		"periph.io/x/devices/v3/fbdev/rgbx"
//	)
//
//	func main() {
//		dev := fbdev.New(&fbdev.Opts{Path: "/dev/fb0"})
//		s, err := dev.Init()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Exit()
//
//		for i := 0; i < 60; i++ {
//			s.Image().Fill(rgbx.RGBX{R: byte(i * 4)})
//			s = dev.Flip()
//		}
//	}
//
// # Pixel Format
//
// The backend assumes a 32-bit RGBX layout. It logs the channel offsets the
// driver reports but does not act on them, because several drivers report
// XBGR while displaying RGBX correctly. For panels that really need swapped
// red and blue channels, set Opts.PixelOrder to BGRA. The shadow copy then
// exchanges bytes 0 and 2 of every pixel. Double buffered devices are never
// converted.
//
// # Errors
//
// Only Init fails: ErrNoDevice when the device node is missing, ErrGeometry
// when the reported geometry is unusable, and ErrAlloc when the shadow buffer
// cannot be allocated. A failed pan or blank command is logged and the
// backend carries on, leaving a stale frame or unexpected power state on
// screen.
//
// # Concurrency
//
// A Dev must be driven from a single goroutine. Every call blocks until the
// device command returns.
//
// # Compatibility with periph.io
//
// Dev.Drawer returns a display.Drawer from periph.io/x/conn/v3/display, so
// the backend can be used with any periph.io code expecting one:
// https://pkg.go.dev/periph.io/x/conn/v3/display
package fbdev
