package fbdev

// commit points the device at the shown hardware buffer. A failed commit
// leaves the old frame on screen and is only logged.
func (d *Dev) commit() {
	if d.pair == nil {
		return
	}
	h := d.primary.Height
	d.vi.YResVirtual = uint32(2 * h)
	d.vi.YOffset = uint32(d.pair.shown.index() * h)
	d.vi.BitsPerPixel = uint32(d.primary.PixelBytes * 8)
	if err := d.dev.PutVarScreenInfo(&d.vi); err != nil {
		d.log.Error("active fb swap failed", "shown", d.pair.shown, "yoffset", d.vi.YOffset, "err", err)
	}
}

// copyFrame publishes a shadow frame into video memory.
func copyFrame(dst, src []byte, order PixelOrder) {
	switch order {
	case BGRA:
		swapCopy(dst, src)
	default:
		copy(dst, src)
	}
}

// swapCopy copies src to dst exchanging the first and third byte of every
// 4-byte pixel. A trailing partial pixel is copied as is.
func swapCopy(dst, src []byte) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+4 <= n; i += 4 {
		s := src[i : i+4 : i+4]
		o := dst[i : i+4 : i+4]
		o[0], o[1], o[2], o[3] = s[2], s[1], s[0], s[3]
	}
	copy(dst[i:n], src[i:n])
}
