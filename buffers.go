package fbdev

import "fmt"

// view is a window into the mapped video memory.
type view struct {
	off, n int
}

func (v view) slice(mem []byte) []byte {
	return mem[v.off : v.off+v.n : v.off+v.n]
}

// shown names the hardware buffer the device is presenting.
type shown uint8

const (
	shownA shown = iota
	shownB
)

// next returns the state after a page flip.
func (s shown) next() shown {
	return s ^ 1
}

func (s shown) index() int {
	return int(s)
}

func (s shown) String() string {
	if s == shownA {
		return "A"
	}
	return "B"
}

// pair is the two hardware buffers placed back to back in video memory.
// The buffer not shown is the one handed out for drawing.
type pair struct {
	views [2]view
	bufs  [2]Surface
	shown shown
}

// newPair lays out two copies of primary's geometry in mem. It fails when
// mem cannot hold both.
func newPair(mem []byte, primary Surface) (*pair, error) {
	n := primary.Len()
	if n <= 0 || 2*n > len(mem) {
		return nil, fmt.Errorf("%w: two buffers of %d bytes exceed %d bytes of video memory", ErrGeometry, n, len(mem))
	}
	p := &pair{views: [2]view{{0, n}, {n, n}}}
	for i, v := range p.views {
		p.bufs[i] = primary
		p.bufs[i].Data = v.slice(mem)
	}
	return p, nil
}

// displayed returns the buffer the device presents.
func (p *pair) displayed() *Surface {
	return &p.bufs[p.shown.index()]
}

// drawable returns the buffer the caller draws into.
func (p *pair) drawable() *Surface {
	return &p.bufs[p.shown.next().index()]
}

// flip swaps the roles of the two buffers.
func (p *pair) flip() {
	p.shown = p.shown.next()
}
