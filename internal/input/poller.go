package input

import "github.com/iburimskiy/mouse-away/internal/geom"

// Poller converts a cursor position sampled once per frame into move events.
// Frames where the cursor did not move produce nothing.
type Poller struct {
	bus  *Bus
	last geom.Vector2
	seen bool
}

func NewPoller(bus *Bus) *Poller {
	return &Poller{bus: bus}
}

// Sample records the cursor position for this frame and reports whether a
// move was dispatched.
func (p *Poller) Sample(pos geom.Vector2) bool {
	if !pos.Finite() {
		return false
	}
	if p.seen && pos == p.last {
		return false
	}
	p.last = pos
	p.seen = true
	p.bus.Dispatch(pos)
	return true
}

// Last returns the last sampled position and whether any sample was taken.
func (p *Poller) Last() (geom.Vector2, bool) {
	return p.last, p.seen
}
