package scene

import "github.com/iburimskiy/mouse-away/internal/geom"

// Trail records the last N rendered offsets so the renderer can draw fading
// ghosts behind the button.
type Trail struct {
	buffer    []geom.Vector2
	nextIndex int
	filled    int
}

func NewTrail(ringSize int) *Trail {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Trail{buffer: make([]geom.Vector2, ringSize)}
}

func (t *Trail) Push(v geom.Vector2) {
	t.buffer[t.nextIndex] = v
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
}

// Snapshot returns up to the last n offsets, oldest first.
func (t *Trail) Snapshot(n int) []geom.Vector2 {
	if n > t.filled {
		n = t.filled
	}
	if n <= 0 {
		return nil
	}
	out := make([]geom.Vector2, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		out[i] = t.buffer[idx]
		idx--
	}
	return out
}

// Len returns how many offsets are stored.
func (t *Trail) Len() int { return t.filled }
