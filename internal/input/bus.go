// Package input turns host pointer input into a stream of pointer-move
// notifications that components subscribe to.
package input

import (
	"sync"

	"github.com/iburimskiy/mouse-away/internal/geom"
)

// Bus fans pointer moves out to every subscriber. It plays the role of the
// window-wide "pointermove" listener list.
type Bus struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]func(geom.Vector2)
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[uint64]func(geom.Vector2))}
}

// Subscribe registers fn. The returned function removes it; once it returns,
// fn is not called by later dispatches. Calling it twice is harmless.
func (b *Bus) Subscribe(fn func(geom.Vector2)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// Dispatch delivers pos to every subscriber on the calling goroutine.
// Listeners may unsubscribe from inside their callback.
func (b *Bus) Dispatch(pos geom.Vector2) {
	b.mu.Lock()
	fns := make([]func(geom.Vector2), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(pos)
	}
}

// Len returns the number of live subscribers.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
