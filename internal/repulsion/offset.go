package repulsion

import "github.com/iburimskiy/mouse-away/internal/geom"

// Offset is the observable smoothed offset. Renderers either read Get every
// frame or Subscribe to changes. It is written only by the smoothing tick.
type Offset struct {
	value     geom.Vector2
	nextID    int
	observers map[int]func(geom.Vector2)
}

func newOffset() *Offset {
	return &Offset{observers: make(map[int]func(geom.Vector2))}
}

// Get returns the current smoothed offset.
func (o *Offset) Get() geom.Vector2 {
	return o.value
}

// Subscribe registers fn to run after every change. The returned function
// removes it and may be called more than once.
func (o *Offset) Subscribe(fn func(geom.Vector2)) (cancel func()) {
	id := o.nextID
	o.nextID++
	o.observers[id] = fn
	return func() { delete(o.observers, id) }
}

func (o *Offset) set(v geom.Vector2) {
	if v == o.value {
		return
	}
	o.value = v
	for _, fn := range o.observers {
		fn(v)
	}
}
