package repulsion

import (
	"os"
	"strconv"
	"sync"
)

// MotionPreference exposes the platform "prefers reduced motion" setting.
type MotionPreference interface {
	ReducedMotion() bool
	// Watch calls fn whenever the preference changes. The returned function
	// stops the notifications.
	Watch(fn func(reduced bool)) (cancel func())
}

// StaticMotion is a preference that never changes.
type StaticMotion bool

func (s StaticMotion) ReducedMotion() bool { return bool(s) }

func (StaticMotion) Watch(func(bool)) func() { return func() {} }

// Environment variables consulted by MotionFromEnv, in order.
var reducedMotionEnv = []string{"MOUSEAWAY_REDUCED_MOTION", "REDUCE_MOTION"}

// MotionFromEnv reads the preference from the environment. Unset or
// unparsable values mean "no preference".
func MotionFromEnv() StaticMotion {
	return motionFromLookup(os.LookupEnv)
}

func motionFromLookup(lookup func(string) (string, bool)) StaticMotion {
	for _, key := range reducedMotionEnv {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		if b, err := strconv.ParseBool(v); err == nil {
			return StaticMotion(b)
		}
	}
	return false
}

// ToggleMotion is a preference that can be flipped at runtime, e.g. from a
// settings key. Watchers run synchronously on the goroutine calling Set.
type ToggleMotion struct {
	mu       sync.Mutex
	reduced  bool
	nextID   int
	watchers map[int]func(bool)
}

func NewToggleMotion(initial bool) *ToggleMotion {
	return &ToggleMotion{reduced: initial, watchers: make(map[int]func(bool))}
}

func (t *ToggleMotion) ReducedMotion() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reduced
}

func (t *ToggleMotion) Watch(fn func(bool)) func() {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.watchers[id] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.watchers, id)
			t.mu.Unlock()
		})
	}
}

// Set updates the preference and notifies watchers if it changed.
func (t *ToggleMotion) Set(reduced bool) {
	t.mu.Lock()
	if t.reduced == reduced {
		t.mu.Unlock()
		return
	}
	t.reduced = reduced
	fns := make([]func(bool), 0, len(t.watchers))
	for _, fn := range t.watchers {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(reduced)
	}
}

// Flip inverts the preference and returns the new value.
func (t *ToggleMotion) Flip() bool {
	next := !t.ReducedMotion()
	t.Set(next)
	return next
}

// Watchers returns the number of live watchers.
func (t *ToggleMotion) Watchers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.watchers)
}
