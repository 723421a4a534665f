package repulsion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMotionFromLookup(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want StaticMotion
	}{
		{"unset", nil, false},
		{"app variable", map[string]string{"MOUSEAWAY_REDUCED_MOTION": "true"}, true},
		{"generic variable", map[string]string{"REDUCE_MOTION": "1"}, true},
		{"app variable wins", map[string]string{"MOUSEAWAY_REDUCED_MOTION": "false", "REDUCE_MOTION": "1"}, false},
		{"garbage skipped", map[string]string{"MOUSEAWAY_REDUCED_MOTION": "maybe", "REDUCE_MOTION": "yes"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			}
			assert.Equal(t, tt.want, motionFromLookup(lookup))
		})
	}
}

func TestToggleMotion(t *testing.T) {
	m := NewToggleMotion(false)

	var got []bool
	cancel := m.Watch(func(r bool) { got = append(got, r) })

	m.Set(false)
	assert.True(t, m.Flip())
	m.Set(true)
	assert.False(t, m.Flip())

	cancel()
	cancel()
	m.Set(true)

	assert.Equal(t, []bool{true, false}, got)
	assert.Zero(t, m.Watchers())
	assert.True(t, m.ReducedMotion())
}

func TestStaticMotion(t *testing.T) {
	s := StaticMotion(true)
	assert.True(t, s.ReducedMotion())
	s.Watch(func(bool) { t.Fatal("static preference never changes") })()
}
