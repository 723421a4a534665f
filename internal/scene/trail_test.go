package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/mouse-away/internal/geom"
)

func TestTrail_Snapshot(t *testing.T) {
	tr := NewTrail(3)
	assert.Nil(t, tr.Snapshot(5))

	tr.Push(geom.Vector2{X: 1})
	tr.Push(geom.Vector2{X: 2})
	assert.Equal(t, []geom.Vector2{{X: 1}, {X: 2}}, tr.Snapshot(5))

	tr.Push(geom.Vector2{X: 3})
	tr.Push(geom.Vector2{X: 4})
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []geom.Vector2{{X: 2}, {X: 3}, {X: 4}}, tr.Snapshot(3))
	assert.Equal(t, []geom.Vector2{{X: 3}, {X: 4}}, tr.Snapshot(2))
}

func TestNewTrail_MinimumSize(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(geom.Vector2{Y: 1})
	tr.Push(geom.Vector2{Y: 2})
	assert.Equal(t, []geom.Vector2{{Y: 2}}, tr.Snapshot(10))
}
