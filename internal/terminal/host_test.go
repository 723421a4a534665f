package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/iburimskiy/mouse-away/internal/config"
	"github.com/iburimskiy/mouse-away/internal/geom"
	"github.com/iburimskiy/mouse-away/internal/repulsion"
)

type run struct {
	host   *Host
	screen tcell.SimulationScreen
	motion *repulsion.ToggleMotion
	done   chan error
}

func start(t *testing.T, ctx context.Context) *run {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	motion := repulsion.NewToggleMotion(false)
	h := New(screen, config.NewDefaultConfig(), motion)

	r := &run{host: h, screen: screen, motion: motion, done: make(chan error, 1)}
	go func() { r.done <- h.Run(ctx) }()

	select {
	case <-h.Ready():
	case err := <-r.done:
		t.Fatalf("host exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("host did not become ready")
	}
	return r
}

func (r *run) wait(t *testing.T) {
	t.Helper()
	select {
	case err := <-r.done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("host did not stop")
	}
}

func TestHost_PointerPushesButtonThenQuits(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := start(t, context.Background())
	// 80x25 cells is 640x400 px; the button rests centered at (320,200).
	// Cell (40,8) maps to (324,136), about 64px above it.
	r.screen.InjectMouse(40, 8, tcell.ButtonNone, tcell.ModNone)
	r.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	r.wait(t)

	h := r.host.Scene().Handle()
	require.NotNil(t, h)
	target := h.Target()
	assert.Greater(t, target.Y, 0.0, "button moves down, away from the pointer")
	assert.Less(t, target.X, 0.0)
	assert.False(t, h.Active())
	assert.Equal(t, 0, r.host.bus.Len())
	assert.Equal(t, 0, r.motion.Watchers())
}

func TestHost_ContextCancelStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	r := start(t, ctx)
	cancel()
	r.wait(t)

	assert.False(t, r.host.Scene().Handle().Active())
	assert.Equal(t, 0, r.host.bus.Len())
}

func TestHost_Keys(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := start(t, context.Background())
	r.screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	r.screen.InjectKey(tcell.KeyRune, 'm', tcell.ModNone)
	r.screen.InjectMouse(40, 8, tcell.ButtonNone, tcell.ModNone)
	r.screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	r.wait(t)

	assert.True(t, r.host.cfg.Repulsion.Disabled)
	assert.True(t, r.motion.ReducedMotion())
	assert.Equal(t, geom.Zero, r.host.Scene().Handle().Target())
}

func TestHandleEvent_Click(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	h := New(screen, config.NewDefaultConfig(), repulsion.NewToggleMotion(false))
	h.resize()

	// Without an active engine the button stays put; cell (40,12) is on it.
	quit := h.handleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	assert.False(t, quit)
	_, catches := h.scene.Stats()
	assert.Equal(t, 1, catches)

	t.Run("drag counts one catch", func(t *testing.T) {
		h.handleEvent(tcell.NewEventMouse(41, 12, tcell.Button1, tcell.ModNone))
		h.handleEvent(tcell.NewEventMouse(42, 12, tcell.Button1, tcell.ModNone))
		_, catches := h.scene.Stats()
		assert.Equal(t, 1, catches)
	})

	t.Run("release then press counts again", func(t *testing.T) {
		h.handleEvent(tcell.NewEventMouse(42, 12, tcell.ButtonNone, tcell.ModNone))
		h.handleEvent(tcell.NewEventMouse(42, 12, tcell.Button1, tcell.ModNone))
		_, catches := h.scene.Stats()
		assert.Equal(t, 2, catches)
	})

	assert.True(t, h.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestCellCenter(t *testing.T) {
	assert.Equal(t, geom.Vector2{X: 4, Y: 8}, cellCenter(0, 0))
	assert.Equal(t, geom.Vector2{X: 324, Y: 136}, cellCenter(40, 8))
}

func TestCellBox(t *testing.T) {
	x0, y0, x1, y1 := cellBox(geom.NewRect(240, 176, 160, 48))
	assert.Equal(t, []int{30, 11, 49, 13}, []int{x0, y0, x1, y1})
}
