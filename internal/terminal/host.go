// Package terminal hosts the checkout demo in a terminal. Cells are mapped to
// a fixed pixel size so the engine works in the same units as the window host.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/mouse-away/internal/config"
	"github.com/iburimskiy/mouse-away/internal/geom"
	"github.com/iburimskiy/mouse-away/internal/input"
	"github.com/iburimskiy/mouse-away/internal/observability"
	"github.com/iburimskiy/mouse-away/internal/repulsion"
	"github.com/iburimskiy/mouse-away/internal/scene"
)

type Host struct {
	screen tcell.Screen
	cfg    *config.Config
	scene  *scene.Scene
	bus    *input.Bus
	poller *input.Poller
	motion *repulsion.ToggleMotion
	logger *zap.Logger
	ready  chan struct{}

	// buttons is the mask of the previous mouse event, for press edges.
	buttons tcell.ButtonMask
}

func New(screen tcell.Screen, cfg *config.Config, motion *repulsion.ToggleMotion) *Host {
	bus := input.NewBus()
	return &Host{
		screen: screen,
		cfg:    cfg,
		scene:  scene.New(cfg.Scene, 0, 0),
		bus:    bus,
		poller: input.NewPoller(bus),
		motion: motion,
		logger: observability.GetLogger().Named("terminal"),
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the screen is initialized and the engine is active.
func (h *Host) Ready() <-chan struct{} { return h.ready }

func (h *Host) Scene() *scene.Scene { return h.scene }

// Run drives the demo until ctx is done or the user quits. All engine work
// happens on the calling goroutine; the only other goroutine is the tcell
// event pump, which is stopped before Run returns.
func (h *Host) Run(ctx context.Context) error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer h.screen.Fini()
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.HideCursor()

	h.activate()
	defer h.deactivate()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer func() {
		close(quit)
		for range events {
		}
	}()

	frame := time.Second / time.Duration(h.cfg.Terminal.FPS)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	close(h.ready)
	h.draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if h.scene.Step(frame) {
				h.logger.Debug("button dodged", zap.Any("target", h.scene.Handle().Target()))
			}
			h.draw()
		}
	}
}

func (h *Host) activate() {
	h.resize()
	h.scene.Activate(repulsion.Env{Pointer: h.bus, Motion: h.motion}, h.cfg.Repulsion)
	h.logger.Debug("engine activated",
		zap.Float64("radius", h.cfg.Repulsion.Radius),
		zap.Float64("strength", h.cfg.Repulsion.Strength))
}

func (h *Host) deactivate() {
	h.scene.Deactivate()
	dodges, catches := h.scene.Stats()
	h.logger.Debug("engine deactivated", zap.Int("dodges", dodges), zap.Int("catches", catches))
}

func (h *Host) resize() {
	w, ht := h.screen.Size()
	h.scene.Resize(float64(w*config.CellWidth), float64(ht*config.CellHeight))
}

// handleEvent applies one tcell event and reports whether the user quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	case *tcell.EventMouse:
		p := cellCenter(ev.Position())
		h.poller.Sample(p)
		pressed := ev.Buttons()&^h.buttons&tcell.Button1 != 0
		h.buttons = ev.Buttons()
		if pressed && h.scene.Click(p) {
			_, catches := h.scene.Stats()
			h.logger.Info("button caught", zap.Int("catches", catches))
		}
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune:
			return h.handleRune(ev.Rune())
		}
	}
	return false
}

func (h *Host) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return true
	case 'd', 'D':
		h.cfg.Repulsion.Disabled = !h.cfg.Repulsion.Disabled
		h.scene.Reconfigure(h.cfg.Repulsion)
		h.logger.Info("repulsion toggled", zap.Bool("disabled", h.cfg.Repulsion.Disabled))
	case 'm', 'M':
		reduced := h.motion.Flip()
		h.logger.Info("reduced motion toggled", zap.Bool("reduced_motion", reduced))
	}
	return false
}

// cellCenter maps a terminal cell to the pixel at its center.
func cellCenter(col, row int) geom.Vector2 {
	return geom.Vector2{
		X: (float64(col) + 0.5) * config.CellWidth,
		Y: (float64(row) + 0.5) * config.CellHeight,
	}
}
