// Package game hosts the checkout demo in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/mouse-away/internal/config"
	"github.com/iburimskiy/mouse-away/internal/geom"
	"github.com/iburimskiy/mouse-away/internal/input"
	"github.com/iburimskiy/mouse-away/internal/observability"
	"github.com/iburimskiy/mouse-away/internal/repulsion"
	"github.com/iburimskiy/mouse-away/internal/scene"
	"github.com/iburimskiy/mouse-away/internal/sound"
)

const (
	strengthStep = 20.0
	radiusStep   = 10.0
)

type game struct {
	cfg    *config.Config
	scene  *scene.Scene
	bus    *input.Bus
	poller *input.Poller
	motion *repulsion.ToggleMotion
	cue    *sound.Cue
	reload <-chan *config.Config
	logger *zap.Logger

	// viz
	time       float64
	colorPhase float64
	started    time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool

	status errorStatus
}

// NewGame builds the demo. Configs received on reload replace the current
// one without restarting the engine; reload may be nil.
func NewGame(cfg *config.Config, motion *repulsion.ToggleMotion, reload <-chan *config.Config) *game {
	bus := input.NewBus()
	g := &game{
		cfg:     cfg,
		scene:   scene.New(cfg.Scene, float64(cfg.Window.Width), float64(cfg.Window.Height)),
		bus:     bus,
		poller:  input.NewPoller(bus),
		motion:  motion,
		cue:     sound.NewCue(cfg.Sound),
		reload:  reload,
		logger:  observability.GetLogger().Named("window"),
		started: time.Now(),
		prevKey: map[ebiten.Key]bool{},
	}
	g.scene.Activate(repulsion.Env{Pointer: bus, Motion: motion}, cfg.Repulsion)
	g.logger.Debug("engine activated",
		zap.Float64("radius", cfg.Repulsion.Radius),
		zap.Float64("strength", cfg.Repulsion.Strength),
		zap.String("bounds", cfg.Repulsion.Bounds),
		zap.Bool("reduced_motion", motion.ReducedMotion()))
	return g
}

func (g *game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.drainReload()

	mouseX, mouseY := ebiten.CursorPosition()
	pointer := geom.Vector2{X: float64(mouseX), Y: float64(mouseY)}
	g.poller.Sample(pointer)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.scene.Click(pointer) {
		_, catches := g.scene.Stats()
		g.logger.Info("button caught", zap.Int("catches", catches))
	}

	if justPressed(ebiten.KeyD) {
		g.cfg.Repulsion.Disabled = !g.cfg.Repulsion.Disabled
		g.apply()
	}
	if justPressed(ebiten.KeyM) {
		reduced := g.motion.Flip()
		g.logger.Info("reduced motion toggled", zap.Bool("reduced_motion", reduced))
	}
	if justPressed(ebiten.KeyEqual) {
		g.cfg.Repulsion.Strength += strengthStep
		g.apply()
	}
	if justPressed(ebiten.KeyMinus) && g.cfg.Repulsion.Strength >= strengthStep {
		g.cfg.Repulsion.Strength -= strengthStep
		g.apply()
	}
	if justPressed(ebiten.KeyBracketRight) {
		g.cfg.Repulsion.Radius += radiusStep
		g.apply()
	}
	if justPressed(ebiten.KeyBracketLeft) && g.cfg.Repulsion.Radius >= radiusStep {
		g.cfg.Repulsion.Radius -= radiusStep
		g.apply()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openProfile(); err != nil {
			g.status.report(err)
			showError(err)
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	if g.scene.Step(dt) {
		intensity := g.scene.Handle().Target().Len() / g.cfg.Repulsion.Strength
		if err := g.cue.Play(geom.Clamp01(intensity)); g.status.report(err) {
			g.logger.Warn("sound disabled", zap.Error(err))
		}
	}

	g.time += dt.Seconds()
	g.colorPhase += config.ColorShiftSpeed
	return nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// apply pushes g.cfg.Repulsion into the running engine.
func (g *game) apply() {
	g.scene.Reconfigure(g.cfg.Repulsion)
	g.logger.Debug("engine reconfigured",
		zap.Float64("radius", g.cfg.Repulsion.Radius),
		zap.Float64("strength", g.cfg.Repulsion.Strength),
		zap.Bool("disabled", g.cfg.Repulsion.Disabled))
}

func (g *game) drainReload() {
	for {
		select {
		case cfg, ok := <-g.reload:
			if !ok {
				g.reload = nil
				return
			}
			g.cfg.Repulsion = cfg.Repulsion
			g.apply()
			g.logger.Info("config reloaded")
		default:
			return
		}
	}
}

func (g *game) openProfile() error {
	path, err := selectProfile()
	if err != nil || path == "" {
		return err
	}
	cfg, _, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load profile %s: %w", path, err)
	}
	g.cfg.Repulsion = cfg.Repulsion
	g.apply()
	g.status.clear()
	g.logger.Info("profile loaded", zap.String("path", path))
	return nil
}

func (g *game) close() {
	g.scene.Deactivate()
	dodges, catches := g.scene.Stats()
	g.logger.Debug("engine deactivated", zap.Int("dodges", dodges), zap.Int("catches", catches))
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, motion *repulsion.ToggleMotion, reload <-chan *config.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(cfg, motion, reload)
	defer g.close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
