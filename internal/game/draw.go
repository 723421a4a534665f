package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/mouse-away/internal/geom"
)

func (g *game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawContainer(screen)
	g.drawBubble(screen)
	g.drawTrail(screen)
	g.drawButton(screen)
	g.drawStatus(screen)
}

func (g *game) drawBackground(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for y := 0; y < h; y += 4 {
		ratio := float64(y) / float64(h)
		r := uint8(10 + 12*math.Sin(g.time*0.3+ratio*math.Pi))
		gv := uint8(12 + 10*math.Cos(g.time*0.2+ratio*math.Pi))
		b := uint8(20 + 15*math.Sin(g.time*0.4+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), float32(w), 4, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *game) drawContainer(screen *ebiten.Image) {
	c, ok := g.scene.Container()
	if !ok {
		return
	}
	vector.DrawFilledRect(screen, float32(c.Left), float32(c.Top), float32(c.Width), float32(c.Height), containerFill, false)
	vector.StrokeRect(screen, float32(c.Left), float32(c.Top), float32(c.Width), float32(c.Height), 1, containerStroke, false)
	ebitenutil.DebugPrintAt(screen, "Try to click "+g.scene.Label()+". It will try to avoid you.", int(c.Left)+8, int(c.Top)-18)
}

// drawBubble outlines the influence radius around the pointer.
func (g *game) drawBubble(screen *ebiten.Image) {
	p, ok := g.poller.Last()
	if !ok || g.cfg.Repulsion.Radius <= 0 {
		return
	}
	clr := bubbleActive
	if g.scene.Handle().ReducedMotion() || g.cfg.Repulsion.Disabled {
		clr = bubbleMuted
	}
	vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(g.cfg.Repulsion.Radius), 1, clr, true)
}

func (g *game) drawTrail(screen *ebiten.Image) {
	base, ok := g.scene.ButtonBase()
	if !ok {
		return
	}
	ghosts := g.scene.Trail().Snapshot(g.scene.Trail().Len())
	for i, off := range ghosts {
		if off == geom.Zero {
			continue
		}
		r := base.Translate(off)
		alpha := uint8(60 * float64(i+1) / float64(len(ghosts)))
		clr := hsv((g.colorPhase+float64(i)*0.01)*360, 0.6, 0.8, alpha)
		vector.StrokeRect(screen, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), 1, clr, false)
	}
}

func (g *game) drawButton(screen *ebiten.Image) {
	b, ok := g.scene.Button()
	if !ok {
		return
	}
	bgColor := pushColor(g.scene.Offset(), g.cfg.Repulsion.Strength)
	if p, seen := g.poller.Last(); seen && g.scene.Hovered(p) {
		bgColor = buttonHover
	}

	vector.DrawFilledRect(screen, float32(b.Left), float32(b.Top), float32(b.Width), float32(b.Height), bgColor, false)
	vector.StrokeRect(screen, float32(b.Left), float32(b.Top), float32(b.Width), float32(b.Height), 2, buttonStroke, false)

	text := g.scene.Label()
	textWidth := len(text) * 6
	ebitenutil.DebugPrintAt(screen, text, int(b.Left+(b.Width-float64(textWidth))/2), int(b.Top+(b.Height-16)/2))
}

func (g *game) drawStatus(screen *ebiten.Image) {
	dodges, catches := g.scene.Stats()
	state := "active"
	switch {
	case g.cfg.Repulsion.Disabled:
		state = "disabled"
	case g.scene.Handle().ReducedMotion():
		state = "reduced motion"
	}
	status := fmt.Sprintf("%s | %s | radius %.0f strength %.0f | dodges %d caught %d",
		clock(time.Since(g.started)), state,
		g.cfg.Repulsion.Radius, g.cfg.Repulsion.Strength, dodges, catches)
	status += g.status.String()
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, "D: disable  M: reduced motion  +/-: strength  [/]: radius  O: open profile  Esc/Q: quit", 12, screen.Bounds().Dy()-20)
}
