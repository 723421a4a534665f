package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/mouse-away/internal/config"
	"github.com/iburimskiy/mouse-away/internal/geom"
)

var (
	styleContainer = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleButton    = tcell.StyleDefault.Background(tcell.ColorSteelBlue).Foreground(tcell.ColorWhite).Bold(true)
	styleHover     = tcell.StyleDefault.Background(tcell.ColorSeaGreen).Foreground(tcell.ColorWhite).Bold(true)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// cellBox converts a pixel rectangle to inclusive cell coordinates.
func cellBox(r geom.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.Left / config.CellWidth))
	y0 = int(math.Round(r.Top / config.CellHeight))
	x1 = int(math.Round(r.Right/config.CellWidth)) - 1
	y1 = int(math.Round(r.Bottom/config.CellHeight)) - 1
	return x0, y0, x1, y1
}

func (h *Host) draw() {
	h.screen.Clear()
	h.drawContainer()
	h.drawButton()
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) drawContainer() {
	c, ok := h.scene.Container()
	if !ok {
		return
	}
	x0, y0, x1, y1 := cellBox(c)
	for x := x0 + 1; x < x1; x++ {
		h.screen.SetContent(x, y0, tcell.RuneHLine, nil, styleContainer)
		h.screen.SetContent(x, y1, tcell.RuneHLine, nil, styleContainer)
	}
	for y := y0 + 1; y < y1; y++ {
		h.screen.SetContent(x0, y, tcell.RuneVLine, nil, styleContainer)
		h.screen.SetContent(x1, y, tcell.RuneVLine, nil, styleContainer)
	}
	h.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, styleContainer)
	h.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, styleContainer)
	h.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, styleContainer)
	h.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, styleContainer)
}

func (h *Host) drawButton() {
	b, ok := h.scene.Button()
	if !ok {
		return
	}
	style := styleButton
	if p, seen := h.poller.Last(); seen && h.scene.Hovered(p) {
		style = styleHover
	}
	x0, y0, x1, y1 := cellBox(b)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			h.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	label := []rune(h.scene.Label())
	lx := x0 + (x1-x0+1-len(label))/2
	ly := y0 + (y1-y0)/2
	for i, r := range label {
		h.screen.SetContent(lx+i, ly, r, nil, style)
	}
}

func (h *Host) drawStatus() {
	dodges, catches := h.scene.Stats()
	state := "active"
	switch {
	case h.cfg.Repulsion.Disabled:
		state = "disabled"
	case h.scene.Handle() != nil && h.scene.Handle().ReducedMotion():
		state = "reduced motion"
	}
	line := fmt.Sprintf(" %s | dodges %d caught %d | d: disable  m: reduced motion  q: quit", state, dodges, catches)
	for i, r := range line {
		h.screen.SetContent(i, 0, r, nil, styleStatus)
	}
}

