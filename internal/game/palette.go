package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/mouse-away/internal/geom"
)

var (
	containerFill   = color.RGBA{R: 20, G: 25, B: 35, A: 160}
	containerStroke = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	buttonStroke    = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	buttonHover     = color.RGBA{R: 80, G: 160, B: 110, A: 255}
	bubbleActive    = color.RGBA{R: 100, G: 110, B: 130, A: 90}
	bubbleMuted     = color.RGBA{R: 130, G: 60, B: 60, A: 90}
)

// hsv returns an RGBA color for hue in degrees (any sign), saturation and
// value in [0, 1].
func hsv(h, s, v float64, alpha uint8) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch int(h / 60) {
	case 0:
		r, g = c, x
	case 1:
		r, g = x, c
	case 2:
		g, b = c, x
	case 3:
		g, b = x, c
	case 4:
		r, b = x, c
	default:
		r, b = c, x
	}
	return color.RGBA{R: uint8((r + m) * 255), G: uint8((g + m) * 255), B: uint8((b + m) * 255), A: alpha}
}

// pushColor moves from blue toward red as the offset approaches strength.
func pushColor(offset geom.Vector2, strength float64) color.RGBA {
	push := 0.0
	if strength > 0 {
		push = geom.Clamp01(offset.Len() / strength)
	}
	return hsv(220-200*push, 0.55, 0.75, 255)
}

// clock formats time since start as MM:SS.
func clock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
