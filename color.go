package ccircle

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is a straight-alpha RGBA colour with components in [0,1].
type Color struct {
	R, G, B, A float32
}

var (
	White      = Color{1, 1, 1, 1}
	Black      = Color{0, 0, 0, 1}
	Background = Color{0.1, 0.1, 0.1, 1}
)

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorOf converts any image/color value.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// ColorNamed looks up an SVG colour keyword such as "cornflowerblue".
func ColorNamed(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return ColorOf(c), true
}

// NRGBA quantizes the colour to 8 bits per channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
