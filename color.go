package ember

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the fallback color used when a color string cannot be parsed.
var ColorWhite = Color{1, 1, 1, 1}

// ParseColor parses a hex color string ("#rgb" or "#rrggbb"). Unrecognized
// formats fall back to opaque white rather than returning an error; a bad
// color must never abort a simulation frame.
func ParseColor(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		debugf("ember: color %q not parseable, using white", s)
		return ColorWhite
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// LerpColor interpolates channel-wise between a and b by t.
func LerpColor(a, b Color, t float64) Color {
	blended := colorful.Color{R: a.R, G: a.G, B: a.B}.
		BlendRgb(colorful.Color{R: b.R, G: b.G, B: b.B}, t)
	return Color{
		R: blended.R,
		G: blended.G,
		B: blended.B,
		A: Lerp(a.A, b.A, t),
	}
}

// GradientAt samples an ordered multi-stop gradient at progress t in [0, 1].
// The two colors bracketing t are interpolated channel-wise; t >= 1 pins to
// the last color. Fewer than two stops return the sole stop or white.
func GradientAt(colors []Color, t float64) Color {
	switch len(colors) {
	case 0:
		return ColorWhite
	case 1:
		return colors[0]
	}
	if t >= 1 {
		return colors[len(colors)-1]
	}
	if t < 0 {
		t = 0
	}
	pos := t * float64(len(colors)-1)
	seg := int(math.Floor(pos))
	return LerpColor(colors[seg], colors[seg+1], pos-float64(seg))
}

// toRGBA converts to a premultiplied-friendly color.RGBA for rasterization.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(Clamp(c.R, 0, 1) * 255),
		G: uint8(Clamp(c.G, 0, 1) * 255),
		B: uint8(Clamp(c.B, 0, 1) * 255),
		A: uint8(Clamp(c.A, 0, 1) * 255),
	}
}
