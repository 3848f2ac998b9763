package palette

import (
	"image/color"
	"math"
)

// Fixed colours of the scene art.
var (
	GradientCenter = Hex(0x0b1026)
	GradientEdge   = Hex(0x020617)
	Glow           = Hex(0xfcd34d)
	Ink            = Hex(0x5c4018)
	Parchment      = Hex(0xfdfbf7)
	Trim           = Hex(0xbf953f)
	CardFill       = Hex(0x0a0f29)
	Leather        = Hex(0x1a110a)
)

// Hex builds an opaque colour from 0xRRGGBB.
func Hex(rgb uint32) color.NRGBA {
	return color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// WithAlpha returns c with its alpha replaced by a in [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp01(a)*255 + 0.5)
	return c
}

// Lerp mixes a and b; t is clamped to [0,1].
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
