// Package palette defines the colour tags used by the sky.
//
// A tag is the prefix of a CSS-style rgba() colour missing only its alpha,
// e.g. "rgba(252, 246, 186, ". Appending an alpha and a closing parenthesis
// yields a complete colour.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	GoldLight = "rgba(252, 246, 186, "
	GoldDark  = "rgba(179, 135, 40, "
	BlueDeep  = "rgba(2, 6, 23, "
	White     = "rgba(255, 255, 255, "
)

// Tone is a parsed colour tag.
type Tone struct {
	prefix  string
	r, g, b uint8
}

var (
	Gold  = MustTone(GoldLight)
	Brass = MustTone(GoldDark)
	Deep  = MustTone(BlueDeep)
	Star  = MustTone(White)
)

// NewTone parses a colour prefix.
func NewTone(prefix string) (Tone, error) {
	c, err := Parse(prefix + "1)")
	if err != nil {
		return Tone{}, fmt.Errorf("tone %q: %w", prefix, err)
	}
	return Tone{prefix: prefix, r: c.R, g: c.G, b: c.B}, nil
}

func MustTone(prefix string) Tone {
	t, err := NewTone(prefix)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tone) Prefix() string {
	return t.prefix
}

// Spec completes the tag with alpha (clamped to [0,1]).
func (t Tone) Spec(alpha float64) string {
	return t.prefix + strconv.FormatFloat(clamp01(alpha), 'f', -1, 64) + ")"
}

// Color is the parsed equivalent of Spec(alpha), without the string round trip.
func (t Tone) Color(alpha float64) color.NRGBA {
	return color.NRGBA{R: t.r, G: t.g, B: t.b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// Parse reads "rgba(r, g, b, a)" with integer channels in [0,255] and a in [0,1].
func Parse(spec string) (color.NRGBA, error) {
	s := strings.TrimSpace(spec)
	if !strings.HasPrefix(s, "rgba(") || !strings.HasSuffix(s, ")") {
		return color.NRGBA{}, fmt.Errorf("parse %q: not an rgba() colour", spec)
	}
	parts := strings.Split(s[len("rgba("):len(s)-1], ",")
	if len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("parse %q: want 4 components, got %d", spec, len(parts))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse %q: channel %d: %w", spec, i, err)
		}
		ch[i] = uint8(v)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse %q: alpha: %w", spec, err)
	}
	if a < 0 || a > 1 {
		return color.NRGBA{}, fmt.Errorf("parse %q: alpha %v out of range", spec, a)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: uint8(a*255 + 0.5)}, nil
}
