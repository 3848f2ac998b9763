package render

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawText draws s centred horizontally on x with its top at y.
func drawText(dst *ebiten.Image, s string, f text.Face, x, y float64, clr color.Color, alpha float64) {
	if f == nil || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = f.Metrics().HAscent + f.Metrics().HDescent + f.Metrics().HLineGap
	text.Draw(dst, s, f, op)
}

// wrap breaks s into lines no wider than width.
func wrap(s string, f text.Face, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if cw, _ := text.Measure(candidate, f, 0); cw > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// drawParagraph wraps and draws s centred on x, returning the y below it.
func drawParagraph(dst *ebiten.Image, s string, f text.Face, x, y, width float64, clr color.Color, alpha float64) float64 {
	m := f.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap
	for _, line := range wrap(s, f, width) {
		drawText(dst, line, f, x, y, clr, alpha)
		y += lh
	}
	return y
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, clr, true)
}

// strokeArc draws an arc clockwise from start over sweep radians.
func strokeArc(dst *ebiten.Image, cx, cy, r, start, sweep float64, width float32, clr color.Color) {
	if sweep <= 0 {
		return
	}
	segments := int(math.Ceil(sweep / (2 * math.Pi) * 96))
	step := sweep / float64(segments)
	px, py := cx+math.Cos(start)*r, cy+math.Sin(start)*r
	for i := 1; i <= segments; i++ {
		a := start + step*float64(i)
		x, y := cx+math.Cos(a)*r, cy+math.Sin(a)*r
		vector.StrokeLine(dst, float32(px), float32(py), float32(x), float32(y), width, clr, true)
		px, py = x, y
	}
}

// corners draws L-shaped accents inside each corner of r.
func corners(dst *ebiten.Image, r image.Rectangle, arm float32, clr color.Color) {
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	for _, c := range [][4]float32{
		{x0, y0, 1, 1},
		{x1, y0, -1, 1},
		{x0, y1, 1, -1},
		{x1, y1, -1, -1},
	} {
		vector.StrokeLine(dst, c[0], c[1], c[0]+arm*c[2], c[1], 2, clr, true)
		vector.StrokeLine(dst, c[0], c[1], c[0], c[1]+arm*c[3], 2, clr, true)
	}
}

// star draws an n-pointed line star.
func star(dst *ebiten.Image, cx, cy, r float64, points int, clr color.Color) {
	for i := 0; i < points; i++ {
		a := float64(i) * math.Pi / float64(points)
		dx, dy := math.Cos(a)*r, math.Sin(a)*r
		vector.StrokeLine(dst, float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy), 1, clr, true)
	}
}

// fade maps an age in ms onto an opacity ramp of the given length.
func fade(ageMs, lengthMs float64) float64 {
	if lengthMs <= 0 {
		return 1
	}
	return math.Min(1, math.Max(0, ageMs/lengthMs))
}

func center(r image.Rectangle) (float64, float64) {
	return float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y+r.Max.Y) / 2
}
