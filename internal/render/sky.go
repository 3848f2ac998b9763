package render

import (
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/palette"
	"github.com/iburimskiy/star-oracle/internal/particles"
	"github.com/iburimskiy/star-oracle/internal/state"
)

// gradientScale is the downsampling of the cached background; the linear
// filter hides it.
const gradientScale = 4

// Sky paints the background gradient and the particle field.
type Sky struct {
	gradient *ebiten.Image
	size     image.Point
	jitter   *rand.Rand
}

func NewSky(jitter *rand.Rand) *Sky {
	return &Sky{jitter: jitter}
}

// Draw repaints the whole surface: gradient first, then every particle.
func (s *Sky) Draw(screen *ebiten.Image, field *particles.Field, st state.State, now time.Duration) {
	if screen == nil || field == nil {
		return
	}
	b := screen.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}
	s.drawGradient(screen, b.Size())

	c := field.Center()
	var geo ebiten.GeoM
	if rot := particles.SkyRotation(st, now); rot != 0 {
		geo.Translate(-c[0], -c[1])
		geo.Rotate(rot)
		geo.Translate(c[0], c[1])
	}
	for i := 0; i < field.Len(); i++ {
		p := field.At(i)
		x, y := geo.Apply(p.X, p.Y)
		size := float32(field.DrawSize(i, s.jitter))
		alpha := field.Twinkle(i, now)
		if field.Glows(i) {
			drawGlow(screen, float32(x), float32(y), size, alpha)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), size, p.Tone.Color(alpha), true)
	}
}

// drawGlow approximates a blurred halo with a few faint concentric discs.
func drawGlow(dst *ebiten.Image, x, y, r float32, alpha float64) {
	const rings = 3
	for k := rings; k >= 1; k-- {
		spread := float32(config.GlowRadius) * float32(k) / rings
		a := alpha * 0.18 / float64(k)
		vector.DrawFilledCircle(dst, x, y, r+spread, palette.WithAlpha(palette.Glow, a), true)
	}
}

func (s *Sky) drawGradient(screen *ebiten.Image, size image.Point) {
	if s.gradient == nil || s.size != size {
		if s.gradient != nil {
			s.gradient.Deallocate()
		}
		s.gradient = buildGradient(size)
		s.size = size
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(gradientScale, gradientScale)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.gradient, op)
}

// buildGradient renders the radial gradient from the lighter centre out to
// the dark edge, reaching the edge colour at a radius of the surface width.
func buildGradient(size image.Point) *ebiten.Image {
	w := (size.X + gradientScale - 1) / gradientScale
	h := (size.Y + gradientScale - 1) / gradientScale
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(size.X)/2, float64(size.Y)/2
	radius := float64(size.X)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x*gradientScale) - cx
			dy := float64(y*gradientScale) - cy
			t := math.Hypot(dx, dy) / radius
			img.SetNRGBA(x, y, palette.Lerp(palette.GradientCenter, palette.GradientEdge, t))
		}
	}
	return ebiten.NewImageFromImage(img)
}
