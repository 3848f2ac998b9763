// Package render draws the sky and the mounted scene with Ebitengine.
package render

import (
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/particles"
	"github.com/iburimskiy/star-oracle/internal/scene"
	"github.com/iburimskiy/star-oracle/internal/state"
)

// Frame is what one Draw call needs to know about the application.
type Frame struct {
	State  state.State
	Now    time.Duration
	Since  time.Duration // time spent in State
	Scene  scene.Scene
	Cursor image.Point
}

type Renderer struct {
	fonts *Fonts
	sky   *Sky
}

// New returns a renderer. With nil fonts the scenes are skipped and only
// the sky is drawn.
func New(fonts *Fonts, jitter *rand.Rand) *Renderer {
	return &Renderer{fonts: fonts, sky: NewSky(jitter)}
}

func (r *Renderer) Draw(screen *ebiten.Image, field *particles.Field, f Frame) {
	if screen == nil {
		return
	}
	r.sky.Draw(screen, field, f.State, f.Now)
	r.drawFlash(screen, f)
	if r.fonts != nil && f.Scene != nil {
		r.drawScene(screen, f.Scene, f)
	}
}

// drawFlash whitens the sky while entering Transition and fades back out
// during the first second of Revelation.
func (r *Renderer) drawFlash(screen *ebiten.Image, f Frame) {
	const peak = 0.35
	var a float64
	switch f.State {
	case state.Transition:
		a = peak * fade(ms(f.Since), config.TransitionFlashFor)
	case state.Revelation:
		a = peak * (1 - fade(ms(f.Since), config.TransitionFlashFor))
	}
	if a <= 0 {
		return
	}
	fillRect(screen, screen.Bounds(), color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(a * 255)})
}
