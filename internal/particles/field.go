// Package particles owns the star field behind every scene.
//
// A Field is a fixed arena of particles allocated once and mutated in place
// each frame. The motion applied depends on the application state, chosen
// once per frame from a table of policies.
package particles

import (
	"math"
	"math/rand"
	"time"

	"golang.org/x/image/math/f64"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/palette"
	"github.com/iburimskiy/star-oracle/internal/state"
)

type Particle struct {
	X, Y        float64
	VX, VY      float64
	Size        float64
	Alpha       float64
	OrbitAngle  float64
	OrbitRadius float64
	Tone        palette.Tone
}

type Field struct {
	particles []Particle
	width     float64
	height    float64
	rng       *rand.Rand
}

// New seeds n particles over a width x height surface.
func New(n int, width, height float64, rng *rand.Rand) *Field {
	if n < 0 {
		n = 0
	}
	f := &Field{
		particles: make([]Particle, n),
		width:     width,
		height:    height,
		rng:       rng,
	}
	for i := range f.particles {
		f.particles[i] = f.spawn()
	}
	return f
}

func (f *Field) spawn() Particle {
	r := f.rng
	tone := palette.Star
	if r.Float64() < config.GoldShare {
		tone = palette.Gold
	}
	return Particle{
		X:           r.Float64() * f.width,
		Y:           r.Float64() * f.height,
		VX:          (r.Float64() - 0.5) * config.DriftSpeed,
		VY:          (r.Float64() - 0.5) * config.DriftSpeed,
		Size:        config.MinParticleSize + r.Float64()*config.ParticleSizeRange,
		Alpha:       config.MinParticleAlpha + r.Float64()*config.ParticleAlphaSpan,
		OrbitAngle:  r.Float64() * 2 * math.Pi,
		OrbitRadius: config.RingRadiusMin + r.Float64()*config.RingRadiusSpan,
		Tone:        tone,
	}
}

// Resize changes the surface. Particles keep their coordinates; any that now
// lie outside are brought back by the edge rule on a later frame.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
}

func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

func (f *Field) Center() f64.Vec2 {
	return f64.Vec2{f.width / 2, f.height / 2}
}

func (f *Field) Len() int {
	return len(f.particles)
}

// At returns a pointer into the arena; it stays valid for the field's lifetime.
func (f *Field) At(i int) *Particle {
	return &f.particles[i]
}

// Step advances every particle by one frame under the policy for s.
// now is the time since start and drives the time-based motions.
func (f *Field) Step(s state.State, now time.Duration) {
	if f.width <= 0 || f.height <= 0 {
		return
	}
	pol := policyFor(s)
	fr := frame{
		center: f.Center(),
		width:  f.width,
		height: f.height,
		ms:     float64(now) / float64(time.Millisecond),
	}
	for i := range f.particles {
		p := &f.particles[i]
		pol.move(p, i, fr)
		pol.edge(p, fr)
	}
}

// SkyRotation is the draw-time rotation of the whole field around its centre.
func SkyRotation(s state.State, now time.Duration) float64 {
	if s != state.Idle {
		return 0
	}
	return float64(now) / float64(time.Millisecond) * config.SkyRotationSpeed
}

// Twinkle is the instantaneous alpha of particle i; neighbours are out of phase.
func (f *Field) Twinkle(i int, now time.Duration) float64 {
	ms := float64(now) / float64(time.Millisecond)
	return f.particles[i].Alpha * (config.TwinkleFloor + config.TwinkleDepth*math.Sin(ms*config.TwinkleSpeed+float64(i)))
}

// DrawSize is the radius particle i is drawn with this frame. The occasional
// enlarged draw is taken from r so replays with the same seed match.
func (f *Field) DrawSize(i int, r *rand.Rand) float64 {
	size := f.particles[i].Size
	if r != nil && r.Float64() < config.JitterChance {
		size *= config.JitterScale
	}
	return size
}

// Glows reports whether particle i is large enough to get a halo.
func (f *Field) Glows(i int) bool {
	return f.particles[i].Size > config.GlowSizeThreshold
}
