package particles

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/state"
)

type frame struct {
	center        f64.Vec2
	width, height float64
	ms            float64
}

type policy struct {
	move func(p *Particle, i int, fr frame)
	edge func(p *Particle, fr frame)
}

var policies = map[state.State]policy{
	state.Idle:            {move: ring, edge: wrap},
	state.SilentQuestion:  {move: focus, edge: wrap},
	state.RitualSelection: {move: scatter, edge: wrap},
	state.Transition:      {move: hyperdrive, edge: recycle},
	state.Revelation:      {move: drift, edge: wrap},
}

func policyFor(s state.State) policy {
	if p, ok := policies[s]; ok {
		return p
	}
	return policies[state.Revelation]
}

// ring pulls even particles onto a slowly turning ring; odd ones drift.
func ring(p *Particle, i int, fr frame) {
	if i%2 != 0 {
		drift(p, i, fr)
		return
	}
	tx := fr.center[0] + math.Cos(p.OrbitAngle)*p.OrbitRadius
	ty := fr.center[1] + math.Sin(p.OrbitAngle)*p.OrbitRadius
	ease(p, tx, ty, config.RingSmoothing)
	p.OrbitAngle += config.RingAngularSpeed
}

// focus gathers everything into a tight orbit turning with the clock.
func focus(p *Particle, _ int, fr frame) {
	a := p.OrbitAngle + fr.ms*config.FocusAngularSpeed
	tx := fr.center[0] + math.Cos(a)*config.FocusRadius
	ty := fr.center[1] + math.Sin(a)*config.FocusRadius
	ease(p, tx, ty, config.FocusSmoothing)
}

func scatter(p *Particle, _ int, _ frame) {
	p.X += p.VX * config.ScatterFactor
	p.Y += p.VY * config.ScatterFactor
}

func drift(p *Particle, _ int, _ frame) {
	p.X += p.VX
	p.Y += p.VY
}

// hyperdrive pushes particles straight out of the centre. A particle sitting
// on the centre leaves along its orbit angle.
func hyperdrive(p *Particle, _ int, fr frame) {
	dx := p.X - fr.center[0]
	dy := p.Y - fr.center[1]
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dx, dy, dist = math.Cos(p.OrbitAngle), math.Sin(p.OrbitAngle), 1
	}
	p.X += dx / dist * config.HyperdriveSpeed
	p.Y += dy / dist * config.HyperdriveSpeed
}

func ease(p *Particle, tx, ty, k float64) {
	p.X += (tx - p.X) * k
	p.Y += (ty - p.Y) * k
}

// wrap moves a particle that crossed an edge to the opposite one.
func wrap(p *Particle, fr frame) {
	if p.X < 0 {
		p.X = fr.width
	} else if p.X > fr.width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = fr.height
	} else if p.Y > fr.height {
		p.Y = 0
	}
}

// recycle sends a particle that left the surface back to the centre.
func recycle(p *Particle, fr frame) {
	if p.X < 0 || p.X > fr.width || p.Y < 0 || p.Y > fr.height {
		p.X, p.Y = fr.center[0], fr.center[1]
	}
}
