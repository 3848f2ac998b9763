package scene

import (
	"image"
	"log/slog"
	"time"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/state"
	"github.com/iburimskiy/star-oracle/internal/timer"
)

// Drawer supplies answers at ritual selection.
type Drawer interface {
	Draw() string
}

// Timing holds the scene delays.
type Timing struct {
	SilentTick      time.Duration
	SilentHold      time.Duration
	TransitionDelay time.Duration
	RevealDelay     time.Duration
}

func TimingFrom(cfg config.Config) Timing {
	return Timing{
		SilentTick:      cfg.SilentTick,
		SilentHold:      cfg.SilentHold,
		TransitionDelay: cfg.TransitionDelay,
		RevealDelay:     cfg.RevealDelay,
	}
}

// Controller is the application state machine:
//
//	Idle -> SilentQuestion -> RitualSelection -> Transition -> Revelation -> Idle
//
// Every edge swaps the mounted scene, releasing the old scene's timers first.
type Controller struct {
	sched  *timer.Scheduler
	pool   Drawer
	timing Timing
	log    *slog.Logger

	state     state.State
	answer    string
	scene     Scene
	enteredAt time.Duration
	width     int
	height    int
	closed    bool
	observers []func(from, to state.State)
}

// NewController starts in Idle with the Idle scene mounted.
func NewController(sched *timer.Scheduler, pool Drawer, timing Timing, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		sched:  sched,
		pool:   pool,
		timing: timing,
		log:    log,
		state:  state.Idle,
	}
	c.scene = c.build(state.Idle)
	c.scene.Mount(timer.NewGroup(sched))
	return c
}

func (c *Controller) State() state.State { return c.state }

// Answer is the drawn answer, empty outside Transition and Revelation.
func (c *Controller) Answer() string { return c.answer }

func (c *Controller) Scene() Scene { return c.scene }

// Since is the time spent in the current state.
func (c *Controller) Since() time.Duration { return c.sched.Now() - c.enteredAt }

// OnTransition registers fn to run after every edge.
func (c *Controller) OnTransition(fn func(from, to state.State)) {
	c.observers = append(c.observers, fn)
}

// Layout forwards the viewport size to the mounted scene and remembers it for
// scenes mounted later.
func (c *Controller) Layout(width, height int) {
	c.width, c.height = width, height
	c.scene.Layout(width, height)
}

// Click routes a tap to the mounted scene.
func (c *Controller) Click(pt image.Point) bool {
	if c.closed {
		return false
	}
	return c.scene.Click(pt)
}

// Close unmounts the current scene; no timer fires and no edge is taken after.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.scene.Unmount()
}

func (c *Controller) start() bool {
	return c.move(state.Idle, state.SilentQuestion, nil)
}

func (c *Controller) completeSilence() bool {
	return c.move(state.SilentQuestion, state.RitualSelection, nil)
}

func (c *Controller) selectRitual(choice Choice) bool {
	return c.move(state.RitualSelection, state.Transition, func() {
		c.answer = c.pool.Draw()
		c.log.Debug("ritual chosen", "choice", choice.String())
	})
}

func (c *Controller) reveal() bool {
	return c.move(state.Transition, state.Revelation, nil)
}

func (c *Controller) restart() bool {
	return c.move(state.Revelation, state.Idle, func() {
		c.answer = ""
	})
}

func (c *Controller) move(from, to state.State, apply func()) bool {
	if c.closed || c.state != from {
		c.log.Debug("edge ignored", "from", from.String(), "current", c.state.String())
		return false
	}
	c.scene.Unmount()
	if apply != nil {
		apply()
	}
	c.state = to
	c.enteredAt = c.sched.Now()
	c.scene = c.build(to)
	c.scene.Layout(c.width, c.height)
	c.scene.Mount(timer.NewGroup(c.sched))

	c.log.Debug("state changed", "from", from.String(), "to", to.String(), "answer", c.answer)
	for _, fn := range c.observers {
		fn(from, to)
	}
	return true
}

func (c *Controller) build(s state.State) Scene {
	switch s {
	case state.SilentQuestion:
		return NewSilent(c.timing.SilentTick, c.timing.SilentHold, func() { c.completeSilence() })
	case state.RitualSelection:
		return NewRitual(func(ch Choice) { c.selectRitual(ch) })
	case state.Transition:
		return NewTransition(c.timing.TransitionDelay, func() { c.reveal() })
	case state.Revelation:
		return NewRevelation(c.answer, c.timing.RevealDelay, func() { c.restart() })
	default:
		return NewIdle(func() { c.start() })
	}
}
