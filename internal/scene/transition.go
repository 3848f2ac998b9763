package scene

import (
	"image"
	"time"

	"github.com/iburimskiy/star-oracle/internal/state"
	"github.com/iburimskiy/star-oracle/internal/timer"
)

// Transition has no input; it reveals the answer after a fixed delay.
type Transition struct {
	base
	delay  time.Duration
	onDone func()
}

func NewTransition(delay time.Duration, onDone func()) *Transition {
	return &Transition{delay: delay, onDone: onDone}
}

func (s *Transition) State() state.State { return state.Transition }

func (s *Transition) Mount(timers *timer.Group) {
	s.base.Mount(timers)
	timers.After(s.delay, s.onDone)
}

func (s *Transition) Click(image.Point) bool { return false }
