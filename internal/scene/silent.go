package scene

import (
	"image"
	"time"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/state"
	"github.com/iburimskiy/star-oracle/internal/timer"
)

// Silent counts from 0 to 100, one step per tick, then holds before firing
// its completion callback. Once the count is full a click on the rune circle
// skips the hold. Completion fires at most once.
type Silent struct {
	base
	tick, hold time.Duration
	onComplete func()

	progress  int
	ticker    *timer.Task
	holdTask  *timer.Task
	completed bool
	circle    image.Rectangle
}

func NewSilent(tick, hold time.Duration, onComplete func()) *Silent {
	return &Silent{tick: tick, hold: hold, onComplete: onComplete}
}

func (s *Silent) State() state.State { return state.SilentQuestion }

func (s *Silent) Mount(timers *timer.Group) {
	s.base.Mount(timers)
	s.ticker = timers.Every(s.tick, s.advance)
}

func (s *Silent) advance() {
	if s.progress >= config.SilentTarget {
		s.ticker.Stop()
		return
	}
	s.progress++
	if s.progress == config.SilentTarget {
		s.ticker.Stop()
		s.holdTask = s.timers.After(s.hold, s.complete)
	}
}

func (s *Silent) complete() {
	if s.completed {
		return
	}
	s.completed = true
	s.holdTask.Stop()
	s.onComplete()
}

func (s *Silent) Layout(width, height int) {
	s.base.Layout(width, height)
	s.circle = centered(width/2, height/2+40, config.RuneCircleSize, config.RuneCircleSize)
}

func (s *Silent) Click(pt image.Point) bool {
	if !s.Full() || s.completed || !pt.In(s.circle) {
		return false
	}
	s.complete()
	return true
}

// Progress is the counter in [0,100].
func (s *Silent) Progress() int { return s.progress }

func (s *Silent) Full() bool { return s.progress >= config.SilentTarget }

// Fraction is the share of the progress ring to draw.
func (s *Silent) Fraction() float64 {
	return float64(s.progress) / config.SilentTarget
}

// Numeral is the digit shown in the circle, 0 to 10.
func (s *Silent) Numeral() int { return s.progress / 10 }

func (s *Silent) Circle() image.Rectangle { return s.circle }
