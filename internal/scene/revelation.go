package scene

import (
	"image"
	"time"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/state"
	"github.com/iburimskiy/star-oracle/internal/timer"
)

// Revelation opens the book. The answer and the restart button appear after
// the reveal delay; the button ignores clicks until then.
type Revelation struct {
	base
	answer    string
	delay     time.Duration
	onRestart func()

	revealed   bool
	revealedAt time.Duration
	book       image.Rectangle
	button     image.Rectangle
}

func NewRevelation(answer string, delay time.Duration, onRestart func()) *Revelation {
	return &Revelation{answer: answer, delay: delay, onRestart: onRestart}
}

func (s *Revelation) State() state.State { return state.Revelation }

func (s *Revelation) Mount(timers *timer.Group) {
	s.base.Mount(timers)
	timers.After(s.delay, func() {
		s.revealed = true
		s.revealedAt = timers.Now()
	})
}

func (s *Revelation) Layout(width, height int) {
	s.base.Layout(width, height)

	bw := min(width-32, config.BookMaxWidth)
	if bw < 0 {
		bw = 0
	}
	bh := int(float64(bw) / config.BookAspect)
	room := height - config.RestartHeight - 96
	if bh > room && room > 0 {
		bh = room
		bw = int(float64(bh) * config.BookAspect)
	}
	top := (height - bh - config.RestartHeight - 48) / 2
	if top < 16 {
		top = 16
	}
	s.book = image.Rect(width/2-bw/2, top, width/2-bw/2+bw, top+bh)

	by := min(s.book.Max.Y+48, height-config.RestartHeight-8)
	s.button = image.Rect(width/2-config.RestartWidth/2, by, width/2+config.RestartWidth/2, by+config.RestartHeight)
}

func (s *Revelation) Click(pt image.Point) bool {
	if !s.revealed || !pt.In(s.button) {
		return false
	}
	s.onRestart()
	return true
}

func (s *Revelation) Answer() string { return s.answer }

func (s *Revelation) Revealed() bool { return s.revealed }

// SinceReveal is the time the content has been visible.
func (s *Revelation) SinceReveal() time.Duration {
	if !s.revealed {
		return 0
	}
	return s.timers.Now() - s.revealedAt
}

func (s *Revelation) Book() image.Rectangle { return s.book }

func (s *Revelation) Button() image.Rectangle { return s.button }
