package scene

import (
	"image"

	"github.com/iburimskiy/star-oracle/internal/state"
)

// Idle invites the question; a click anywhere starts the ritual.
type Idle struct {
	base
	onStart func()
}

func NewIdle(onStart func()) *Idle {
	return &Idle{onStart: onStart}
}

func (s *Idle) State() state.State { return state.Idle }

func (s *Idle) Click(pt image.Point) bool {
	if !pt.In(s.bounds) {
		return false
	}
	s.onStart()
	return true
}
