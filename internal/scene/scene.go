// Package scene drives which full-screen scene is mounted.
//
// The Controller is the only owner of the application state. Each scene
// receives just the callback for its outgoing edge, and owns the timers it
// starts through a timer.Group released on Unmount.
package scene

import (
	"image"
	"time"

	"github.com/iburimskiy/star-oracle/internal/state"
	"github.com/iburimskiy/star-oracle/internal/timer"
)

// Scene is the model behind one full-screen mode. Drawing lives elsewhere;
// a scene only knows its layout, its timers and its click targets.
type Scene interface {
	State() state.State
	Mount(timers *timer.Group)
	Unmount()
	Layout(width, height int)
	Click(pt image.Point) bool
	// Age is the time since Mount, used for fade-ins.
	Age() time.Duration
}

type base struct {
	timers    *timer.Group
	mountedAt time.Duration
	bounds    image.Rectangle
}

func (b *base) Mount(timers *timer.Group) {
	b.timers = timers
	b.mountedAt = timers.Now()
}

func (b *base) Unmount() {
	b.timers.Stop()
}

func (b *base) Age() time.Duration {
	if b.timers == nil {
		return 0
	}
	return b.timers.Now() - b.mountedAt
}

func (b *base) Layout(width, height int) {
	b.bounds = image.Rect(0, 0, width, height)
}

func (b *base) Bounds() image.Rectangle {
	return b.bounds
}

// centered returns a w x h rectangle centred on (cx, cy).
func centered(cx, cy, w, h int) image.Rectangle {
	return image.Rect(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)
}
