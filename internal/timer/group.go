package timer

import "time"

// Group owns the tasks created by one component. Stop releases all of them,
// so a component that calls Stop on every exit path can never be called back
// after it is gone.
type Group struct {
	s     *Scheduler
	tasks []*Task
}

func NewGroup(s *Scheduler) *Group {
	return &Group{s: s}
}

func (g *Group) After(d time.Duration, fn func()) *Task {
	return g.track(g.s.After(d, fn))
}

func (g *Group) Every(interval time.Duration, fn func()) *Task {
	return g.track(g.s.Every(interval, fn))
}

func (g *Group) track(t *Task) *Task {
	live := g.tasks[:0]
	for _, x := range g.tasks {
		if x.Active() {
			live = append(live, x)
		}
	}
	g.tasks = append(live, t)
	return t
}

// Stop cancels every task in the group and returns how many were pending.
// A nil group is a no-op.
func (g *Group) Stop() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, t := range g.tasks {
		if t.Stop() {
			n++
		}
	}
	g.tasks = nil
	return n
}

// Now returns the owning scheduler's virtual time.
func (g *Group) Now() time.Duration {
	return g.s.Now()
}
