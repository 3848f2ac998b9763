// Package timer runs delayed and periodic callbacks on virtual time.
//
// The scheduler never reads the wall clock: the owner advances it explicitly
// (once per game tick), so callbacks always run on the caller's goroutine and
// tests can replay minutes of behaviour instantly.
package timer

import "time"

// Scheduler holds pending tasks ordered by due time.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*Task
}

// Task is a handle to a scheduled callback.
type Task struct {
	s       *Scheduler
	due     time.Duration
	every   time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, d after the current virtual time.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	return s.add(d, 0, fn)
}

// Every runs fn each interval until stopped. Non-positive intervals are
// clamped to one nanosecond so Advance always terminates.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(d, every time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Task{s: s, due: s.now + d, every: every, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending reports how many tasks are still scheduled.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves virtual time forward by d, firing every task that falls due
// in order of due time (ties in scheduling order). Periodic tasks catch up on
// every missed interval. Tasks scheduled by a callback fire in the same call
// if they fall due before the new time.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d
	for {
		t := s.next(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.every > 0 {
			t.due += t.every
		} else {
			s.remove(t)
		}
		t.fn()
	}
	s.now = target
}

func (s *Scheduler) next(limit time.Duration) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) remove(t *Task) {
	t.stopped = true
	for i, x := range s.tasks {
		if x == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Stop cancels the task. It reports whether the task was still pending.
// Stopping a nil or already finished task is a no-op.
func (t *Task) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.s.remove(t)
	return true
}

// Active reports whether the task will still fire.
func (t *Task) Active() bool {
	return t != nil && !t.stopped
}
