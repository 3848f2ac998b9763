package scene

import (
	"image"
	"math/rand"
	"testing"
	"time"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/oracle"
	"github.com/iburimskiy/star-oracle/internal/state"
	"github.com/iburimskiy/star-oracle/internal/timer"
)

const frameStep = time.Second / 60

type fixture struct {
	sched *timer.Scheduler
	pool  *oracle.Pool
	c     *Controller
}

func newFixture(t *testing.T, seed int64) *fixture {
	t.Helper()
	pool, err := oracle.NewPool(rand.New(rand.NewSource(seed)), oracle.Answers)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	sched := timer.NewScheduler()
	c := NewController(sched, pool, TimingFrom(config.Default()), nil)
	c.Layout(1280, 800)
	return &fixture{sched: sched, pool: pool, c: c}
}

// run advances in frame-sized steps, like the game loop does.
func (f *fixture) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frameStep {
		f.sched.Advance(min(frameStep, d-elapsed))
	}
}

func (f *fixture) center() image.Point {
	return image.Pt(640, 400)
}

func TestEndToEndScenario(t *testing.T) {
	f := newFixture(t, 1)
	c := f.c
	if c.State() != state.Idle || c.Answer() != "" {
		t.Fatalf("initial state %v answer %q", c.State(), c.Answer())
	}

	if !c.Click(f.center()) {
		t.Fatal("idle click not handled")
	}
	if c.State() != state.SilentQuestion {
		t.Fatalf("expected silent question, got %v", c.State())
	}
	silent := c.Scene().(*Silent)
	if silent.Progress() != 0 {
		t.Fatalf("counter starts at %d", silent.Progress())
	}

	f.sched.Advance(10 * time.Second)
	if silent.Progress() != 100 {
		t.Fatalf("after 10s counter = %d", silent.Progress())
	}
	if c.State() != state.SilentQuestion {
		t.Fatal("left silent scene before the hold elapsed")
	}
	f.sched.Advance(1199 * time.Millisecond)
	if c.State() != state.SilentQuestion {
		t.Fatal("hold elapsed early")
	}
	f.sched.Advance(time.Millisecond)
	if c.State() != state.RitualSelection {
		t.Fatalf("expected ritual selection, got %v", c.State())
	}

	ritual := c.Scene().(*Ritual)
	card := ritual.Cards()[2].Rect
	if !c.Click(card.Min.Add(image.Pt(5, 5))) {
		t.Fatal("card click not handled")
	}
	if c.State() != state.Transition {
		t.Fatalf("expected transition, got %v", c.State())
	}
	answer := c.Answer()
	if !f.pool.Contains(answer) {
		t.Fatalf("answer %q not in pool", answer)
	}

	f.sched.Advance(1999 * time.Millisecond)
	if c.State() != state.Transition {
		t.Fatal("revelation before 2000ms")
	}
	f.sched.Advance(time.Millisecond)
	if c.State() != state.Revelation {
		t.Fatalf("expected revelation, got %v", c.State())
	}
	rev := c.Scene().(*Revelation)
	if rev.Answer() != answer || c.Answer() != answer {
		t.Fatalf("revelation shows %q, drawn %q", rev.Answer(), answer)
	}

	f.sched.Advance(config.Default().RevealDelay)
	if !c.Click(rev.Button().Min.Add(image.Pt(1, 1))) {
		t.Fatal("restart click not handled")
	}
	if c.State() != state.Idle || c.Answer() != "" {
		t.Fatalf("after restart: state %v answer %q", c.State(), c.Answer())
	}
	if f.sched.Pending() != 0 {
		t.Fatalf("%d timers left after returning to idle", f.sched.Pending())
	}
}

func TestOutOfOrderEdgesAreIgnored(t *testing.T) {
	f := newFixture(t, 2)
	c := f.c

	edges := []struct {
		name string
		fire func() bool
	}{
		{"complete silence", c.completeSilence},
		{"select", func() bool { return c.selectRitual(Core) }},
		{"reveal", c.reveal},
		{"restart", c.restart},
	}
	for _, e := range edges {
		if e.fire() {
			t.Fatalf("%s accepted in idle", e.name)
		}
		if c.State() != state.Idle || c.Answer() != "" {
			t.Fatalf("%s changed idle state", e.name)
		}
	}

	if !c.start() || c.start() {
		t.Fatal("start should succeed exactly once")
	}
	if c.selectRitual(Stardust) || c.restart() || c.reveal() {
		t.Fatal("edge accepted from silent question")
	}
	if c.State() != state.SilentQuestion {
		t.Fatalf("state drifted to %v", c.State())
	}
}

func TestRandomTriggerSequencesStayDefined(t *testing.T) {
	f := newFixture(t, 3)
	c := f.c
	rng := rand.New(rand.NewSource(99))
	triggers := []func(){
		func() { c.start() },
		func() { c.completeSilence() },
		func() { c.selectRitual(Choices[rng.Intn(len(Choices))]) },
		func() { c.reveal() },
		func() { c.restart() },
		func() { c.Click(image.Pt(rng.Intn(1280), rng.Intn(800))) },
		func() { f.sched.Advance(time.Duration(rng.Intn(3000)) * time.Millisecond) },
	}
	for i := 0; i < 5000; i++ {
		triggers[rng.Intn(len(triggers))]()
		s := c.State()
		if !s.Valid() {
			t.Fatalf("step %d: undefined state %d", i, s)
		}
		if c.Scene().State() != s {
			t.Fatalf("step %d: scene %v mounted in state %v", i, c.Scene().State(), s)
		}
		hasAnswer := s == state.Transition || s == state.Revelation
		if hasAnswer != (c.Answer() != "") {
			t.Fatalf("step %d: state %v with answer %q", i, s, c.Answer())
		}
		if hasAnswer && !f.pool.Contains(c.Answer()) {
			t.Fatalf("step %d: answer %q not in pool", i, c.Answer())
		}
	}
}

func TestEveryChoiceDrawsFromPool(t *testing.T) {
	for _, choice := range Choices {
		t.Run(choice.String(), func(t *testing.T) {
			f := newFixture(t, int64(choice)+10)
			for i := 0; i < 50; i++ {
				f.c.start()
				f.c.completeSilence()
				if !f.c.selectRitual(choice) {
					t.Fatal("select rejected")
				}
				if !f.pool.Contains(f.c.Answer()) {
					t.Fatalf("answer %q not in pool", f.c.Answer())
				}
				f.c.reveal()
				f.c.restart()
			}
		})
	}
}

func TestRevelationNeverBeforeDelay(t *testing.T) {
	f := newFixture(t, 4)
	c := f.c
	var entered time.Duration
	c.OnTransition(func(from, to state.State) {
		switch to {
		case state.Transition:
			entered = f.sched.Now()
		case state.Revelation:
			if got := f.sched.Now() - entered; got < 2*time.Second {
				t.Errorf("revelation after %v", got)
			}
		}
	})
	c.start()
	c.completeSilence()
	c.selectRitual(Scroll)
	f.run(3 * time.Second)
	if c.State() != state.Revelation {
		t.Fatalf("expected revelation, got %v", c.State())
	}
}

func TestObserversSeeEveryEdge(t *testing.T) {
	f := newFixture(t, 5)
	var seen []state.State
	f.c.OnTransition(func(_, to state.State) { seen = append(seen, to) })

	f.c.Click(f.center())
	f.run(12 * time.Second)
	f.c.Click(f.c.Scene().(*Ritual).Cards()[1].Rect.Min)
	f.run(4 * time.Second)

	want := []state.State{state.SilentQuestion, state.RitualSelection, state.Transition, state.Revelation}
	if len(seen) != len(want) {
		t.Fatalf("saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("edge %d: %v, want %v", i, seen[i], want[i])
		}
	}
	if f.c.Since() != 2*time.Second {
		t.Fatalf("since = %v", f.c.Since())
	}
}

func TestCloseReleasesTimers(t *testing.T) {
	f := newFixture(t, 6)
	f.c.start()
	f.run(5 * time.Second)
	if f.sched.Pending() == 0 {
		t.Fatal("silent scene should hold a ticker")
	}
	silent := f.c.Scene().(*Silent)
	at := silent.Progress()

	f.c.Close()
	if f.sched.Pending() != 0 {
		t.Fatalf("%d timers pending after close", f.sched.Pending())
	}
	f.run(time.Minute)
	if silent.Progress() != at {
		t.Fatal("ticker fired after close")
	}
	if f.c.State() != state.SilentQuestion {
		t.Fatal("state moved after close")
	}
	if f.c.Click(f.center()) {
		t.Fatal("click handled after close")
	}
}

func TestLayoutReachesLaterScenes(t *testing.T) {
	f := newFixture(t, 7)
	f.c.Layout(600, 900)
	f.c.start()
	f.c.completeSilence()
	r := f.c.Scene().(*Ritual)
	if !r.Stacked() {
		t.Fatal("ritual mounted after a narrow layout should stack")
	}
}
