package scene

import (
	"image"
	"testing"
	"time"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/timer"
)

func TestRitualLayoutRow(t *testing.T) {
	r := NewRitual(func(Choice) {})
	r.Layout(1280, 800)
	if r.Stacked() {
		t.Fatal("wide viewport should not stack")
	}
	cards := r.Cards()
	if cards[0].Rect.Dx() != config.CardWidth || cards[0].Rect.Dy() != config.CardHeight {
		t.Fatalf("side card %v", cards[0].Rect)
	}
	if cards[1].Rect.Dx() != config.CoreCardWidth || cards[1].Rect.Dy() != config.CoreCardHeight {
		t.Fatalf("core card %v", cards[1].Rect)
	}
	for i := 1; i < len(cards); i++ {
		if gap := cards[i].Rect.Min.X - cards[i-1].Rect.Max.X; gap != config.CardGap {
			t.Fatalf("gap %d between cards %d and %d", gap, i-1, i)
		}
	}
	mid := (cards[1].Rect.Min.X + cards[1].Rect.Max.X) / 2
	if mid != 640 {
		t.Fatalf("core card centred at %d", mid)
	}
}

func TestRitualLayoutStacksOnNarrowViewport(t *testing.T) {
	r := NewRitual(func(Choice) {})
	r.Layout(400, 1400)
	if !r.Stacked() {
		t.Fatal("narrow viewport should stack")
	}
	cards := r.Cards()
	for i := 1; i < len(cards); i++ {
		if cards[i].Rect.Min.Y <= cards[i-1].Rect.Max.Y-1 {
			t.Fatalf("card %d overlaps card %d", i, i-1)
		}
	}
	for _, c := range cards {
		if !c.Rect.In(r.Bounds()) {
			t.Fatalf("card %v outside %v", c.Rect, r.Bounds())
		}
	}
}

func TestRitualLayoutShrinksToFit(t *testing.T) {
	r := NewRitual(func(Choice) {})
	r.Layout(780, 500)
	for _, c := range r.Cards() {
		if !c.Rect.In(r.Bounds()) {
			t.Fatalf("card %v outside %v", c.Rect, r.Bounds())
		}
	}
}

func TestRitualClickSelectsCardUnderPointer(t *testing.T) {
	var got []Choice
	r := NewRitual(func(c Choice) { got = append(got, c) })
	r.Layout(1280, 800)

	for _, c := range r.Cards() {
		center := image.Pt((c.Rect.Min.X+c.Rect.Max.X)/2, (c.Rect.Min.Y+c.Rect.Max.Y)/2)
		if !r.Click(center) {
			t.Fatalf("click on %v not handled", c.Choice)
		}
	}
	if r.Click(image.Pt(5, 5)) {
		t.Fatal("click on empty space handled")
	}
	if len(got) != 3 || got[0] != Stardust || got[1] != Core || got[2] != Scroll {
		t.Fatalf("selections %v", got)
	}
}

func TestIdleClickRequiresBounds(t *testing.T) {
	started := 0
	s := NewIdle(func() { started++ })
	if s.Click(image.Pt(10, 10)) {
		t.Fatal("click handled before layout")
	}
	s.Layout(100, 100)
	if !s.Click(image.Pt(10, 10)) || started != 1 {
		t.Fatal("click inside bounds should start")
	}
	if s.Click(image.Pt(150, 10)) {
		t.Fatal("click outside bounds handled")
	}
}

func TestRevelationButtonGatedByReveal(t *testing.T) {
	sched := timer.NewScheduler()
	restarts := 0
	s := NewRevelation("Do not hesitate.", 1200*time.Millisecond, func() { restarts++ })
	s.Layout(1280, 800)
	s.Mount(timer.NewGroup(sched))

	btn := s.Button().Min.Add(image.Pt(2, 2))
	if s.Click(btn) || s.Revealed() {
		t.Fatal("button active before reveal")
	}
	sched.Advance(1200 * time.Millisecond)
	if !s.Revealed() {
		t.Fatal("content not revealed after delay")
	}
	sched.Advance(300 * time.Millisecond)
	if s.SinceReveal() != 300*time.Millisecond {
		t.Fatalf("since reveal = %v", s.SinceReveal())
	}
	if s.Click(s.Book().Min) {
		t.Fatal("click on the book should not restart")
	}
	if !s.Click(btn) || restarts != 1 {
		t.Fatal("button click should restart")
	}
}

func TestRevelationLayoutFitsSmallWindows(t *testing.T) {
	for _, size := range []image.Point{{1280, 800}, {800, 600}, {360, 640}, {1920, 400}} {
		s := NewRevelation("x", 0, func() {})
		s.Layout(size.X, size.Y)
		bounds := image.Rect(0, 0, size.X, size.Y)
		if !s.Button().In(bounds) {
			t.Errorf("%v: button %v outside window", size, s.Button())
		}
		if s.Book().Dx() <= 0 || s.Book().Dy() <= 0 {
			t.Errorf("%v: empty book %v", size, s.Book())
		}
	}
}

func TestTransitionFiresAfterDelayUnlessUnmounted(t *testing.T) {
	sched := timer.NewScheduler()
	done := 0
	s := NewTransition(2*time.Second, func() { done++ })
	s.Mount(timer.NewGroup(sched))
	if s.Click(image.Pt(0, 0)) {
		t.Fatal("transition takes no input")
	}
	sched.Advance(2 * time.Second)
	if done != 1 {
		t.Fatalf("done = %d", done)
	}

	s2 := NewTransition(2*time.Second, func() { done++ })
	s2.Mount(timer.NewGroup(sched))
	s2.Unmount()
	sched.Advance(time.Minute)
	if done != 1 {
		t.Fatal("unmounted transition fired")
	}
}
