package scene

import (
	"image"
	"math"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/state"
)

// Choice is one of the three ritual artifacts. The choice is cosmetic: every
// card leads to the same draw.
type Choice int

const (
	Stardust Choice = iota
	Core
	Scroll
)

var Choices = []Choice{Stardust, Core, Scroll}

func (c Choice) Title() string {
	switch c {
	case Stardust:
		return "Stardust"
	case Core:
		return "The Core"
	case Scroll:
		return "The Scroll"
	}
	return ""
}

func (c Choice) Caption() string {
	switch c {
	case Stardust:
		return "Draw from the cosmos"
	case Core:
		return "Ignite the center"
	case Scroll:
		return "Read the prophecy"
	}
	return ""
}

func (c Choice) String() string { return c.Title() }

type Card struct {
	Choice Choice
	Rect   image.Rectangle
}

// Ritual lays out three cards; clicking any of them selects.
type Ritual struct {
	base
	onSelect func(Choice)
	cards    [3]Card
	stacked  bool
}

func NewRitual(onSelect func(Choice)) *Ritual {
	return &Ritual{onSelect: onSelect}
}

func (s *Ritual) State() state.State { return state.RitualSelection }

// Layout places the cards in a row, or in a column on narrow viewports.
// Cards shrink uniformly when the row or column does not fit.
func (s *Ritual) Layout(width, height int) {
	s.base.Layout(width, height)
	s.stacked = width < config.StackBreakpoint

	sizes := [3]image.Point{
		{config.CardWidth, config.CardHeight},
		{config.CoreCardWidth, config.CoreCardHeight},
		{config.CardWidth, config.CardHeight},
	}
	const header = 160
	gap := config.CardGap
	if s.stacked {
		gap = config.CardGapStacked
	}
	// span runs along the layout axis, depth across it.
	span, depth := 2*gap, 0
	for _, sz := range sizes {
		along, across := sz.X, sz.Y
		if s.stacked {
			along, across = sz.Y, sz.X
		}
		span += along
		depth = max(depth, across)
	}
	alongRoom, acrossRoom := width-2*gap, height-header-gap
	if s.stacked {
		alongRoom, acrossRoom = height-header-gap, width-2*gap
	}
	scale := 1.0
	if span > alongRoom && alongRoom > 0 {
		scale = float64(alongRoom) / float64(span)
	}
	if depth > acrossRoom && acrossRoom > 0 {
		scale = min(scale, float64(acrossRoom)/float64(depth))
	}
	px := func(v int) int { return int(math.Round(float64(v) * scale)) }

	if s.stacked {
		y := header + (height-header-px(span))/2
		for i, c := range Choices {
			w, h := px(sizes[i].X), px(sizes[i].Y)
			s.cards[i] = Card{Choice: c, Rect: image.Rect(width/2-w/2, y, width/2-w/2+w, y+h)}
			y += h + px(gap)
		}
		return
	}
	cy := header/2 + height/2
	x := width/2 - px(span)/2
	for i, c := range Choices {
		w, h := px(sizes[i].X), px(sizes[i].Y)
		s.cards[i] = Card{Choice: c, Rect: image.Rect(x, cy-h/2, x+w, cy-h/2+h)}
		x += w + px(gap)
	}
}

func (s *Ritual) Cards() []Card { return s.cards[:] }

func (s *Ritual) Stacked() bool { return s.stacked }

// CardAt returns the card under pt.
func (s *Ritual) CardAt(pt image.Point) (Card, bool) {
	for _, c := range s.cards {
		if pt.In(c.Rect) {
			return c, true
		}
	}
	return Card{}, false
}

func (s *Ritual) Click(pt image.Point) bool {
	c, ok := s.CardAt(pt)
	if !ok {
		return false
	}
	s.onSelect(c.Choice)
	return true
}
