package render

import (
	"image"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/palette"
	"github.com/iburimskiy/star-oracle/internal/scene"
)

const lore = "In the beginning, there was only the vast, silent void. The stars were yet to be born, " +
	"and time itself held its breath. It was from this silence that the first whisper emerged, a sound " +
	"so faint it could only be heard by the heart. This whisper wove itself into the fabric of existence, " +
	"creating the threads of destiny that bind us all. The ancient astronomers knew that the alignment of " +
	"celestial bodies was not merely a matter of chance, but a language written in light. To seek an answer " +
	"is to partake in this ancient dialogue. When you ask, the universe does not merely reply; it resonates."

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (r *Renderer) drawScene(dst *ebiten.Image, s scene.Scene, f Frame) {
	alpha := fade(ms(s.Age()), config.SceneFadeIn)
	switch s := s.(type) {
	case *scene.Idle:
		r.drawIdle(dst, s, f, alpha)
	case *scene.Silent:
		r.drawSilent(dst, s, f, alpha)
	case *scene.Ritual:
		r.drawRitual(dst, s, f, alpha)
	case *scene.Revelation:
		r.drawRevelation(dst, s, f, alpha)
	}
}

func (r *Renderer) drawIdle(dst *ebiten.Image, s *scene.Idle, f Frame, alpha float64) {
	b := s.Bounds()
	cx := float64(b.Dx()) / 2
	y := float64(b.Dy()) * 0.12

	drawText(dst, "In the vast universe,", face(r.fonts.Regular, 24), cx, y, palette.Trim, alpha)
	drawText(dst, "Every thought finds its echo.", face(r.fonts.Bold, 36), cx, y+48, palette.Gold.Color(1), alpha)
	drawText(dst, "Please whisper your question to the stars.", face(r.fonts.Regular, 20), cx, y+108, palette.Trim, alpha*0.8)

	// The call to action arrives a second later and pulses.
	late := fade(ms(s.Age())-config.IdleCaptionDelay, config.SceneFadeIn)
	pulse := 0.6 + 0.4*math.Sin(ms(f.Now)*0.003)
	book := bookRect(b)
	drawText(dst, "WHEN YOU ARE READY, TOUCH THE STARS", face(r.fonts.Regular, 15), cx, float64(book.Min.Y)-56, palette.Trim, late*pulse)
	drawClosedBook(dst, book, late)
}

func bookRect(b image.Rectangle) image.Rectangle {
	w := min(384, b.Dx()*2/3)
	h := w * 2 / 3
	return image.Rect(b.Dx()/2-w/2, b.Dy()-h-64, b.Dx()/2-w/2+w, b.Dy()-64)
}

func drawClosedBook(dst *ebiten.Image, r image.Rectangle, alpha float64) {
	if alpha <= 0 || r.Empty() {
		return
	}
	cx, cy := center(r)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r.Dx())/2, palette.WithAlpha(palette.Glow, 0.08*alpha), true)

	body := image.Rect(r.Min.X, r.Min.Y+r.Dy()/5, r.Max.X, r.Max.Y)
	fillRect(dst, body, palette.WithAlpha(palette.Leather, alpha))
	strokeRect(dst, body, 1, palette.WithAlpha(palette.Hex(0x5c4018), alpha))
	spine := body.Min.X + body.Dx()/2
	for _, half := range []image.Rectangle{
		image.Rect(body.Min.X+8, body.Min.Y+8, spine-4, body.Max.Y-8),
		image.Rect(spine+4, body.Min.Y+8, body.Max.X-8, body.Max.Y-8),
	} {
		strokeRect(dst, half, 2, palette.WithAlpha(palette.Trim, 0.3*alpha))
	}

	// Pages slightly open above the cover.
	pages := image.Rect(r.Min.X+r.Dx()/40, r.Min.Y+r.Dy()/10, r.Max.X-r.Dx()/40, body.Min.Y+r.Dy()/3)
	fillRect(dst, pages, palette.WithAlpha(palette.Hex(0x2a1d12), alpha))
	vector.StrokeLine(dst, float32(pages.Min.X), float32(pages.Min.Y), float32(pages.Max.X), float32(pages.Min.Y), 1, palette.WithAlpha(palette.Hex(0x856b3e), alpha), true)
	vector.StrokeLine(dst, float32(spine), float32(pages.Min.Y), float32(spine), float32(body.Max.Y), 2, palette.WithAlpha(palette.Hex(0x3e2b10), alpha), true)
}

func (r *Renderer) drawSilent(dst *ebiten.Image, s *scene.Silent, f Frame, alpha float64) {
	circle := s.Circle()
	cx, cy := center(circle)
	drawText(dst, "Silence Your Mind", face(r.fonts.Bold, 34), cx, float64(circle.Min.Y)-130, palette.Gold.Color(1), alpha)
	drawText(dst, "The stars are listening...", face(r.fonts.Italic, 20), cx, float64(circle.Min.Y)-78, palette.Trim, 0.8*alpha)

	outer := float64(circle.Dx()) / 2
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(outer), 1, palette.WithAlpha(palette.Hex(0xf59e0b), 0.2*alpha), true)

	// Rune dots turn once every 20 seconds.
	turn := ms(f.Now) / 20000 * 2 * math.Pi
	for k := 0; k < 4; k++ {
		a := turn + float64(k)*math.Pi/2
		x, y := cx+math.Cos(a)*outer, cy+math.Sin(a)*outer
		vector.DrawFilledCircle(dst, float32(x), float32(y), 6, palette.WithAlpha(palette.Glow, 0.25*alpha), true)
		vector.DrawFilledCircle(dst, float32(x), float32(y), 3, palette.WithAlpha(palette.Hex(0xfbbf24), alpha), true)
	}

	vector.StrokeCircle(dst, float32(cx), float32(cy), config.ProgressRadius, 2, palette.WithAlpha(palette.Trim, 0.2*alpha), true)
	strokeArc(dst, cx, cy, config.ProgressRadius, -math.Pi/2, s.Fraction()*2*math.Pi, 4, palette.WithAlpha(palette.Trim, alpha))

	breathe := 0.5 + 0.5*math.Sin(ms(f.Now)/3000*2*math.Pi)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(56+8*breathe), palette.WithAlpha(palette.Hex(0xf59e0b), (0.05+0.05*breathe)*alpha), true)
	drawText(dst, strconv.Itoa(s.Numeral()), face(r.fonts.Regular, 28), cx, cy-16, palette.Gold.Color(1), alpha)

	if s.Full() {
		hover := 0.5
		if f.Cursor.In(circle) {
			hover = 1
		}
		drawText(dst, "touch the circle", face(r.fonts.Italic, 14), cx, float64(circle.Max.Y)+16, palette.Trim, hover*alpha)
	}
}

func (r *Renderer) drawRitual(dst *ebiten.Image, s *scene.Ritual, f Frame, alpha float64) {
	b := s.Bounds()
	cx := float64(b.Dx()) / 2
	top := float64(s.Cards()[0].Rect.Min.Y)
	if s.Stacked() {
		top = 140
	}
	drawText(dst, "Choose Your Fate", face(r.fonts.Bold, 40), cx, top-120, palette.Gold.Color(1), alpha)
	for k := -64; k < 64; k++ {
		a := (1 - math.Abs(float64(k))/64) * 0.5 * alpha
		vector.DrawFilledRect(dst, float32(cx)+float32(k), float32(top-56), 1, 1, palette.WithAlpha(palette.Hex(0xf59e0b), a), false)
	}

	// Cards arrive one after another.
	for i, c := range s.Cards() {
		stagger := fade(ms(s.Age())-float64(i)*150, 600)
		r.drawCard(dst, c, f.Cursor.In(c.Rect), stagger*alpha)
	}
}

func (r *Renderer) drawCard(dst *ebiten.Image, c scene.Card, hover bool, alpha float64) {
	if alpha <= 0 {
		return
	}
	rect := c.Rect
	if hover {
		rect = rect.Sub(image.Pt(0, 10))
	}
	fillRect(dst, rect, palette.WithAlpha(palette.CardFill, alpha))
	strokeRect(dst, rect, 1, palette.WithAlpha(palette.Trim, alpha))
	strokeRect(dst, rect.Inset(8), 1, palette.WithAlpha(palette.Trim, 0.3*alpha))
	corners(dst, rect, 32, palette.WithAlpha(palette.Trim, alpha))
	if hover {
		fillRect(dst, rect, palette.WithAlpha(palette.Hex(0xf59e0b), 0.1*alpha))
	}

	cx, cy := center(rect)
	iconY := cy - 36
	glow := 0.2
	if hover {
		glow = 0.4
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(iconY), 44, palette.WithAlpha(palette.Glow, glow*0.3*alpha), true)
	vector.DrawFilledCircle(dst, float32(cx), float32(iconY), 38, palette.WithAlpha(palette.Hex(0x1a203d), alpha), true)
	vector.StrokeCircle(dst, float32(cx), float32(iconY), 38, 1, palette.WithAlpha(palette.Hex(0xf59e0b), 0.3*alpha), true)
	ink := palette.WithAlpha(palette.Hex(0xfde68a), alpha)
	switch c.Choice {
	case scene.Stardust:
		star(dst, cx-8, iconY-6, 10, 2, ink)
		star(dst, cx+10, iconY+8, 6, 2, ink)
		star(dst, cx+12, iconY-12, 4, 2, ink)
	case scene.Core:
		star(dst, cx, iconY, 22, 4, ink)
	case scene.Scroll:
		body := image.Rect(int(cx)-14, int(iconY)-16, int(cx)+14, int(iconY)+16)
		strokeRect(dst, body, 1, ink)
		vector.StrokeCircle(dst, float32(body.Min.X), float32(body.Min.Y), 4, 1, ink, true)
		vector.StrokeCircle(dst, float32(body.Max.X), float32(body.Max.Y), 4, 1, ink, true)
		for k := 1; k <= 3; k++ {
			ly := float32(body.Min.Y + k*8)
			vector.StrokeLine(dst, float32(body.Min.X+5), ly, float32(body.Max.X-5), ly, 1, ink, true)
		}
	}
	drawText(dst, c.Choice.Title(), face(r.fonts.Bold, 24), cx, cy+24, palette.Gold.Color(1), alpha)
	drawText(dst, c.Choice.Caption(), face(r.fonts.Italic, 14), cx, cy+60, palette.Gold.Color(0.4), alpha)
}

func (r *Renderer) drawRevelation(dst *ebiten.Image, s *scene.Revelation, f Frame, alpha float64) {
	book := s.Book()
	if book.Empty() {
		return
	}
	// The book grows in over its first one and a half seconds.
	grow := fade(ms(s.Age()), 1500)
	scale := 0.5 + 0.5*grow
	cx, cy := center(book)
	w, h := float64(book.Dx())*scale, float64(book.Dy())*scale
	book = image.Rect(int(cx-w/2), int(cy-h/2), int(cx+w/2), int(cy+h/2))

	fillRect(dst, book.Add(image.Pt(0, 12)).Inset(book.Dx()/50), palette.WithAlpha(palette.Leather, 0.8*grow))
	spine := book.Min.X + book.Dx()/2
	left := image.Rect(book.Min.X, book.Min.Y, spine, book.Max.Y)
	right := image.Rect(spine, book.Min.Y, book.Max.X, book.Max.Y)
	for _, page := range []image.Rectangle{left, right} {
		fillRect(dst, page, palette.WithAlpha(palette.Parchment, grow))
		strokeRect(dst, page.Inset(16), 2, palette.WithAlpha(palette.Trim, 0.2*grow))
	}
	vector.StrokeLine(dst, float32(book.Min.X), float32(book.Min.Y), float32(book.Min.X), float32(book.Max.Y), 4, palette.WithAlpha(palette.Hex(0x3e2b10), grow), false)
	vector.StrokeLine(dst, float32(book.Max.X), float32(book.Min.Y), float32(book.Max.X), float32(book.Max.Y), 4, palette.WithAlpha(palette.Hex(0x3e2b10), grow), false)
	for k := -16; k < 16; k++ {
		a := (0.4 - math.Abs(float64(k))/16*0.2) * grow
		vector.DrawFilledRect(dst, float32(spine+k), float32(book.Min.Y), 1, float32(book.Dy()), palette.WithAlpha(palette.Hex(0x000000), a*0.5), false)
	}

	lcx, _ := center(left)
	loreFace := face(r.fonts.Regular, math.Max(8, float64(left.Dx())/40))
	drawParagraph(dst, lore, loreFace, lcx, float64(left.Min.Y)+48, float64(left.Dx())-96, palette.Ink, 0.3*grow)

	if !s.Revealed() {
		return
	}
	since := ms(s.SinceReveal())
	rcx, rcy := center(right)
	pageW := float64(right.Dx()) - 64
	drawText(dst, "The Universe Responds:", face(r.fonts.Italic, 16), rcx, rcy-90, palette.Hex(0x8c6b38), fade(since, 1000))

	answerAlpha := fade(since-500, 1500)
	size := math.Min(36, math.Max(18, float64(right.Dx())/11))
	vector.DrawFilledCircle(dst, float32(rcx), float32(rcy), float32(pageW/3), palette.WithAlpha(palette.Trim, 0.08*answerAlpha), true)
	bottom := drawParagraph(dst, s.Answer(), face(r.fonts.Bold, size), rcx, rcy-40, pageW, palette.Ink, answerAlpha)
	for k := -48; k < 48; k++ {
		a := (1 - math.Abs(float64(k))/48) * answerAlpha
		vector.DrawFilledRect(dst, float32(rcx)+float32(k), float32(bottom+16), 1, 2, palette.WithAlpha(palette.Trim, a), false)
	}

	btnAlpha := fade(since-1500, 600) * alpha
	btn := s.Button()
	hover := f.Cursor.In(btn)
	fillRect(dst, btn, palette.WithAlpha(palette.CardFill, btnAlpha))
	glow := 0.3
	if hover {
		glow = 0.6
	}
	strokeRect(dst, btn.Inset(-2), 2, palette.WithAlpha(palette.Trim, glow*btnAlpha))
	strokeRect(dst, btn, 1, palette.WithAlpha(palette.Trim, btnAlpha))
	bx, by := center(btn)
	drawText(dst, "ASK AGAIN", face(r.fonts.Regular, 14), bx, by-8, palette.Gold.Color(1), btnAlpha)
}
