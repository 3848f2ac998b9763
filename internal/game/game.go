// Package game wires the scene controller, the star field and the renderer
// into an ebiten.Game.
package game

import (
	"fmt"
	"image"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/oracle"
	"github.com/iburimskiy/star-oracle/internal/particles"
	"github.com/iburimskiy/star-oracle/internal/render"
	"github.com/iburimskiy/star-oracle/internal/scene"
	"github.com/iburimskiy/star-oracle/internal/state"
	"github.com/iburimskiy/star-oracle/internal/timer"
)

type Game struct {
	cfg config.Config
	log *slog.Logger

	sched    *timer.Scheduler
	ctrl     *scene.Controller
	field    *particles.Field
	renderer *render.Renderer

	width, height int
	cursor        image.Point
	touches       []ebiten.TouchID
}

// New builds the game. A zero seed picks one from the clock.
func New(cfg config.Config, log *slog.Logger) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pool, err := oracle.NewPool(rand.New(rand.NewSource(seed+200)), oracle.Answers)
	if err != nil {
		return nil, fmt.Errorf("answer pool: %w", err)
	}
	fonts, err := render.LoadFonts()
	if err != nil {
		return nil, err
	}

	sched := timer.NewScheduler()
	g := &Game{
		cfg:      cfg,
		log:      log,
		sched:    sched,
		ctrl:     scene.NewController(sched, pool, scene.TimingFrom(cfg), log),
		field:    particles.New(cfg.Particles, float64(cfg.WindowWidth), float64(cfg.WindowHeight), rand.New(rand.NewSource(seed+100))),
		renderer: render.New(fonts, rand.New(rand.NewSource(seed+300))),
	}
	g.ctrl.OnTransition(func(from, to state.State) {
		log.Info("scene", "from", from.String(), "to", to.String())
	})
	log.Info("game ready", "particles", g.field.Len(), "seed", seed)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.sched.Advance(time.Second / time.Duration(tps))

	x, y := ebiten.CursorPosition()
	g.cursor = image.Pt(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Click(g.cursor)
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		if g.ctrl.Click(image.Pt(tx, ty)) {
			break
		}
	}

	g.field.Step(g.ctrl.State(), g.sched.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.field, render.Frame{
		State:  g.ctrl.State(),
		Now:    g.sched.Now(),
		Since:  g.ctrl.Since(),
		Scene:  g.ctrl.Scene(),
		Cursor: g.cursor,
	})

	if g.cfg.Debug {
		status := fmt.Sprintf("TPS %.0f  FPS %.0f  %s  %s", ebiten.ActualTPS(), ebiten.ActualFPS(), g.ctrl.State(), g.sched.Now().Truncate(time.Second))
		if s, ok := g.ctrl.Scene().(*scene.Silent); ok {
			status += fmt.Sprintf("  silence %d%%", s.Progress())
		}
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// Layout uses the window size as the drawing surface and follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.Resize(float64(outsideWidth), float64(outsideHeight))
		g.ctrl.Layout(outsideWidth, outsideHeight)
		g.log.Debug("resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Close releases every pending timer.
func (g *Game) Close() {
	g.ctrl.Close()
}
