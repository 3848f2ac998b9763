package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/star-oracle/internal/config"
	"github.com/iburimskiy/star-oracle/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal(config.Default().Dialogs, err)
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	g, err := game.New(cfg, slog.Default())
	if err != nil {
		fatal(cfg.Dialogs, err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " - click to begin, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(cfg.Dialogs, fmt.Errorf("run game: %w", err))
	}
}

// fatal logs err, shows it in a native dialog when allowed, and exits.
func fatal(dialogs bool, err error) {
	slog.Error("fatal", "error", err)
	if dialogs {
		if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle)); derr != nil {
			slog.Warn("error dialog unavailable", "error", derr)
		}
	}
	os.Exit(1)
}
