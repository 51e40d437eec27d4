//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"life3d/internal/app"
	"life3d/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	cfg := config.DefaultConfig()
	if path := config.PathFromArgs(os.Args[1:]); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	cfg.Bind(flag.CommandLine)
	flag.String("config", "", "JSON config file applied before flags")
	width := flag.Int("window-w", 1024, "window width")
	height := flag.Int("window-h", 768, "window height")
	flag.Parse()

	cfg, err := cfg.WithOverrides(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	cfg.ConfigureLogger(log)

	game, err := app.New(cfg, log)
	if err != nil {
		log.Fatal(err)
	}
	game.Capture()

	ebiten.SetWindowTitle("life3d")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
