//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/rockbmb/wasm-game-of-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "optional JSON config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	uni, err := cfg.NewUniverse()
	if err != nil {
		log.Fatalf("construct universe: %v", err)
	}

	game := app.New(uni, cfg)

	ebiten.SetWindowTitle("game of life — " + cfg.Pattern)
	ebiten.SetWindowSize(uni.Width()*cfg.Scale, uni.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
