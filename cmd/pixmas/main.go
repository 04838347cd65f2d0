//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"pixmas/internal/app"
	"pixmas/internal/core"
	_ "pixmas/internal/hacks/popclock"
	_ "pixmas/internal/hacks/snowclock"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Hacks()[cfg.Hack]
	if !ok {
		log.Fatalf("unknown hack %q", cfg.Hack)
	}

	hack, err := factory(cfg.Settings())
	if err != nil {
		log.Fatalf("constructing %q: %v", cfg.Hack, err)
	}

	game := app.New(hack, cfg.Scale, cfg.Seed)
	size := hack.Size()

	ebiten.SetWindowTitle("pixmas: " + hack.Name())
	ebiten.SetTPS(int(time.Second / hack.TickDuration()))
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
