package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"particlefield/game"
)

func main() {
	config := game.DefaultConfig()

	flag.IntVar(&config.ScreenWidth, "width", config.ScreenWidth, "initial window width")
	flag.IntVar(&config.ScreenHeight, "height", config.ScreenHeight, "initial window height")
	flag.IntVar(&config.Field.MaxParticles, "max-particles", config.Field.MaxParticles, "particle count cap")
	flag.BoolVar(&config.ShowHUD, "hud", config.ShowHUD, "show the statistics panel (toggle with H)")
	systemCursor := flag.Bool("system-cursor", false, "keep the system cursor instead of the dot and ring")
	flag.StringVar(&config.ProfileDir, "profile-dir", "", "capture CPU profiles and traces here when the frame rate drops")
	seed := flag.Int64("seed", 0, "particle placement seed (or set PARTICLEFIELD_SEED); 0 seeds from the clock")
	flag.Parse()

	config.CustomCursor = !*systemCursor
	config.Field.Seed = *seed
	if config.Field.Seed == 0 {
		if env := os.Getenv("PARTICLEFIELD_SEED"); env != "" {
			v, err := strconv.ParseInt(env, 10, 64)
			if err != nil {
				log.Fatalf("Invalid PARTICLEFIELD_SEED %q: %v", env, err)
			}
			config.Field.Seed = v
		}
	}

	g, err := game.NewGame(config)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Portfolio - Particle Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
