// Command termfield runs the particle field in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"particlefield/term"
)

func main() {
	config := term.DefaultConfig()

	flag.IntVar(&config.Field.MaxParticles, "max-particles", config.Field.MaxParticles, "particle count cap")
	flag.DurationVar(&config.TickRate, "tick", config.TickRate, "interval between frames")
	flag.Float64Var(&config.Gain, "gain", config.Gain, "dot brightness multiplier")
	seed := flag.Int64("seed", 0, "particle placement seed (or set PARTICLEFIELD_SEED); 0 seeds from the clock")
	flag.Parse()

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
	if config.TickRate <= 0 {
		log.Fatalf("Invalid tick %v", config.TickRate)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "termfield crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.Run(ctx, screen, config)
	screen.Fini()
	if err != nil {
		log.Fatalf("Terminal host failed: %v", err)
	}
}
