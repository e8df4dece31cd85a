// Command fieldbench runs the particle field without a window and reports
// how fast frames advance and render.
package main

import (
	"flag"
	"image/color"
	"log"
	"math"
	"runtime"
	"time"

	"particlefield/field"
	"particlefield/perf"
)

// countingSurface discards drawing and counts the calls
type countingSurface struct {
	circles, lines int
}

func (s *countingSurface) Resize(width, height int) {}
func (s *countingSurface) Clear()                   {}

func (s *countingSurface) FillCircle(x, y, radius float64, c color.Color) {
	s.circles++
}

func (s *countingSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.lines++
}

func main() {
	cfg := field.DefaultConfig()

	width := flag.Int("width", 1440, "viewport width")
	height := flag.Int("height", 900, "viewport height")
	frames := flag.Int("frames", 3600, "frames to run")
	orbit := flag.Bool("orbit", true, "move the pointer in a circle around the center")
	profileDir := flag.String("profile-dir", "", "capture a CPU profile and trace of the run here")
	flag.IntVar(&cfg.MaxParticles, "max-particles", cfg.MaxParticles, "particle count cap")
	flag.Int64Var(&cfg.Seed, "seed", 1, "particle placement seed")
	flag.Parse()

	log.Printf("Starting fieldbench with GOMAXPROCS=%d\n", runtime.GOMAXPROCS(0))

	surface := &countingSurface{}
	queue := field.NewFrameQueue()
	animator := field.New(cfg, surface, queue, *width, *height)
	if animator.Count() == 0 {
		log.Fatalf("No particles for width %d", *width)
	}

	var profiler *perf.Profiler
	if *profileDir != "" {
		p, err := perf.NewProfiler(*profileDir, 5*time.Second, 0)
		if err != nil {
			log.Fatalf("Failed to create profiler: %v", err)
		}
		if err := p.CaptureProfile("bench"); err != nil {
			log.Fatalf("Failed to start capture: %v", err)
		}
		profiler = p
	}

	cx, cy := float64(*width)/2, float64(*height)/2
	start := time.Now()
	animator.Start()
	for i := 1; i < *frames; i++ {
		if *orbit {
			angle := float64(i) * 0.01
			animator.OnPointerMove(cx+math.Cos(angle)*150, cy+math.Sin(angle)*150)
		}
		queue.Tick()
	}
	elapsed := time.Since(start)

	var speed float64
	for _, p := range animator.Particles() {
		speed += p.Speed()
	}
	speed /= float64(animator.Count())

	log.Printf("%d particles, %d frames in %v (%.0f frames/s)\n",
		animator.Count(), animator.Frames(), elapsed, float64(animator.Frames())/elapsed.Seconds())
	log.Printf("%.1f lines per frame, mean speed %.3f px/frame\n",
		float64(surface.lines)/float64(animator.Frames()), speed)

	if profiler != nil {
		log.Println("Waiting for profile capture...")
		profiler.Wait()
	}
}
