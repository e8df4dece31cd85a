// Package perf captures CPU profiles and execution traces when frame rate drops.
package perf

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler handles automatic performance profiling
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
	done            chan struct{}
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, captureDuration, cooldown time.Duration) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: cooldown,
		profilesDir:     dir,
		captureDuration: captureDuration,
	}, nil
}

// CaptureProfile starts a CPU profile and trace capture in the background.
// It refuses while a capture is running or the cooldown has not elapsed.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if !p.lastCaptureTime.IsZero() && time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	p.done = make(chan struct{})

	baseName := fmt.Sprintf("frame-drop-%s-%s", time.Now().Format("20060102-150405"), reason)
	done := p.done

	// capture in a goroutine so the frame loop keeps running
	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
			close(done)
		}()

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				log.Printf("Error capturing CPU profile: %v", err)
			}
		}()

		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("Error capturing trace: %v", err)
			}
		}()

		wg.Wait()
		p.analyzeProfile(baseName)
	}()

	return nil
}

// captureCPUProfile captures a CPU profile
func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to: %s", profilePath)
	return nil
}

// captureTrace captures an execution trace
func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("Trace saved to: %s", tracePath)
	return nil
}

// analyzeProfile logs a short summary of the captured profile
func (p *Profiler) analyzeProfile(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		log.Printf("Warning: Could not analyze profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profile %s (%.2f KB): view with `go tool pprof -http=:8080 %s`", baseName, float64(info.Size())/1024, profilePath)
	log.Printf("memory at capture: alloc=%d KB sys=%d KB numGC=%d heapObjects=%d",
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// Wait blocks until the current capture, if any, has finished
func (p *Profiler) Wait() {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done != nil {
		<-done
	}
}
