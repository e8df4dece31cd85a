package field

import "math"

// ConnectionOpacity returns the line opacity for two particles dist apart.
// It falls linearly from peak at distance 0 to exactly 0 at maxDist.
func ConnectionOpacity(dist, maxDist, peak float64) float64 {
	if maxDist <= 0 || dist >= maxDist {
		return 0
	}
	if dist < 0 {
		dist = 0
	}
	return (1 - dist/maxDist) * peak
}

// connection is a line between two particles
type connection struct {
	i, j    int
	opacity float64
}

// connections returns every unordered pair closer than cfg.ConnectionDistance.
// O(n^2), fine for the particle counts the field allows.
func connections(particles []Particle, cfg Config) []connection {
	var out []connection
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			dx := particles[i].X - particles[j].X
			dy := particles[i].Y - particles[j].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < cfg.ConnectionDistance {
				out = append(out, connection{
					i:       i,
					j:       j,
					opacity: ConnectionOpacity(dist, cfg.ConnectionDistance, cfg.ConnectionOpacity),
				})
			}
		}
	}
	return out
}
