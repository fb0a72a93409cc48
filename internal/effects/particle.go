// Package effects holds the decorative simulations drawn on top of the board:
// particle bursts, the head glow oscillator, the food pulse and color blending.
// Nothing here affects gameplay.
package effects

import "math/rand"

// Settings controls particle spawning and decay.
// Distances are in grid units per tick.
type Settings struct {
	Decay    float64 // Size and opacity multiplier per tick, in (0, 1)
	MinAlpha float64 // Particles fading below this are removed
	Spread   float64 // Velocity range per axis, centered on zero
	MinSize  float64
	MaxSize  float64
}

// Particle is a short-lived point that drifts and fades.
type Particle struct {
	X, Y   float64 // Position in grid units
	VX, VY float64 // Velocity in grid units per tick
	Size   float64 // Diameter in grid units
	Alpha  float64 // Opacity in (0, 1]
}

// Update advances the particle one tick and reports whether it has faded out.
func (p *Particle) Update(decay, minAlpha float64) bool {
	p.X += p.VX
	p.Y += p.VY
	p.Size *= decay
	p.Alpha *= decay
	return p.Alpha < minAlpha
}

// System owns a list of live particles.
type System struct {
	settings  Settings
	particles []Particle
}

// NewSystem creates an empty particle system.
func NewSystem(s Settings) *System {
	return &System{settings: s}
}

// Burst spawns n particles at (x, y) with random velocity and size.
func (s *System) Burst(x, y float64, n int, rng *rand.Rand) {
	for range n {
		s.particles = append(s.particles, Particle{
			X:     x,
			Y:     y,
			VX:    (rng.Float64() - 0.5) * s.settings.Spread,
			VY:    (rng.Float64() - 0.5) * s.settings.Spread,
			Size:  s.settings.MinSize + rng.Float64()*(s.settings.MaxSize-s.settings.MinSize),
			Alpha: 1,
		})
	}
}

// Update advances every particle and drops the faded ones in place.
func (s *System) Update() {
	live := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		if !p.Update(s.settings.Decay, s.settings.MinAlpha) {
			live = append(live, p)
		}
	}
	clear(s.particles[len(live):])
	s.particles = live
}

// Clear removes all particles.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns the live particles. The slice must not be modified.
func (s *System) Particles() []Particle {
	return s.particles
}
