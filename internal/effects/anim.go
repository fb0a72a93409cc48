package effects

import "math"

// Glow is a value that ping-pongs between 0 and 1 by a fixed step per tick.
type Glow struct {
	step   float64
	value  float64
	rising bool
}

// NewGlow creates a glow starting at 0 and rising.
func NewGlow(step float64) Glow {
	return Glow{step: step, rising: true}
}

// Step advances the oscillation one tick.
func (g *Glow) Step() {
	if g.rising {
		g.value += g.step
		if g.value >= 1 {
			g.rising = false
		}
		return
	}
	g.value -= g.step
	if g.value <= 0 {
		g.rising = true
	}
}

// Value returns the current level in [0, 1].
func (g Glow) Value() float64 {
	return math.Max(0, math.Min(1, g.value))
}

// Pulse is an angle advanced every tick, wrapping after a full turn.
type Pulse struct {
	step      float64
	amplitude float64
	angle     float64
}

// NewPulse creates a pulse at angle zero.
func NewPulse(step, amplitude float64) Pulse {
	return Pulse{step: step, amplitude: amplitude}
}

// Step advances the angle one tick.
func (p *Pulse) Step() {
	p.angle += p.step
	if p.angle > 2*math.Pi {
		p.angle = 0
	}
}

// Scale returns 1 + sin(angle) * amplitude.
func (p Pulse) Scale() float64 {
	return 1 + math.Sin(p.angle)*p.amplitude
}
