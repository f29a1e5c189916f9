package game

import "github.com/pkazanov/flapgate/internal/config"

// stepBody advances the body by one tick of semi-implicit Euler.
// Gravity always accumulates and the terminal-velocity clamp applies on
// the downward side only; an impulse overrides the accumulated velocity
// for this tick before position integration. Boundary conditions are the
// collision detector's job, not this function's.
func stepBody(y, vel float64, impulse bool, p config.Physics) (float64, float64) {
	vel += p.Gravity
	if vel > p.MaxFallSpeed {
		vel = p.MaxFallSpeed
	}
	if impulse {
		vel = p.FlapImpulse
	}
	y += vel
	return y, vel
}
