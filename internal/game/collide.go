package game

// countPassed marks obstacles whose trailing edge has fully passed the
// body's horizontal position and returns how many were newly counted.
// Visits front-to-back and is idempotent per obstacle: Counted flips
// false to true at most once and never reverts. Runs independently of
// collision detection, so a pass and a terminal collision can both be
// recorded in the same tick.
func countPassed(obstacles []Obstacle, bodyX, width float64) int {
	passed := 0
	for i := range obstacles {
		if !obstacles[i].Counted && obstacles[i].X+width < bodyX {
			obstacles[i].Counted = true
			passed++
		}
	}
	return passed
}

// checkCollision reports whether the body touches the ground, the ceiling,
// or an obstacle outside its gap. Ground and ceiling contact is inclusive:
// a body exactly tangent to either collides. The gap boundaries are
// exclusive: a body edge exactly on a gap boundary is still inside.
// Ceiling contact is terminal, not a clamp.
func checkCollision(obstacles []Obstacle, bodyX, bodyY, radius, width, groundY float64) bool {
	top := bodyY - radius
	bottom := bodyY + radius

	if bottom >= groundY || top <= 0 {
		return true
	}

	for _, o := range obstacles {
		if o.X >= bodyX+radius || o.X+width <= bodyX-radius {
			continue
		}
		gapTop := o.GapCenterY - o.GapH/2
		gapBottom := o.GapCenterY + o.GapH/2
		if top < gapTop || bottom > gapBottom {
			return true
		}
	}
	return false
}
