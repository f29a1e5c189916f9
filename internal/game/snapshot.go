package game

// Snapshot is a copy of the full simulation state at a tick boundary.
// Obstacles are copied, so holding a snapshot across ticks never observes
// a partially updated state.
type Snapshot struct {
	Phase        Phase
	BodyY        float64
	BodyVelocity float64
	Obstacles    []Obstacle
	FrameCount   int
	SpawnTimer   int
	Score        int
}

// Snapshot returns a copy of the current simulation state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)

	return Snapshot{
		Phase:        g.phase,
		BodyY:        g.bodyY,
		BodyVelocity: g.bodyVel,
		Obstacles:    obstacles,
		FrameCount:   g.frameCount,
		SpawnTimer:   g.spawnTimer,
		Score:        g.score,
	}
}
