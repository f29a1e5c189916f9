package game

// Phase is the coarse game mode governing which subsystems run.
// Transitions are driven solely by the activate signal and by the
// collision detector: Ready and Over only leave via activation, Running
// only leaves via a terminal collision.
type Phase int

const (
	// PhaseReady is the initial state: the body idles with no physics.
	PhaseReady Phase = iota
	// PhaseRunning is active play: physics, obstacles and collision run.
	PhaseRunning
	// PhaseOver is terminal: physics frozen at the point of collision.
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseRunning:
		return "Running"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}
