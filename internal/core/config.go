package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in characters
	ScreenH  int   // Playfield height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for gap placement (0 = time-based in platform layer)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the read-only view of the game returned to the platform
// after every tick. The platform uses it for score persistence and HUD
// decisions; it never writes back through it.
type GameState struct {
	Score    int  // Obstacles cleared this run
	Best     int  // Best score this session (fed from storage)
	GameOver bool // True once a terminal collision has occurred
	Paused   bool // True while the run is paused
}

// StepResult is returned by the game after each simulation tick.
type StepResult struct {
	State GameState
}
