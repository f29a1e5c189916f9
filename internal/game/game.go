// Package game implements the FlapGate simulation: a body falling under
// gravity, propelled upward by discrete activations, passing through a
// stream of gated obstacles. The package is pure game logic driven by an
// external tick; it knows nothing about terminals, keys or storage.
package game

import (
	"github.com/pkazanov/flapgate/internal/config"
	"github.com/pkazanov/flapgate/internal/core"
)

// Game holds the live simulation state. Exactly one Game is live at a
// time and only Step mutates it; external collaborators read snapshots
// between ticks.
type Game struct {
	cfg     config.Config
	diff    *config.DifficultyManager
	runtime core.RuntimeConfig
	stream  *stream

	phase      Phase
	bodyY      float64 // Vertical position of the body center
	bodyVel    float64 // Vertical velocity, clamped downward only
	obstacles  []Obstacle
	frameCount int // Ticks since the current run began
	spawnTimer int // Ticks since the last spawn
	score      int

	best      int  // Session best, fed from storage by the platform
	paused    bool
	idleTicks int // Drives the render-only hover; never touches physics
}

// New creates a game with the given (already validated) configuration.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return "flapgate"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "FlapGate"
}

// SetBest feeds the persisted best score in for HUD display.
func (g *Game) SetBest(best int) {
	g.best = best
}

// Reset initializes the game into the Ready phase.
// Called once at start and again on terminal resize.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	if g.stream == nil {
		g.stream = newStream(rc.Seed, rc.ScreenW, rc.ScreenH, g.cfg.Obstacles)
	} else {
		g.stream.resize(rc.ScreenW, rc.ScreenH)
		g.stream.reset(rc.Seed)
	}

	g.phase = PhaseReady
	g.idleTicks = 0
	g.paused = false
	g.resetRun()
}

// resetRun clears all per-run state. The body starts at the vertical
// center of the field with zero velocity and an empty obstacle stream.
func (g *Game) resetRun() {
	g.bodyY = float64(g.runtime.ScreenH) / 2.0
	g.bodyVel = 0
	g.obstacles = nil
	g.frameCount = 0
	g.spawnTimer = 0
	g.score = 0
}

// Step advances the simulation by one tick. At most one activation effect
// is consumed per call; the platform coalesces faster input into the frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	activate := in.Has(core.ActionFlap)

	switch g.phase {
	case PhaseReady:
		if !activate {
			g.idleTicks++
			return g.result()
		}
		// The activation that starts the run is also the first flap.
		g.resetRun()
		g.phase = PhaseRunning
		g.runTick(true)
		return g.result()

	case PhaseOver:
		if activate || in.Has(core.ActionRestart) {
			// Restart consumes the signal for the reset alone; the next
			// activation produces the first flap. Deliberate asymmetry
			// with the Ready transition above.
			g.resetRun()
			g.phase = PhaseRunning
		} else {
			g.idleTicks++
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.runTick(activate)
	return g.result()
}

// runTick performs one Running tick: physics, obstacle stream, then the
// detector. Scoring is evaluated before collision so that clearing an
// obstacle and dying land on the same tick when both happen.
func (g *Game) runTick(impulse bool) {
	g.frameCount++

	g.bodyY, g.bodyVel = stepBody(g.bodyY, g.bodyVel, impulse, g.cfg.Physics)

	speed := g.diff.ScrollSpeed(g.cfg.Physics.ScrollSpeed, g.score, g.frameCount)
	spacing := g.diff.Spacing(g.cfg.Obstacles.Spacing, g.score, g.frameCount)
	gapH := g.diff.GapHeight(g.cfg.Obstacles.GapHeight, g.score, g.frameCount)
	g.obstacles, g.spawnTimer = g.stream.advance(g.obstacles, g.spawnTimer, speed, spacing, gapH)

	g.score += countPassed(g.obstacles, g.cfg.Body.X, g.cfg.Obstacles.Width)

	if checkCollision(g.obstacles, g.cfg.Body.X, g.bodyY, g.cfg.Body.Radius, g.cfg.Obstacles.Width, g.groundY()) {
		g.phase = PhaseOver
		if g.score > g.best {
			g.best = g.score
		}
	}
}

// groundY returns the y-coordinate of the ground line.
func (g *Game) groundY() float64 {
	return float64(g.runtime.ScreenH) - g.cfg.Obstacles.GroundMargin
}

// State returns the current platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}
