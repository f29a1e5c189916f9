package config

// DifficultyManager calculates dynamic game parameters based on score/time.
// All outputs are pure functions of (score, ticks), so a seeded run stays
// fully reproducible with progression enabled.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampLevel(level)
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampLevel(progress)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ScrollSpeed returns the current scroll speed for the given base speed.
func (d *DifficultyManager) ScrollSpeed(base float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapHeight returns the current gap height for the given base height.
// Never shrinks below 4 cells so the game stays winnable.
func (d *DifficultyManager) GapHeight(base float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	result := base - level*d.cfg.Scaling.GapReduction
	if result < 4 {
		result = 4
	}
	return result
}

// Spacing returns the current spawn spacing in ticks for the given base.
func (d *DifficultyManager) Spacing(base int, score, ticks int) int {
	level := d.Level(score, ticks)
	result := base - int(level*float64(d.cfg.Scaling.SpacingReduction))
	if result < 15 {
		result = 15
	}
	return result
}

func clampLevel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
