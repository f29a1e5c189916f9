// Package config provides YAML-based game configuration loading,
// validation and difficulty management.
package config

// Config contains all tunable parameters for the game.
// Values are expressed in screen cells and ticks.
type Config struct {
	Physics    Physics          `yaml:"physics"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Body       Body             `yaml:"body"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines the motion parameters of the controlled body and the
// obstacle scroll.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration per tick
	FlapImpulse  float64 `yaml:"flap_impulse"`   // Velocity set on activation (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity, downward only
	ScrollSpeed  float64 `yaml:"scroll_speed"`   // Cells obstacles move left per tick
}

// Obstacles defines the obstacle stream parameters.
type Obstacles struct {
	Width        float64 `yaml:"width"`         // Horizontal extent of one obstacle
	Spacing      int     `yaml:"spacing"`       // Ticks between spawns
	GapHeight    float64 `yaml:"gap_height"`    // Vertical extent of the passable gap
	TopMargin    float64 `yaml:"top_margin"`    // Rows at the top the gap never enters
	GroundMargin float64 `yaml:"ground_margin"` // Rows reserved at the bottom for the ground line
	CullMargin   float64 `yaml:"cull_margin"`   // Distance past the left edge before removal
}

// Body defines the controlled body parameters.
type Body struct {
	X      float64 `yaml:"x"`      // Fixed horizontal position of the body center
	Radius float64 `yaml:"radius"` // Collision radius
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to scroll speed at max difficulty
	GapReduction     float64 `yaml:"gap_reduction"`     // Gap height reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spawn spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The "fixed" preset disables progression entirely.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
