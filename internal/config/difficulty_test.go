package config

import "testing"

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 50},
		Scaling: ScalingConfig{
			SpeedMultiplier:  1.0,
			GapReduction:     4,
			SpacingReduction: 15,
		},
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	if lvl := d.Level(0, 0); lvl != 0 {
		t.Errorf("level at score 0 = %v, want 0", lvl)
	}
	if lvl := d.Level(25, 0); lvl != 0.5 {
		t.Errorf("level at half score = %v, want 0.5", lvl)
	}
	if lvl := d.Level(50, 0); lvl != 1.0 {
		t.Errorf("level at max score = %v, want 1.0", lvl)
	}
	if lvl := d.Level(500, 0); lvl != 1.0 {
		t.Errorf("level past max = %v, want clamp at 1.0", lvl)
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(1000, 1000); lvl != 0.3 {
		t.Errorf("level = %v, want fixed 0.3", lvl)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	if got := d.ScrollSpeed(0.8, 0, 0); got != 0.8 {
		t.Errorf("base speed = %v, want 0.8", got)
	}
	if got := d.ScrollSpeed(0.8, 50, 0); got != 1.6 {
		t.Errorf("max speed = %v, want 1.6", got)
	}
	if got := d.GapHeight(10, 50, 0); got != 6 {
		t.Errorf("max-difficulty gap = %v, want 6", got)
	}
	if got := d.Spacing(50, 50, 0); got != 35 {
		t.Errorf("max-difficulty spacing = %v, want 35", got)
	}
}

func TestDifficultyScalingFloors(t *testing.T) {
	cfg := testDifficulty()
	cfg.Scaling.GapReduction = 100
	cfg.Scaling.SpacingReduction = 100
	d := NewDifficultyManager(cfg)

	if got := d.GapHeight(10, 50, 0); got != 4 {
		t.Errorf("gap = %v, want the playable floor 4", got)
	}
	if got := d.Spacing(50, 50, 0); got != 15 {
		t.Errorf("spacing = %v, want the playable floor 15", got)
	}
}
