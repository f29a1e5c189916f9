package config

import "fmt"

// Validate checks the size-independent parts of the configuration.
// A config that fails here can never produce a playable game, so callers
// treat the error as fatal at startup.
func (c Config) Validate() error {
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.FlapImpulse >= 0 {
		return fmt.Errorf("config: flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse)
	}
	if c.Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("config: max_fall_speed must be positive, got %v", c.Physics.MaxFallSpeed)
	}
	if c.Physics.ScrollSpeed <= 0 {
		return fmt.Errorf("config: scroll_speed must be positive, got %v", c.Physics.ScrollSpeed)
	}
	if c.Obstacles.Width <= 0 {
		return fmt.Errorf("config: obstacle width must be positive, got %v", c.Obstacles.Width)
	}
	if c.Obstacles.Spacing <= 0 {
		return fmt.Errorf("config: obstacle spacing must be positive, got %d", c.Obstacles.Spacing)
	}
	if c.Obstacles.GapHeight <= 0 {
		return fmt.Errorf("config: gap_height must be positive, got %v", c.Obstacles.GapHeight)
	}
	if c.Obstacles.TopMargin < 0 || c.Obstacles.GroundMargin < 0 {
		return fmt.Errorf("config: margins must be non-negative")
	}
	if c.Obstacles.CullMargin < 0 {
		return fmt.Errorf("config: cull_margin must be non-negative, got %v", c.Obstacles.CullMargin)
	}
	if c.Body.Radius <= 0 {
		return fmt.Errorf("config: body radius must be positive, got %v", c.Body.Radius)
	}
	if c.Body.X <= c.Body.Radius {
		return fmt.Errorf("config: body x must leave the body inside the field, got %v", c.Body.X)
	}
	if 2*c.Body.Radius >= c.Obstacles.GapHeight {
		return fmt.Errorf("config: body diameter %v does not fit the gap height %v",
			2*c.Body.Radius, c.Obstacles.GapHeight)
	}
	return nil
}

// ValidateField checks the configuration against the actual playfield
// height, once the terminal size is known. Rejects geometry that makes the
// game unwinnable by construction.
func (c Config) ValidateField(fieldH int) error {
	playable := float64(fieldH) - c.Obstacles.TopMargin - c.Obstacles.GroundMargin
	if c.Obstacles.GapHeight >= playable {
		return fmt.Errorf("config: gap_height %v does not fit the playable height %v (field %d)",
			c.Obstacles.GapHeight, playable, fieldH)
	}
	return nil
}
