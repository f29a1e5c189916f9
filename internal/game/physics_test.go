package game

import (
	"testing"

	"github.com/pkazanov/flapgate/internal/config"
)

var testPhysics = config.Physics{
	Gravity:      0.25,
	FlapImpulse:  -1.8,
	MaxFallSpeed: 3.0,
	ScrollSpeed:  0.8,
}

func TestStepBodyGravity(t *testing.T) {
	y, vel := stepBody(10, 0, false, testPhysics)

	if vel != testPhysics.Gravity {
		t.Errorf("vel = %v, want %v", vel, testPhysics.Gravity)
	}
	if y != 10+testPhysics.Gravity {
		t.Errorf("y = %v, want %v (position integrates the new velocity)", y, 10+testPhysics.Gravity)
	}
}

func TestStepBodyTerminalVelocity(t *testing.T) {
	_, vel := stepBody(10, testPhysics.MaxFallSpeed, false, testPhysics)

	if vel != testPhysics.MaxFallSpeed {
		t.Errorf("vel = %v, want clamp at %v", vel, testPhysics.MaxFallSpeed)
	}
}

func TestStepBodyNoUpwardClamp(t *testing.T) {
	// The clamp bounds downward speed only; a large upward velocity
	// decays through gravity rather than being cut off.
	_, vel := stepBody(10, -50, false, testPhysics)

	if vel != -50+testPhysics.Gravity {
		t.Errorf("vel = %v, want %v", vel, -50+testPhysics.Gravity)
	}
}

func TestStepBodyImpulseOverridesGravity(t *testing.T) {
	// The impulse replaces the gravity-accumulated velocity for the
	// tick; it is not additive.
	y, vel := stepBody(10, 2.5, true, testPhysics)

	if vel != testPhysics.FlapImpulse {
		t.Errorf("vel = %v, want %v", vel, testPhysics.FlapImpulse)
	}
	if y != 10+testPhysics.FlapImpulse {
		t.Errorf("y = %v, want %v", y, 10+testPhysics.FlapImpulse)
	}
}
