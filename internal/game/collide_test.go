package game

import "testing"

const (
	testBodyX  = 10.0
	testRadius = 1.0
	testWidth  = 5.0
	testGround = 22.0
)

func collides(obstacles []Obstacle, bodyY float64) bool {
	return checkCollision(obstacles, testBodyX, bodyY, testRadius, testWidth, testGround)
}

func TestGroundTangencyCollides(t *testing.T) {
	// Exactly tangent to the ground line counts as a collision.
	if !collides(nil, testGround-testRadius) {
		t.Error("body tangent to the ground should collide")
	}
	// One unit above does not.
	if collides(nil, testGround-testRadius-1) {
		t.Error("body one unit above the ground should not collide")
	}
}

func TestCeilingTangencyCollides(t *testing.T) {
	if !collides(nil, testRadius) {
		t.Error("body tangent to the ceiling should collide")
	}
	if collides(nil, testRadius+1) {
		t.Error("body one unit below the ceiling should not collide")
	}
}

func TestObstacleGapBands(t *testing.T) {
	// Gap spans y 7..17 under the body.
	obstacles := []Obstacle{{X: testBodyX - 2, GapCenterY: 12, GapH: 10}}

	cases := []struct {
		name  string
		bodyY float64
		want  bool
	}{
		{"centered in gap", 12, false},
		{"edge exactly on gap top", 8, false},
		{"edge exactly on gap bottom", 16, false},
		{"crosses gap top", 7.5, true},
		{"crosses gap bottom", 16.5, true},
	}

	for _, tc := range cases {
		if got := collides(obstacles, tc.bodyY); got != tc.want {
			t.Errorf("%s: collided = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNoCollisionWithoutHorizontalOverlap(t *testing.T) {
	// Obstacle entirely to the right of the body, gap far away from it.
	obstacles := []Obstacle{{X: testBodyX + testRadius, GapCenterY: 5, GapH: 4}}

	if collides(obstacles, 15) {
		t.Error("obstacle touching only the body's right extent should not collide")
	}

	// Fully passed obstacle.
	obstacles[0].X = testBodyX - testRadius - testWidth
	if collides(obstacles, 15) {
		t.Error("obstacle fully left of the body should not collide")
	}
}

func TestCountPassedFrontToBack(t *testing.T) {
	obstacles := []Obstacle{
		{X: 1, GapCenterY: 10, GapH: 10},  // trailing edge 6 < 10: passed
		{X: 4, GapCenterY: 12, GapH: 10},  // trailing edge 9 < 10: passed
		{X: 30, GapCenterY: 14, GapH: 10}, // not yet
	}

	passed := countPassed(obstacles, testBodyX, testWidth)

	if passed != 2 {
		t.Errorf("passed = %d, want 2", passed)
	}
	if !obstacles[0].Counted || !obstacles[1].Counted || obstacles[2].Counted {
		t.Errorf("counted flags = %v %v %v, want true true false",
			obstacles[0].Counted, obstacles[1].Counted, obstacles[2].Counted)
	}

	// Second visit counts nothing: the flag guards idempotency.
	if again := countPassed(obstacles, testBodyX, testWidth); again != 0 {
		t.Errorf("second pass counted %d, want 0", again)
	}
}

func TestCountPassedTrailingEdgeBoundary(t *testing.T) {
	// Trailing edge exactly at the body position is not yet fully past.
	obstacles := []Obstacle{{X: testBodyX - testWidth, GapCenterY: 10, GapH: 10}}

	if passed := countPassed(obstacles, testBodyX, testWidth); passed != 0 {
		t.Errorf("passed = %d, want 0 at exact boundary", passed)
	}

	obstacles[0].X -= 0.1
	if passed := countPassed(obstacles, testBodyX, testWidth); passed != 1 {
		t.Errorf("passed = %d, want 1 just past the boundary", passed)
	}
}
