package game

import (
	"testing"

	"github.com/pkazanov/flapgate/internal/config"
)

func testObstacles() config.Obstacles {
	return config.Default().Obstacles
}

func TestStreamScrollPreservesOrder(t *testing.T) {
	s := newStream(1, 80, 24, testObstacles())

	obstacles := []Obstacle{
		{X: 20, GapCenterY: 10, GapH: 10},
		{X: 60, GapCenterY: 14, GapH: 10},
	}

	next, _ := s.advance(obstacles, 1, 0.8, 50, 10)

	if len(next) != 2 {
		t.Fatalf("len = %d, want 2", len(next))
	}
	if next[0].X != 19.2 || next[1].X != 59.2 {
		t.Errorf("positions = %v, %v; want 19.2, 59.2", next[0].X, next[1].X)
	}
	if next[0].X >= next[1].X {
		t.Error("relative order not preserved")
	}
}

func TestStreamCullsPastMargin(t *testing.T) {
	obs := testObstacles() // width 5, cull margin 5
	s := newStream(1, 80, 24, obs)

	obstacles := []Obstacle{
		{X: -11, GapCenterY: 10, GapH: 10}, // trailing edge -6, past the margin
		{X: 30, GapCenterY: 12, GapH: 10},
	}

	next, _ := s.advance(obstacles, 1, 0.8, 50, 10)

	if len(next) != 1 {
		t.Fatalf("len = %d, want 1 (off-screen obstacle culled)", len(next))
	}
	if next[0].GapCenterY != 12 {
		t.Errorf("wrong obstacle culled: kept gap center %v", next[0].GapCenterY)
	}
}

func TestStreamSpawnTiming(t *testing.T) {
	s := newStream(1, 80, 24, testObstacles())

	var obstacles []Obstacle
	timer := 0
	spawnedAt := -1

	for tick := 0; tick < 60; tick++ {
		before := len(obstacles)
		obstacles, timer = s.advance(obstacles, timer, 0.8, 50, 10)
		if len(obstacles) > before {
			spawnedAt = tick
			break
		}
	}

	if spawnedAt != 50 {
		t.Errorf("first spawn at tick %d, want 50", spawnedAt)
	}
	if timer != 0 {
		t.Errorf("timer = %d after spawn, want 0", timer)
	}
}

func TestStreamSpawnPosition(t *testing.T) {
	obs := testObstacles()
	s := newStream(1, 80, 24, obs)

	o := s.spawn(10)

	want := float64(80) + obs.Width
	if o.X != want {
		t.Errorf("spawn X = %v, want %v (one obstacle-width beyond the field)", o.X, want)
	}
	if o.Counted {
		t.Error("new obstacle must not be counted")
	}
}

func TestStreamGapStaysInPlayableBand(t *testing.T) {
	obs := testObstacles()
	s := newStream(99, 80, 24, obs)

	groundY := float64(24) - obs.GroundMargin
	for i := 0; i < 200; i++ {
		o := s.spawn(10)
		top := o.GapCenterY - o.GapH/2
		bottom := o.GapCenterY + o.GapH/2

		if top < obs.TopMargin {
			t.Fatalf("spawn %d: gap top %v above the top margin %v", i, top, obs.TopMargin)
		}
		if bottom > groundY {
			t.Fatalf("spawn %d: gap bottom %v below the ground line %v", i, bottom, groundY)
		}
	}
}

func TestStreamSeededReproducibility(t *testing.T) {
	run := func() []Obstacle {
		s := newStream(777, 80, 24, testObstacles())
		var obstacles []Obstacle
		timer := 0
		for tick := 0; tick < 300; tick++ {
			obstacles, timer = s.advance(obstacles, timer, 0.8, 50, 10)
		}
		return obstacles
	}

	a := run()
	b := run()

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
