package game

import (
	"math/rand"

	"github.com/pkazanov/flapgate/internal/config"
)

// Obstacle is one gated obstacle in the scrolling stream.
// X is the leading (left) edge; the gap is centered at GapCenterY with
// height GapH, fixed for this obstacle at spawn time. Counted flips to
// true exactly once, when the obstacle has contributed to the score.
type Obstacle struct {
	X          float64
	GapCenterY float64
	GapH       float64
	Counted    bool
}

// stream generates and retires obstacles along the scrolling axis.
// The RNG is injected so a seeded run reproduces the same gap placements.
type stream struct {
	rng    *rand.Rand
	fieldW int
	fieldH int
	obs    config.Obstacles
}

func newStream(seed int64, fieldW, fieldH int, obs config.Obstacles) *stream {
	return &stream{
		rng:    rand.New(rand.NewSource(seed)),
		fieldW: fieldW,
		fieldH: fieldH,
		obs:    obs,
	}
}

// reset reseeds the RNG for a new run.
func (s *stream) reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// resize updates the field dimensions.
func (s *stream) resize(fieldW, fieldH int) {
	s.fieldW = fieldW
	s.fieldH = fieldH
}

// advance produces the next obstacle sequence and spawn timer for one tick:
// every obstacle scrolls left by speed, obstacles whose trailing edge has
// passed the cull margin are dropped (order preserved), and when the timer
// exceeds the spacing threshold a new obstacle spawns one obstacle-width
// beyond the right field edge with its gap placed uniformly at random
// inside the playable band.
func (s *stream) advance(obstacles []Obstacle, timer int, speed float64, spacing int, gapH float64) ([]Obstacle, int) {
	for i := range obstacles {
		obstacles[i].X -= speed
	}

	kept := obstacles[:0]
	for _, o := range obstacles {
		if o.X+s.obs.Width > -s.obs.CullMargin {
			kept = append(kept, o)
		}
	}
	obstacles = kept

	if timer >= spacing {
		obstacles = append(obstacles, s.spawn(gapH))
		timer = 0
	} else {
		timer++
	}

	return obstacles, timer
}

// spawn creates one obstacle just beyond the right edge of the field.
func (s *stream) spawn(gapH float64) Obstacle {
	groundY := float64(s.fieldH) - s.obs.GroundMargin
	minCenter := s.obs.TopMargin + gapH/2
	maxCenter := groundY - gapH/2
	if maxCenter < minCenter {
		maxCenter = minCenter // Degenerate case for very small fields
	}

	return Obstacle{
		X:          float64(s.fieldW) + s.obs.Width,
		GapCenterY: minCenter + s.rng.Float64()*(maxCenter-minCenter),
		GapH:       gapH,
	}
}
