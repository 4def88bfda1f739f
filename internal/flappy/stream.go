package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// StreamParams is the subset of the config the stream needs each tick.
type StreamParams struct {
	FieldW        int
	FieldH        int
	Width         float64
	GapHeight     int
	MinMargin     int
	Speed         float64
	SpawnInterval int
}

// StreamParamsFrom extracts stream parameters from a game config.
func StreamParamsFrom(cfg config.FlappyConfig) StreamParams {
	return StreamParams{
		FieldW:        cfg.Field.Width,
		FieldH:        cfg.Field.Height,
		Width:         cfg.Obstacles.Width,
		GapHeight:     cfg.Obstacles.GapHeight,
		MinMargin:     cfg.Obstacles.MinMargin,
		Speed:         cfg.Obstacles.Speed,
		SpawnInterval: cfg.Obstacles.SpawnInterval,
	}
}

// Stream spawns obstacles on a fixed tick cadence and retires them once
// they leave the field. Obstacles are kept in spawn order, which
// is also left-to-right order since they all move at the same speed: the
// newest obstacle is last and has the largest x.
type Stream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	params    StreamParams
}

// NewStream creates an empty stream whose gap placement is drawn from seed.
func NewStream(seed int64, params StreamParams) *Stream {
	s := &Stream{
		obstacles: make([]Obstacle, 0, 8),
		params:    params,
	}
	s.Reset(seed)
	return s
}

// Reset clears all obstacles and reseeds the RNG.
func (s *Stream) Reset(seed int64) {
	s.obstacles = s.obstacles[:0]
	s.rng = rand.New(rand.NewSource(seed))
}

// ShouldSpawn reports whether a new obstacle appears on elapsedTicks.
// The first spawn happens on tick 0.
func (s *Stream) ShouldSpawn(elapsedTicks int) bool {
	return elapsedTicks%s.params.SpawnInterval == 0
}

// Tick runs one simulation step: spawn on cadence, advance everything, then
// drop obstacles that are fully past the left border.
func (s *Stream) Tick(elapsedTicks int) {
	p := s.params

	if s.ShouldSpawn(elapsedTicks) {
		s.obstacles = append(s.obstacles,
			NewObstacle(s.rng, float64(p.FieldW), p.Width, p.FieldH, p.GapHeight, p.MinMargin))
	}

	for i := range s.obstacles {
		s.obstacles[i].Advance(p.Speed)
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.IsOffscreen() {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// Collides tests the rectangle against every upper and lower region.
func (s *Stream) Collides(r core.Rect) bool {
	for _, o := range s.obstacles {
		if r.Intersects(o.UpperRegion()) || r.Intersects(o.LowerRegion()) {
			return true
		}
	}
	return false
}

// ScorePassed marks every unscored obstacle whose trailing edge is strictly
// left of actorX and returns how many were newly marked. Several obstacles
// can be passed on one tick in tight configurations; each counts.
func (s *Stream) ScorePassed(actorX float64) int {
	passed := 0
	for i := range s.obstacles {
		if !s.obstacles[i].Scored && s.obstacles[i].Right() < actorX {
			s.obstacles[i].Scored = true
			passed++
		}
	}
	return passed
}

// Obstacles returns the active obstacles. The slice is owned by the stream.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of active obstacles.
func (s *Stream) Len() int {
	return len(s.obstacles)
}
