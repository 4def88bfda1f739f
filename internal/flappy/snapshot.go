package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// ObstacleView is the drawable part of an obstacle.
type ObstacleView struct {
	Upper core.Rect
	Lower core.Rect
}

// Snapshot is everything a presentation layer needs to draw one frame,
// in field coordinates.
type Snapshot struct {
	FieldW    int
	FieldH    int
	Actor     core.Rect
	Obstacles []ObstacleView
	Score     int
	Phase     core.Phase
	Tick      int
}

// Snapshot captures the current frame. The returned value shares nothing
// with the game.
func (g *Game) Snapshot() Snapshot {
	obs := g.stream.Obstacles()
	views := make([]ObstacleView, len(obs))
	for i, o := range obs {
		views[i] = ObstacleView{Upper: o.UpperRegion(), Lower: o.LowerRegion()}
	}

	return Snapshot{
		FieldW:    g.cfg.Field.Width,
		FieldH:    g.cfg.Field.Height,
		Actor:     g.actor.Bounds(),
		Obstacles: views,
		Score:     g.score,
		Phase:     g.phase,
		Tick:      g.tickCount,
	}
}
