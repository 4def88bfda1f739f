package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a vertical barrier with a single gap. The upper segment runs
// from the top of the field to GapTop, the lower one from the bottom of the
// gap to the floor.
type Obstacle struct {
	X         float64 // Left edge, decreases every tick
	Width     float64
	GapTop    int  // Y where the gap starts
	GapHeight int  // Height of the passable gap
	FieldH    int  // Floor of the field, bottom of the lower segment
	Scored    bool // Whether the actor has passed it
}

// NewObstacle creates an obstacle at x with a gap placed uniformly at random
// so that both segments are at least margin tall. The caller guarantees
// fieldH >= gapHeight + 2*margin (checked by config validation).
func NewObstacle(rng *rand.Rand, x, width float64, fieldH, gapHeight, margin int) Obstacle {
	span := fieldH - gapHeight - 2*margin
	return Obstacle{
		X:         x,
		Width:     width,
		GapTop:    margin + rng.Intn(span+1),
		GapHeight: gapHeight,
		FieldH:    fieldH,
	}
}

// Advance moves the obstacle left by speed.
func (o *Obstacle) Advance(speed float64) {
	o.X -= speed
}

// UpperRegion returns the collision rectangle above the gap.
func (o Obstacle) UpperRegion() core.Rect {
	return core.NewRect(o.X, 0, o.Width, float64(o.GapTop))
}

// LowerRegion returns the collision rectangle below the gap.
func (o Obstacle) LowerRegion() core.Rect {
	bottomY := o.GapTop + o.GapHeight
	return core.NewRect(o.X, float64(bottomY), o.Width, float64(o.FieldH-bottomY))
}

// Right returns the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// IsOffscreen reports whether the trailing edge has crossed the left border.
func (o Obstacle) IsOffscreen() bool {
	return o.Right() < 0
}
