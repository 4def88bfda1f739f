package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Actor is the falling square the player controls.
// X never changes during a run; Y is clamped so the actor cannot rise above
// the top of the field.
type Actor struct {
	X    float64 // Fixed column (left edge)
	Y    float64 // Top edge, grows downward
	Vel  float64 // Vertical velocity per tick, positive is down
	Size float64 // Side length of the square hitbox
}

// NewActor places an actor at (x, y) at rest.
func NewActor(x, y, size float64) Actor {
	return Actor{X: x, Y: y, Size: size}
}

// Integrate applies one tick of gravity, then moves and clamps to the top.
func (a *Actor) Integrate(gravity float64) {
	a.Vel += gravity
	a.Y += a.Vel
	if a.Y < 0 {
		a.Y = 0
	}
}

// Impulse overrides the current velocity. It does not add to it.
func (a *Actor) Impulse(velocity float64) {
	a.Vel = velocity
}

// Bounds returns the actor's collision rectangle.
func (a Actor) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.Size, a.Size)
}
