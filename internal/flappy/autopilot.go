package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// autopilotSlack keeps the actor this far above the lower segment.
const autopilotSlack = 20

// Autopilot picks the input for the next tick from a snapshot: flap
// whenever the actor sinks toward the bottom of the next gap.
func Autopilot(snap Snapshot) core.InputFrame {
	if snap.Phase != core.PhasePlaying {
		return core.NewInputFrame()
	}

	limit := float64(snap.FieldH) / 2
	for _, o := range snap.Obstacles {
		if o.Lower.Right() >= snap.Actor.X {
			limit = o.Lower.Y - snap.Actor.H - autopilotSlack
			break
		}
	}

	if snap.Actor.Y > limit {
		return core.NewInputFrame(core.ActionImpulse)
	}
	return core.NewInputFrame()
}
