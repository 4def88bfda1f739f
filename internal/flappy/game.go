// Package flappy implements the simulation core of a Flappy Bird-style game.
// An actor falls under gravity, the player triggers upward impulses, and
// obstacles with random gaps scroll in from the right. The package knows
// nothing about terminals or timing: the host calls Step once per tick with
// that tick's input and reads back a Snapshot to draw.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// runSeedStride separates the gap sequences of consecutive runs.
const runSeedStride = 7919

// Game owns the complete run state. It is not safe for concurrent use; each
// host session owns its own Game.
type Game struct {
	cfg       config.FlappyConfig
	seed      int64 // Seed of the first run
	run       int   // Runs started so far, minus one
	actor     Actor
	stream    *Stream
	score     int
	phase     core.Phase
	tickCount int
}

// New validates cfg and starts the first run.
func New(cfg config.FlappyConfig, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	g := &Game{
		cfg:    cfg,
		seed:   seed,
		stream: NewStream(seed, StreamParamsFrom(cfg)),
	}
	g.Reset()
	return g, nil
}

// RunSeed returns the gap placement seed for the current run. Each restart
// derives a fresh seed from the first one, so a run can be replayed from
// its seed alone.
func (g *Game) RunSeed() int64 {
	return g.seed + int64(g.run)*runSeedStride
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset reinitializes the current run: actor at its start position at
// rest, no obstacles, zero score and ticks, phase Playing.
func (g *Game) Reset() {
	g.actor = NewActor(g.cfg.Player.X, float64(g.cfg.Field.Height/2), g.cfg.Player.Size)
	g.stream.Reset(g.RunSeed())
	g.score = 0
	g.tickCount = 0
	g.phase = core.PhasePlaying
}

// restart begins the next run.
func (g *Game) restart() {
	g.run++
	g.Reset()
}

// Step advances the game by one tick with the given input batch.
//
// While playing, an impulse is applied before physics, then the actor
// integrates, the stream spawns/advances/retires, collisions are tested
// against the moved obstacles, then the floor, and only if neither ended
// the run are passed obstacles scored.
//
// After game over the state is frozen: impulses are ignored and only a
// restart does anything. The restart tick does not also simulate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == core.PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionImpulse) {
		g.actor.Impulse(g.cfg.Physics.ImpulseVelocity)
	}

	g.actor.Integrate(g.cfg.Physics.Gravity)
	g.stream.Tick(g.tickCount)
	g.tickCount++

	if g.stream.Collides(g.actor.Bounds()) || g.hitFloor() {
		g.phase = core.PhaseGameOver
		return core.StepResult{State: g.State(), Ended: true}
	}

	scored := g.stream.ScorePassed(g.actor.X)
	g.score += scored

	return core.StepResult{State: g.State(), Scored: scored}
}

// hitFloor reports whether the actor's bottom edge is below the field.
func (g *Game) hitFloor() bool {
	return g.actor.Y+g.actor.Size > float64(g.cfg.Field.Height)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
		Tick:  g.tickCount,
	}
}

// Actor returns a copy of the actor.
func (g *Game) Actor() Actor {
	return g.actor
}
