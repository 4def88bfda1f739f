// Package replay records runs as a seed plus per-tick input and replays
// them headlessly. The simulation is deterministic given its config, its
// gap seed and the input on every tick, so that is all a recording holds.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// ErrMismatch is returned when a replay does not reproduce the recorded
// result.
var ErrMismatch = errors.New("replay: result mismatch")

// Event is the input delivered on one tick. Ticks without input are not
// stored.
type Event struct {
	Tick    int
	Actions []core.Action
}

// Recording is one complete run from its first tick to game over.
type Recording struct {
	ID         int64
	Seed       int64
	Config     config.FlappyConfig
	Events     []Event
	Ticks      int // Ticks simulated, equal to the final GameState.Tick
	FinalScore int
	CreatedAt  time.Time
}

// Recorder follows a live game and cuts a Recording per run.
// Call Observe after every Step with the input that was passed to it.
type Recorder struct {
	cfg     config.FlappyConfig
	current *Recording
}

// NewRecorder creates a recorder for games built from cfg.
func NewRecorder(cfg config.FlappyConfig) *Recorder {
	return &Recorder{cfg: cfg}
}

// Begin starts a new recording for a run using seed.
func (r *Recorder) Begin(seed int64) {
	r.current = &Recording{Seed: seed, Config: r.cfg}
}

// Observe records the input of the tick that produced res. It returns the
// finished recording when res ended the run, otherwise nil.
func (r *Recorder) Observe(in core.InputFrame, res core.StepResult) *Recording {
	if r.current == nil || res.Restarted {
		return nil
	}

	// Ticks frozen in game over are not part of the run.
	if !res.Ended && res.State.GameOver() {
		return nil
	}

	tick := res.State.Tick - 1
	if actions := simActions(in); len(actions) > 0 {
		r.current.Events = append(r.current.Events, Event{Tick: tick, Actions: actions})
	}

	if !res.Ended {
		return nil
	}
	done := r.current
	done.Ticks = res.State.Tick
	done.FinalScore = res.State.Score
	done.CreatedAt = time.Now()
	r.current = nil
	return done
}

// simActions keeps only the actions that influence a live run.
func simActions(in core.InputFrame) []core.Action {
	if in.Has(core.ActionImpulse) {
		return []core.Action{core.ActionImpulse}
	}
	return nil
}

// Result is the outcome of replaying a recording.
type Result struct {
	State core.GameState
	Final flappy.Snapshot
}

// Run re-simulates rec from scratch and checks it against the recorded
// outcome. The returned Result is valid even when the error is ErrMismatch.
func Run(rec Recording) (Result, error) {
	g, err := flappy.New(rec.Config, rec.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	next := 0
	for tick := 0; tick < rec.Ticks; tick++ {
		in := core.NewInputFrame()
		if next < len(rec.Events) && rec.Events[next].Tick == tick {
			for _, a := range rec.Events[next].Actions {
				in.Set(a)
			}
			next++
		}

		res := g.Step(in)
		if res.Ended {
			break
		}
	}

	out := Result{State: g.State(), Final: g.Snapshot()}
	switch {
	case !out.State.GameOver():
		return out, fmt.Errorf("%w: run still playing after %d ticks", ErrMismatch, rec.Ticks)
	case out.State.Tick != rec.Ticks:
		return out, fmt.Errorf("%w: ended at tick %d, recorded %d", ErrMismatch, out.State.Tick, rec.Ticks)
	case out.State.Score != rec.FinalScore:
		return out, fmt.Errorf("%w: score %d, recorded %d", ErrMismatch, out.State.Score, rec.FinalScore)
	}
	return out, nil
}
