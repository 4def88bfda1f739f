package core

// RuntimeConfig carries host-side settings into a run. Field geometry and
// physics live in config.FlappyConfig; this is what the terminal decides.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for gap placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse lifecycle state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is the small status summary a host needs after every tick.
type GameState struct {
	Score int   // Current score
	Phase Phase // Playing or GameOver
	Tick  int   // Ticks simulated in this run
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Restarted is set on the tick a Restart event began a new run.
	Restarted bool

	// Ended is set on the tick the run transitioned into GameOver.
	Ended bool

	// Scored is the number of obstacles passed on this tick.
	Scored int
}
