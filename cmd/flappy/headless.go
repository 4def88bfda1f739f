package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

var (
	flagHeadlessTicks int
	flagFlapEvery     int
	flagHeadlessShow  bool
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the simulation without a terminal",
	Long: `Run the simulation core for a number of ticks with a scripted player
and print the outcome. Stops early when the run ends.

By default the built-in autopilot flies. With --flap-every N the player
flaps on every Nth tick instead; --flap-every -1 never flaps.

Examples:
  flappy headless --seed 42
  flappy headless --ticks 10000 --show
  flappy headless --flap-every 18`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagHeadlessTicks, "ticks", 3600, "Maximum ticks to simulate")
	headlessCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Flap every N ticks instead of using the autopilot (0 = autopilot, -1 = never)")
	headlessCmd.Flags().BoolVar(&flagHeadlessShow, "show", false, "Print the final frame")
}

func runHeadless(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := flappy.New(cfg.ForTickRate(flagFPS), seed)
	if err != nil {
		return err
	}

	player := scriptedPlayer(flagFlapEvery)
	for i := 0; i < flagHeadlessTicks; i++ {
		if res := g.Step(player(g.Snapshot())); res.Ended {
			break
		}
	}

	st := g.State()
	fmt.Printf("seed %d: %s, score %d after %d ticks\n", seed, st.Phase, st.Score, st.Tick)

	if flagHeadlessShow {
		screen := core.NewScreen(80, 24)
		g.Render(screen)
		fmt.Println(screen.String())
	}
	return nil
}

// scriptedPlayer returns the input source for a headless run.
func scriptedPlayer(every int) func(flappy.Snapshot) core.InputFrame {
	switch {
	case every == 0:
		return flappy.Autopilot
	case every < 0:
		return func(flappy.Snapshot) core.InputFrame { return core.NewInputFrame() }
	}
	return func(snap flappy.Snapshot) core.InputFrame {
		if snap.Tick%every == 0 {
			return core.NewInputFrame(core.ActionImpulse)
		}
		return core.NewInputFrame()
	}
}
