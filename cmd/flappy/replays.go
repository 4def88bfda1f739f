package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagReplayLimit  int
	flagReplayShow   bool
	flagReplayDelete bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded runs",
	Long: `List the most recent runs saved with --record, newest first.

Examples:
  flappy replays
  flappy replays --limit 50`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run and verify its score",
	Long: `Re-run a recorded run from its seed and input, without a terminal,
and check that it ends with the recorded score on the recorded tick.

Examples:
  flappy replay 3
  flappy replay 3 --show
  flappy replay 3 --delete`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Maximum number of runs to list")
	replayCmd.Flags().BoolVar(&flagReplayShow, "show", false, "Print the final frame")
	replayCmd.Flags().BoolVar(&flagReplayDelete, "delete", false, "Delete the recording instead of replaying it")
}

func runReplays(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening replay database: %w", err)
	}
	defer store.Close()

	list, err := store.ListReplays(flagReplayLimit)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'flappy play --record' to record one.")
		return nil
	}

	fmt.Println(replayTable(list).View())
	return nil
}

// replayTable lays out replay summaries as a static table.
func replayTable(list []storage.ReplaySummary) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Flaps", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, 0, len(list))
	for _, r := range list {
		rows = append(rows, table.Row{
			strconv.FormatInt(r.ID, 10),
			strconv.Itoa(r.FinalScore),
			strconv.Itoa(r.Ticks),
			strconv.Itoa(r.Impulses),
			strconv.FormatInt(r.Seed, 10),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in a printed table.
	styles.Selected = lipgloss.NewStyle()

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(styles),
	)
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening replay database: %w", err)
	}
	defer store.Close()

	if flagReplayDelete {
		if err := store.DeleteReplay(id); err != nil {
			return err
		}
		fmt.Printf("Deleted replay %d\n", id)
		return nil
	}

	rec, err := store.Replay(id)
	if err != nil {
		return err
	}

	res, err := replay.Run(*rec)
	if err != nil && !errors.Is(err, replay.ErrMismatch) {
		return err
	}

	fmt.Printf("Replay %d (seed %d, recorded %s)\n", rec.ID, rec.Seed, rec.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  recorded: score %d after %d ticks\n", rec.FinalScore, rec.Ticks)
	fmt.Printf("  replayed: score %d after %d ticks (%s)\n", res.State.Score, res.State.Tick, res.State.Phase)

	if flagReplayShow {
		screen := core.NewScreen(80, 24)
		flappy.RenderSnapshot(screen, res.Final)
		fmt.Println()
		fmt.Println(screen.String())
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Replay does NOT match the recording.")
		return err
	}
	fmt.Println("Replay matches the recording.")
	return nil
}
