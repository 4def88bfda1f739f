package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a play model beyond the game itself.
type Options struct {
	// Store receives finished recordings. Nil disables recording.
	Store *storage.Store

	// Record saves every finished run to Store.
	Record bool

	// Logger receives run events. Nil discards them.
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes the current frame.
	// Empty means ~/.flappy/screenshots.
	ScreenshotDir string

	// DisableScreenshots ignores ctrl+s.
	DisableScreenshots bool
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	clock    *Clock
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	recorder *replay.Recorder
	opts     Options
	logger   *log.Logger
	quitting bool
}

// NewModel wraps a game in a play model. The screen starts at rt's size
// and follows window resizes; the game ticks at the game config's rate.
func NewModel(game *flappy.Game, rt core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-1, 0)),
		clock:  NewClock(game.Config().Field.TickRate),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		opts:   opts,
		logger: logger,
	}

	if opts.Record && opts.Store != nil {
		m.recorder = replay.NewRecorder(game.Config())
		m.recorder.Begin(game.RunSeed())
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "seed", m.game.RunSeed(), "tick_rate", m.game.Config().Field.TickRate)
	return frameCmd(m.clock.Step())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action for the next tick. Quit is handled
// here and never reaches the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.game.State().Score)
		return m, tea.Quit
	case core.ActionNone:
		if key.Matches(msg, m.keys.Screenshot) {
			m.saveScreenshot()
		}
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleFrame runs however many ticks the clock owes. Queued input is
// delivered with the first of them, so a key pressed between frames is
// seen by exactly one tick.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	for n := m.clock.Advance(now); n > 0; n-- {
		in := m.input
		m.input = core.NewInputFrame()
		m.afterStep(in, m.game.Step(in))
	}
	return m, frameCmd(m.clock.Step())
}

// afterStep logs run transitions and feeds the recorder.
func (m Model) afterStep(in core.InputFrame, res core.StepResult) {
	if res.Restarted {
		m.logger.Info("run started", "seed", m.game.RunSeed())
		if m.recorder != nil {
			m.recorder.Begin(m.game.RunSeed())
		}
		return
	}

	if res.Ended {
		m.logger.Info("run over", "score", res.State.Score, "ticks", res.State.Tick)
	}

	if m.recorder == nil {
		return
	}
	if rec := m.recorder.Observe(in, res); rec != nil {
		id, err := m.opts.Store.SaveReplay(rec)
		if err != nil {
			m.logger.Error("could not save replay", "error", err)
			return
		}
		m.logger.Info("replay saved", "id", id, "score", rec.FinalScore, "events", len(rec.Events))
	}
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	if m.opts.DisableScreenshots {
		return
	}
	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = config.UserPath("screenshots")
	}
	if dir == "" {
		return
	}

	m.game.Render(m.screen)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the wrapped game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// NewGame builds a game from cfg retuned for the host tick rate. A zero
// seed is replaced with a time-based one.
func NewGame(cfg config.FlappyConfig, rt core.RuntimeConfig) (*flappy.Game, error) {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return flappy.New(cfg.ForTickRate(rt.TickRate), seed)
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.FlappyConfig, rt core.RuntimeConfig, opts Options) error {
	game, err := NewGame(cfg, rt)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, rt, opts),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
