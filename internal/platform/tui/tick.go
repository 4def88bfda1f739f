// Package tui provides the Bubble Tea host for the game: the fixed-step
// frame loop, input mapping, colored rendering and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameTime caps how much wall time one frame may feed the clock, so a
// stalled terminal does not trigger a burst of catch-up ticks.
const maxFrameTime = 250 * time.Millisecond

// FrameMsg is sent once per host frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next frame message.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Clock converts irregular host frames into a whole number of fixed
// simulation ticks. Leftover time carries over to the next frame.
type Clock struct {
	step    time.Duration
	acc     time.Duration
	last    time.Time
	started bool
}

// NewClock creates a clock ticking tickRate times per second.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{step: time.Second / time.Duration(tickRate)}
}

// Step returns the fixed tick duration.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance feeds the time of the current frame and returns how many ticks
// to simulate. The first call only sets the reference time.
func (c *Clock) Advance(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}

	c.acc += elapsed
	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step
	return n
}

// Reset forgets the reference time and any accumulated remainder.
func (c *Clock) Reset() {
	c.acc = 0
	c.started = false
}
