package tui

import (
	"testing"
	"time"
)

func TestClockFirstFrameRunsNothing(t *testing.T) {
	c := NewClock(60)
	if n := c.Advance(time.Unix(100, 0)); n != 0 {
		t.Errorf("first Advance() = %d, expected 0", n)
	}
}

func TestClockAdvance(t *testing.T) {
	c := NewClock(50) // 20ms steps
	t0 := time.Unix(100, 0)
	c.Advance(t0)

	tests := []struct {
		offset time.Duration
		want   int
	}{
		{10 * time.Millisecond, 0},  // 10ms banked
		{30 * time.Millisecond, 1},  // 30ms total, 10ms left
		{70 * time.Millisecond, 2},  // 10 + 40 = 50ms, 10ms left
		{80 * time.Millisecond, 1},  // 10 + 10 = 20ms
		{80 * time.Millisecond, 0},  // no time passed
		{140 * time.Millisecond, 3}, // 60ms
	}

	for i, tc := range tests {
		if got := c.Advance(t0.Add(tc.offset)); got != tc.want {
			t.Errorf("frame %d at +%v: Advance() = %d, expected %d", i, tc.offset, got, tc.want)
		}
	}
}

func TestClockCapsLongFrames(t *testing.T) {
	c := NewClock(60)
	t0 := time.Unix(100, 0)
	c.Advance(t0)

	n := c.Advance(t0.Add(10 * time.Second))
	max := int(maxFrameTime / c.Step())
	if n != max {
		t.Errorf("Advance() after a stall = %d, expected cap of %d", n, max)
	}
}

func TestClockIgnoresBackwardTime(t *testing.T) {
	c := NewClock(60)
	t0 := time.Unix(100, 0)
	c.Advance(t0)

	if n := c.Advance(t0.Add(-time.Second)); n != 0 {
		t.Errorf("Advance() with earlier time = %d, expected 0", n)
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(50)
	t0 := time.Unix(100, 0)
	c.Advance(t0)
	c.Advance(t0.Add(15 * time.Millisecond))

	c.Reset()
	if n := c.Advance(t0.Add(time.Hour)); n != 0 {
		t.Errorf("first Advance() after Reset = %d, expected 0", n)
	}
	if n := c.Advance(t0.Add(time.Hour + 20*time.Millisecond)); n != 1 {
		t.Errorf("Advance() = %d, expected 1 with no carried remainder", n)
	}
}
