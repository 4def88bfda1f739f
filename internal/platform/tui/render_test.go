package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xyz", core.ColorDefault)

	plain := ansi.Strip(RenderScreen(s))
	lines := strings.Split(plain, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("row 0 = %q, expected %q", lines[0], "abcd  ")
	}
	if lines[1] != "xyz   " {
		t.Errorf("row 1 = %q, expected %q", lines[1], "xyz   ")
	}
}

func TestRenderScreenEveryColorStyled(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("empty screen rendered %q", out)
	}
}
