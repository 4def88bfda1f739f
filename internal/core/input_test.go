package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionImpulse) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionImpulse)
	f.Set(ActionImpulse)
	f.Set(ActionNone)

	if !f.Has(ActionImpulse) {
		t.Error("Impulse should be set")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone must never be recorded")
	}
	if got := len(f.List()); got != 1 {
		t.Errorf("List() has %d actions, expected 1", got)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}

func TestActionRoundTrip(t *testing.T) {
	for _, a := range Actions() {
		if got := ParseAction(a.String()); got != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", a.String(), got, a)
		}
	}
	if ParseAction("Jump") != ActionNone {
		t.Error("unknown names should parse to ActionNone")
	}
}

func TestInputFrameListOrder(t *testing.T) {
	f := NewInputFrame(ActionQuit, ActionImpulse, ActionRestart)
	list := f.List()
	want := []Action{ActionImpulse, ActionRestart, ActionQuit}
	if len(list) != len(want) {
		t.Fatalf("List() = %v, expected %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %v, expected %v", i, list[i], want[i])
		}
	}
}
