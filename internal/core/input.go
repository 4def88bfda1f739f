package core

// Action is a semantic input event, abstracted from physical key presses.
// The set is closed: the simulation understands Impulse and Restart, and
// Quit only ever matters to the host.
type Action int

const (
	ActionNone    Action = iota
	ActionImpulse        // Space, Up, W - flap upward
	ActionRestart        // R - start a new run after game over
	ActionQuit           // Q, Ctrl+C - leave the program or session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionImpulse:
		return "Impulse"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction is the inverse of Action.String. Unknown names map to
// ActionNone.
func ParseAction(name string) Action {
	for _, a := range Actions() {
		if a.String() == name {
			return a
		}
	}
	return ActionNone
}

// Actions lists every meaningful action in a stable order.
func Actions() []Action {
	return []Action{ActionImpulse, ActionRestart, ActionQuit}
}

// InputFrame is the batch of actions delivered for one simulation tick.
// Repeated presses of the same key within a tick collapse into one.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// List returns the triggered actions in the order of Actions().
func (f InputFrame) List() []Action {
	var out []Action
	for _, a := range Actions() {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
