package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys (or SSH input) onto these; the game core
// never sees raw key events.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W - the activate signal (start run / flap)
	ActionPause          // P - pause/unpause while running
	ActionRestart        // R - restart after game over
	ActionBack           // B, Escape - leave the current view
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
// It acts as a single-slot mailbox between the input source and the game:
// the platform sets actions as key events arrive, the game consumes the
// frame exactly once per tick, and the platform clears it afterwards.
// Repeated activations within one tick therefore coalesce into one impulse.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
