package sim

import "github.com/iburimskiy/dot-connect/internal/config"

// Action is a logical key binding, independent of any input backend.
type Action int

const (
	ActionConnectUp Action = iota
	ActionConnectDown
	ActionSpeedUp
	ActionSpeedDown
	ActionReverse
	ActionFreeze
	ActionClear
	ActionExit
)

var actionNames = [...]string{
	ActionConnectUp:   "connect-up",
	ActionConnectDown: "connect-down",
	ActionSpeedUp:     "speed-up",
	ActionSpeedDown:   "speed-down",
	ActionReverse:     "reverse",
	ActionFreeze:      "freeze",
	ActionClear:       "clear",
	ActionExit:        "exit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Keys reports the state of bound actions for the current frame.
type Keys interface {
	// Pressed reports whether the action's key is held.
	Pressed(Action) bool
	// JustPressed reports whether the key went down this frame.
	JustPressed(Action) bool
}

// HandleInput applies one frame of keyboard adjustments to s and reports
// whether exit was requested. Nothing is clamped: connect distance and speed
// may go negative.
func HandleInput(s *Settings, k Keys) (exit bool) {
	if k.Pressed(ActionConnectUp) {
		s.ConnectDistance += config.ConnectStep
	}
	if k.Pressed(ActionConnectDown) {
		s.ConnectDistance -= config.ConnectStep
	}
	if k.Pressed(ActionSpeedUp) {
		s.Speed += config.SpeedStep
	}
	if k.Pressed(ActionSpeedDown) {
		s.Speed -= config.SpeedStep
	}
	if k.JustPressed(ActionReverse) {
		s.Speed *= -1
	}
	if k.JustPressed(ActionFreeze) {
		s.Frozen = !s.Frozen
	}
	return k.Pressed(ActionExit)
}
