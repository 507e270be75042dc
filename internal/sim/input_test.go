package sim

import (
	"math"
	"testing"
)

func TestHandleInputHeld(t *testing.T) {
	tests := []struct {
		action      Action
		wantConnect float64
		wantSpeed   float64
	}{
		{ActionConnectUp, 302, 1},
		{ActionConnectDown, 298, 1},
		{ActionSpeedUp, 300, 1.04},
		{ActionSpeedDown, 300, 0.96},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			s := DefaultSettings()
			in := newFakeInput()
			in.held[tt.action] = true

			if exit := HandleInput(&s, in); exit {
				t.Error("unexpected exit")
			}
			if s.ConnectDistance != tt.wantConnect {
				t.Errorf("connect = %g, want %g", s.ConnectDistance, tt.wantConnect)
			}
			if math.Abs(s.Speed-tt.wantSpeed) > 1e-9 {
				t.Errorf("speed = %g, want %g", s.Speed, tt.wantSpeed)
			}
		})
	}
}

func TestHandleInputContinuousAndUnclamped(t *testing.T) {
	s := DefaultSettings()
	in := newFakeInput()
	in.held[ActionConnectDown] = true
	in.held[ActionSpeedDown] = true

	for i := 0; i < 200; i++ {
		HandleInput(&s, in)
	}

	if s.ConnectDistance != -100 {
		t.Errorf("connect = %g, want -100", s.ConnectDistance)
	}
	if math.Abs(s.Speed-(-7)) > 1e-9 {
		t.Errorf("speed = %g, want -7", s.Speed)
	}
}

func TestHandleInputEdges(t *testing.T) {
	s := DefaultSettings()
	s.Speed = 2
	in := newFakeInput()

	in.held[ActionReverse] = true
	in.held[ActionFreeze] = true
	HandleInput(&s, in)
	if s.Speed != 2 || s.Frozen {
		t.Fatalf("held edge keys must not act: speed=%g frozen=%t", s.Speed, s.Frozen)
	}

	in.press(ActionReverse)
	in.press(ActionFreeze)
	HandleInput(&s, in)
	if s.Speed != -2 || !s.Frozen {
		t.Errorf("after edges speed=%g frozen=%t, want -2 true", s.Speed, s.Frozen)
	}
	in.endFrame()

	in.press(ActionFreeze)
	HandleInput(&s, in)
	if s.Frozen {
		t.Error("second freeze edge should resume")
	}
}

func TestHandleInputExit(t *testing.T) {
	s := DefaultSettings()
	in := newFakeInput()
	if HandleInput(&s, in) {
		t.Fatal("exit without key")
	}
	in.held[ActionExit] = true
	if !HandleInput(&s, in) {
		t.Error("exit key held should request exit")
	}
}

func TestActionString(t *testing.T) {
	if got := ActionClear.String(); got != "clear" {
		t.Errorf("ActionClear = %q", got)
	}
	if got := Action(99).String(); got != "unknown" {
		t.Errorf("Action(99) = %q", got)
	}
}
