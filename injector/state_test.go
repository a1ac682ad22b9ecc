package injector

import "testing"

func TestStateStringAndTerminal(t *testing.T) {
	var tests = []struct {
		state    State
		want     string
		terminal bool
	}{
		{StateUnknown, "UNKNOWN", false},
		{StateStarting, "STARTING", false},
		{StateRunning, "RUNNING", false},
		{StateNoGrab, "NO_GRAB", true},
		{StateFailed, "FAILED", true},
		{StateStopped, "STOPPED", true},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}

		if got := tt.state.Terminal(); got != tt.terminal {
			t.Errorf("State(%d).Terminal() = %v, want %v", tt.state, got, tt.terminal)
		}
	}
}
