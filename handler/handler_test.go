package handler

import (
	"testing"

	"github.com/inputcore/remapper/event"
	"github.com/inputcore/remapper/linux/input"
	"github.com/inputcore/remapper/output"
)

// emptyRegistry returns an *output.Registry with no registered
// targets. Writes through it always fail with ErrUinputNotAvailable,
// which is fine for these tests: every handler under test claims the
// event regardless of whether the downstream write succeeded (per
// spec.md §7: a write failure is logged, not treated as "unclaimed").
func emptyRegistry() *output.Registry {
	return output.NewRegistry()
}

func TestKeyHandlerIdempotentPressRelease(t *testing.T) {
	h := NewKeyHandler(output.Keyboard, input.KEY_B)
	reg := emptyRegistry()

	claimed, _ := h.Notify(event.New(input.EV_KEY, 30, 1), "dev0", reg, false)
	if !claimed {
		t.Fatalf("press should be claimed")
	}

	// A duplicate press (autorepeat-like) must not toggle state again.
	claimed, _ = h.Notify(event.New(input.EV_KEY, 30, 1), "dev0", reg, false)
	if !claimed {
		t.Fatalf("repeated press should still be claimed")
	}

	claimed, _ = h.Notify(event.New(input.EV_KEY, 30, 0), "dev0", reg, false)
	if !claimed {
		t.Fatalf("release should be claimed")
	}
}

func TestKeyHandlerResetIdempotence(t *testing.T) {
	h := NewKeyHandler(output.Keyboard, input.KEY_B)
	reg := emptyRegistry()

	_, _ = h.Notify(event.New(input.EV_KEY, 30, 1), "dev0", reg, false)

	h.Reset()
	firstPressed := h.pressed

	h.Reset()
	secondPressed := h.pressed

	if firstPressed != secondPressed {
		t.Errorf("Reset should be idempotent: got %v then %v", firstPressed, secondPressed)
	}

	if h.pressed {
		t.Errorf("Reset should clear the pressed flag")
	}
}

func TestNullHandlerClaimsAndDoesNothing(t *testing.T) {
	h := NewNullHandler()
	reg := emptyRegistry()

	claimed, err := h.Notify(event.New(input.EV_KEY, 1, 1), "dev0", reg, false)
	if !claimed || err != nil {
		t.Fatalf("NullHandler.Notify() = (%v, %v), want (true, nil)", claimed, err)
	}

	h.Reset()
	h.Reset() // idempotent no-op
}

// countingHandler records every Notify call it receives, including its
// suppress flag, so hierarchy tests can assert exclusivity and that
// losers are still notified with suppress=true.
type countingHandler struct {
	base

	claim   bool
	calls   int
	lastSup bool
}

func (c *countingHandler) Notify(ev event.InputEvent, source string, forward *output.Registry, suppress bool) (bool, error) {
	c.calls++
	c.lastSup = suppress

	return c.claim, nil
}

func (c *countingHandler) Reset() {}

func TestHierarchyHandlerClaimExclusivity(t *testing.T) {
	winner := &countingHandler{claim: true}
	loser1 := &countingHandler{claim: true} // would also claim, but ranked after winner
	loser2 := &countingHandler{claim: false}

	key := TypeCode{Type: input.EV_KEY, Code: 30}
	h := NewHierarchyHandler([]Handler{winner, loser1, loser2}, key)

	reg := emptyRegistry()

	claimed, err := h.Notify(event.New(input.EV_KEY, 30, 1), "dev0", reg, false)
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if !claimed {
		t.Fatalf("expected the hierarchy to report the event claimed")
	}

	if winner.calls != 1 || winner.lastSup {
		t.Errorf("winner should be notified once with suppress=false, got calls=%d suppress=%v", winner.calls, winner.lastSup)
	}

	if loser1.calls != 1 || !loser1.lastSup {
		t.Errorf("loser1 should be notified once with suppress=true, got calls=%d suppress=%v", loser1.calls, loser1.lastSup)
	}

	if loser2.calls != 1 || !loser2.lastSup {
		t.Errorf("loser2 should be notified once with suppress=true, got calls=%d suppress=%v", loser2.calls, loser2.lastSup)
	}
}

func TestHierarchyHandlerIgnoresUnboundTypeCode(t *testing.T) {
	sub := &countingHandler{claim: true}
	h := NewHierarchyHandler([]Handler{sub}, TypeCode{Type: input.EV_KEY, Code: 30})

	claimed, _ := h.Notify(event.New(input.EV_KEY, 31, 1), "dev0", emptyRegistry(), false)
	if claimed {
		t.Errorf("hierarchy bound to code 30 should not claim an event for code 31")
	}

	if sub.calls != 0 {
		t.Errorf("sub-handler should not be notified for an unbound (type, code)")
	}
}

func TestHierarchyHandlerResetPropagates(t *testing.T) {
	a := &countingHandler{claim: true}
	b := &countingHandler{claim: false}
	h := NewHierarchyHandler([]Handler{a, b}, TypeCode{Type: input.EV_KEY, Code: 30})

	h.Reset()
	h.Reset() // idempotent: Reset on countingHandler is a no-op either way
}
