package event

import "testing"

func TestCombinationJSONKeyRoundTrip(t *testing.T) {
	c := NewCombination(New(1, 29, 1), New(1, 30, 1), New(1, 31, 1))

	parsed, err := ParseCombination(c.JSONKey())
	if err != nil {
		t.Fatalf("ParseCombination: %v", err)
	}

	if !parsed.Equal(c) {
		t.Errorf("round trip mismatch: got %q, want %q", parsed.JSONKey(), c.JSONKey())
	}
}

func TestCombinationPermutationsCount(t *testing.T) {
	c := NewCombination(New(1, 29, 1), New(1, 30, 1), New(1, 31, 1), New(1, 32, 1))

	perms := c.Permutations()

	// (n-1)! permutations of the leading n-1 events, last element fixed.
	want := 1
	for i := 2; i < c.Len(); i++ {
		want *= i
	}

	if len(perms) != want {
		t.Fatalf("got %d permutations, want %d", len(perms), want)
	}

	last := c.Last()
	seen := map[string]struct{}{}

	for _, p := range perms {
		if !p.Last().Equal(last) {
			t.Errorf("permutation %q does not share the triggering last event", p.JSONKey())
		}

		if p.Len() != c.Len() {
			t.Errorf("permutation %q has wrong length", p.JSONKey())
		}

		seen[p.JSONKey()] = struct{}{}
	}

	if len(seen) != want {
		t.Errorf("permutations are not distinct: %d unique of %d", len(seen), want)
	}
}

func TestCombinationPermutationsShortCircuit(t *testing.T) {
	single := NewCombination(New(1, 29, 1))
	if perms := single.Permutations(); len(perms) != 1 || !perms[0].Equal(single) {
		t.Errorf("length-1 combination should permute to itself")
	}

	pair := NewCombination(New(1, 29, 1), New(1, 30, 1))
	if perms := pair.Permutations(); len(perms) != 1 || !perms[0].Equal(pair) {
		t.Errorf("length-2 combination should permute to itself")
	}
}

func TestCombinationIsProblematic(t *testing.T) {
	plain := NewCombination(New(1, 16, 1), New(1, 17, 1))
	if plain.IsProblematic() {
		t.Errorf("plain chord should not be flagged problematic")
	}

	withCtrl := NewCombination(New(1, 29, 1), New(1, 17, 1)) // KEY_LEFTCTRL + W
	if !withCtrl.IsProblematic() {
		t.Errorf("chord containing KEY_LEFTCTRL should be flagged problematic")
	}

	single := NewCombination(New(1, 29, 1))
	if single.IsProblematic() {
		t.Errorf("a single event is never a chord, so never problematic")
	}
}

func TestCombinationKeyLikeEvents(t *testing.T) {
	c := NewCombination(New(1, 29, 1), New(3, 0, 0))

	keyLike := c.KeyLikeEvents()
	if len(keyLike) != 1 || keyLike[0].Code != 29 {
		t.Errorf("expected only the key-like sub-event, got %+v", keyLike)
	}
}

func TestEventEqualityIgnoresTimestampAndActions(t *testing.T) {
	a := InputEvent{Sec: 1, Usec: 2, Type: 1, Code: 30, Value: 1}
	b := InputEvent{Sec: 99, Usec: 0, Type: 1, Code: 30, Value: 1}.WithAction(Recenter)

	if !a.Equal(b) {
		t.Errorf("events differing only in timestamp/actions should be equal")
	}
}
