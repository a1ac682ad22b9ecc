package event

import (
	"fmt"
	"strconv"
	"strings"
)

// difficultCombinations lists EV_KEY codes that, when part of a chord
// longer than one event, may not release cleanly on every desktop
// environment (shift/ctrl/alt tend to leak into the window manager's
// own modifier tracking). Mirrors DIFFICULT_COMBINATIONS in
// original_source/inputremapper/event_combination.py.
var difficultCombinations = map[uint16]struct{}{
	42:  {}, // KEY_LEFTSHIFT
	54:  {}, // KEY_RIGHTSHIFT
	29:  {}, // KEY_LEFTCTRL
	97:  {}, // KEY_RIGHTCTRL
	56:  {}, // KEY_LEFTALT
	100: {}, // KEY_RIGHTALT
}

// InputCombination is an ordered, non-empty tuple of InputEvents acting
// as a composite trigger. A combination of length 1 is a single input;
// length > 1 is a chord, and its last element is the "triggering" event
// used for graph-building priority and for ordering permutations.
type InputCombination struct {
	events []InputEvent
}

// NewCombination builds an InputCombination from one or more events. It
// panics if events is empty: a combination is a parse-time or
// wiring-time construct and an empty one is always a programmer error,
// never a runtime condition a caller should need to recover from.
func NewCombination(events ...InputEvent) InputCombination {
	if len(events) == 0 {
		panic("event.NewCombination: empty combination")
	}

	return InputCombination{events: append([]InputEvent(nil), events...)}
}

// ParseCombination parses the "t1,c1,v1+t2,c2,v2+..." string form
// produced by [InputCombination.JSONKey].
func ParseCombination(s string) (InputCombination, error) {
	var (
		parts []string
		part  string
		evs   []InputEvent
		ev    InputEvent
		err   error
	)

	parts = strings.Split(s, "+")
	evs = make([]InputEvent, 0, len(parts))

	for _, part = range parts {
		ev, err = parseEventTriple(part)
		if err != nil {
			return InputCombination{}, fmt.Errorf("event.ParseCombination: %w", err)
		}

		evs = append(evs, ev)
	}

	return NewCombination(evs...), nil
}

func parseEventTriple(s string) (InputEvent, error) {
	var (
		fields    []string
		typ, code int64
		value     int64
		err       error
	)

	fields = strings.Split(s, ",")
	if len(fields) != 3 {
		return InputEvent{}, fmt.Errorf("expected 3 comma-separated fields, got %q", s)
	}

	typ, err = strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
	if err != nil {
		return InputEvent{}, fmt.Errorf("type: %w", err)
	}

	code, err = strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 32)
	if err != nil {
		return InputEvent{}, fmt.Errorf("code: %w", err)
	}

	value, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 32)
	if err != nil {
		return InputEvent{}, fmt.Errorf("value: %w", err)
	}

	return New(uint16(typ), uint16(code), int32(value)), nil
}

// Events returns the combination's events in order. The returned slice
// is a copy; mutating it does not affect the combination.
func (c InputCombination) Events() []InputEvent {
	return append([]InputEvent(nil), c.events...)
}

// Len returns the number of events in the combination.
func (c InputCombination) Len() int {
	return len(c.events)
}

// IsChord reports whether the combination has more than one event.
func (c InputCombination) IsChord() bool {
	return len(c.events) > 1
}

// Last returns the triggering event: the last element.
func (c InputCombination) Last() InputEvent {
	return c.events[len(c.events)-1]
}

// JSONKey renders the canonical "t1,c1,v1+t2,c2,v2" string form, stable
// and round-trippable via [ParseCombination].
func (c InputCombination) JSONKey() string {
	var (
		parts []string
		ev    InputEvent
	)

	parts = make([]string, 0, len(c.events))
	for _, ev = range c.events {
		parts = append(parts, ev.String())
	}

	return strings.Join(parts, "+")
}

// IsProblematic reports whether this chord includes a left/right
// ctrl/shift/alt key, which some desktop environments do not release
// cleanly when consumed as part of a combination. It is a warning, not
// a validation failure: spec.md §3 says such combinations are "warned
// but allowed".
func (c InputCombination) IsProblematic() bool {
	var ev InputEvent

	if len(c.events) <= 1 {
		return false
	}

	for _, ev = range c.events {
		if ev.Type != 1 { // EV_KEY
			continue
		}

		if _, ok := difficultCombinations[ev.Code]; ok {
			return true
		}
	}

	return false
}

// Permutations returns every reordering of the combination's leading
// events with the last (triggering) event held fixed, matching
// EventCombination.get_permutations() in original_source/: pressing
// A then B then C should trigger the same mapping as B then A then C,
// as long as C is the event that completes the chord.
//
// For combinations of length <= 2 there is only one order, so the
// receiver itself is returned as the sole permutation.
func (c InputCombination) Permutations() []InputCombination {
	var (
		head  []InputEvent
		perms [][]InputEvent
		out   []InputCombination
		p     []InputEvent
	)

	if len(c.events) <= 2 {
		return []InputCombination{c}
	}

	head = c.events[:len(c.events)-1]
	perms = permute(head)

	out = make([]InputCombination, 0, len(perms))
	for _, p = range perms {
		out = append(out, NewCombination(append(append([]InputEvent(nil), p...), c.Last())...))
	}

	return out
}

// permute returns all orderings of items (n! total).
func permute(items []InputEvent) [][]InputEvent {
	if len(items) <= 1 {
		return [][]InputEvent{append([]InputEvent(nil), items...)}
	}

	var (
		out  [][]InputEvent
		i    int
		rest []InputEvent
		sub  [][]InputEvent
		perm []InputEvent
	)

	for i = range items {
		rest = make([]InputEvent, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)

		sub = permute(rest)
		for _, perm = range sub {
			out = append(out, append([]InputEvent{items[i]}, perm...))
		}
	}

	return out
}

// KeyLikeEvents returns the sub-events whose (Type, Code) represent a
// discrete key/button, i.e. everything except an axis-as-analog
// pass-through member (value 0 used as a marker, per spec.md §3's
// mapping invariant: "if mapping's input contains an abs axis acting as
// analog... exactly one sub-event is the analog pass-through").
func (c InputCombination) KeyLikeEvents() []InputEvent {
	var (
		out []InputEvent
		ev  InputEvent
	)

	out = make([]InputEvent, 0, len(c.events))
	for _, ev = range c.events {
		if ev.Type == 3 && ev.Value == 0 { // EV_ABS analog pass-through
			continue
		}

		out = append(out, ev)
	}

	return out
}

// Equal reports whether two combinations have the same events in the
// same order.
func (c InputCombination) Equal(other InputCombination) bool {
	var i int

	if len(c.events) != len(other.events) {
		return false
	}

	for i = range c.events {
		if !c.events[i].Equal(other.events[i]) {
			return false
		}
	}

	return true
}
