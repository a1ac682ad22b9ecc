// Package event implements the core data types every handler, reader and
// macro in this repository passes around: the single InputEvent and the
// ordered InputCombination that groups several of them into one trigger.
//
// Modeled on the evdev-wrapping structs in
// [github.com/inputcore/remapper/linux/input] (Event, ID) but kept free
// of any ioctl or file-descriptor concern: this package is pure data.
package event

import "fmt"

// Action annotates an InputEvent with a non-standard interpretation that
// the handler graph or a reader attaches on top of the raw evdev triple.
type Action string

const (
	// AsKey marks an axis sample that should be interpreted as a
	// discrete press (value 1) or release (value 0), e.g. a relative
	// wheel tick turned into a button.
	AsKey Action = "as_key"

	// Recenter marks a synthetic event asking a downstream axis handler
	// to return its output to neutral.
	Recenter Action = "recenter"

	// NegativeTrigger marks an axis-to-button conversion whose trigger
	// point lies on the negative side of the axis range.
	NegativeTrigger Action = "negative_trigger"
)

// InputEvent is the Linux evdev (type, code, value) triple plus a
// timestamp and a set of interpretation tags. It is immutable: every
// method that would "change" an event returns a modified copy.
//
// Equality and hashing use only (Type, Code, Value), matching
// input_event.py's InputEvent.__eq__/__hash__ in original_source/: two
// events captured at different times but with the same type/code/value
// are the same event for combination-tracking purposes.
type InputEvent struct {
	Sec     uint64
	Usec    uint64
	Type    uint16
	Code    uint16
	Value   int32
	Actions map[Action]struct{}
}

// New constructs an InputEvent with no actions set.
func New(typ, code uint16, value int32) InputEvent {
	return InputEvent{Type: typ, Code: code, Value: value}
}

// Key returns the (Type, Code, Value) triple used for equality/hashing.
func (ev InputEvent) Key() [3]int64 {
	return [3]int64{int64(ev.Type), int64(ev.Code), int64(ev.Value)}
}

// TypeCode returns the (Type, Code) pair identifying what kind of input
// this is, ignoring value.
func (ev InputEvent) TypeCode() [2]uint16 {
	return [2]uint16{ev.Type, ev.Code}
}

// Equal reports whether two events have the same (Type, Code, Value).
// Timestamps and Actions are ignored, matching the original's __eq__.
func (ev InputEvent) Equal(other InputEvent) bool {
	return ev.Key() == other.Key()
}

// Has reports whether the event carries the given action tag.
func (ev InputEvent) Has(action Action) bool {
	var ok bool

	_, ok = ev.Actions[action]

	return ok
}

// WithAction returns a copy of ev with action added to its action set.
func (ev InputEvent) WithAction(action Action) InputEvent {
	var (
		next InputEvent
		tag  Action
	)

	next = ev
	next.Actions = make(map[Action]struct{}, len(ev.Actions)+1)

	for tag = range ev.Actions {
		next.Actions[tag] = struct{}{}
	}

	next.Actions[action] = struct{}{}

	return next
}

// WithValue returns a copy of ev with Value replaced, and no carried
// actions (a value change usually represents a genuinely new sample,
// not a reinterpretation of the old one).
func (ev InputEvent) WithValue(value int32) InputEvent {
	var next InputEvent

	next = ev
	next.Value = value
	next.Actions = nil

	return next
}

// IsKeyEvent reports whether this event's value looks like a discrete
// press (1), release (0) or autorepeat (2), as opposed to an analog
// axis sample.
func (ev InputEvent) IsKeyEvent() bool {
	return ev.Value == 0 || ev.Value == 1 || ev.Value == 2
}

// String renders the event as "type,code,value", the same shape used by
// [InputCombination]'s JSON-like key form.
func (ev InputEvent) String() string {
	return fmt.Sprintf("%d,%d,%d", ev.Type, ev.Code, ev.Value)
}
